package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planner/dto"
)

func columnNames(cols []dto.ColumnResponse) []string {
	out := []string{}
	for _, c := range cols {
		out = append(out, c.Name)
	}
	return out
}

func columnOrders(cols []dto.ColumnResponse) []int {
	out := []int{}
	for _, c := range cols {
		out = append(out, c.Order)
	}
	return out
}

func TestKanbanListSortsByOrder(t *testing.T) {
	svc, clock := newTestServices(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice@example.com")

	for _, order := range []int{2, 0, 1} {
		clock.Advance(time.Second)
		_, err := svc.Kanban.Create(ctx, alice.UserID, dto.CreateColumnRequest{Name: "col", Order: intPtr(order)})
		require.NoError(t, err)
	}

	cols, err := svc.Kanban.List(ctx, alice.UserID, "")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, columnOrders(cols))
}

func TestKanbanTiesBreakByCreation(t *testing.T) {
	svc, clock := newTestServices(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice@example.com")

	for _, name := range []string{"first", "second", "third"} {
		clock.Advance(time.Second)
		_, err := svc.Kanban.Create(ctx, alice.UserID, dto.CreateColumnRequest{Name: name, Order: intPtr(1)})
		require.NoError(t, err)
	}

	cols, err := svc.Kanban.List(ctx, alice.UserID, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, columnNames(cols))
}

func TestKanbanVisibility(t *testing.T) {
	svc, clock := newTestServices(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice@example.com")
	bob := registerUser(t, svc, "bob@example.com")

	aliceProject, err := svc.Projects.Create(ctx, alice.UserID, dto.CreateProjectRequest{Name: "A"})
	require.NoError(t, err)
	otherProject, err := svc.Projects.Create(ctx, alice.UserID, dto.CreateProjectRequest{Name: "A2"})
	require.NoError(t, err)
	bobProject, err := svc.Projects.Create(ctx, bob.UserID, dto.CreateProjectRequest{Name: "B"})
	require.NoError(t, err)

	create := func(user, name string, project *string) dto.ColumnResponse {
		clock.Advance(time.Second)
		col, err := svc.Kanban.Create(ctx, user, dto.CreateColumnRequest{Name: name, ProjectID: project})
		require.NoError(t, err)
		return col
	}
	create(alice.UserID, "Backlog", nil)
	create(alice.UserID, "Alice", &aliceProject.ID)
	create(alice.UserID, "Alice2", &otherProject.ID)
	create(bob.UserID, "Bob", &bobProject.ID)

	aliceCols, err := svc.Kanban.List(ctx, alice.UserID, "")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Backlog", "Alice", "Alice2"}, columnNames(aliceCols))

	bobCols, err := svc.Kanban.List(ctx, bob.UserID, "")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Backlog", "Bob"}, columnNames(bobCols))

	narrowed, err := svc.Kanban.List(ctx, alice.UserID, aliceProject.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Backlog", "Alice"}, columnNames(narrowed))

	_, err = svc.Kanban.List(ctx, alice.UserID, bobProject.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestKanbanDefaultOrderAppends(t *testing.T) {
	svc, clock := newTestServices(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice@example.com")

	var last dto.ColumnResponse
	for _, name := range []string{"To do", "Doing", "Done"} {
		clock.Advance(time.Second)
		col, err := svc.Kanban.Create(ctx, alice.UserID, dto.CreateColumnRequest{Name: name})
		require.NoError(t, err)
		last = col
	}
	assert.Equal(t, 2, last.Order)
}

func TestKanbanOwnershipChecks(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice@example.com")
	bob := registerUser(t, svc, "bob@example.com")

	bobProject, err := svc.Projects.Create(ctx, bob.UserID, dto.CreateProjectRequest{Name: "B"})
	require.NoError(t, err)

	_, err = svc.Kanban.Create(ctx, alice.UserID, dto.CreateColumnRequest{Name: "x", ProjectID: &bobProject.ID})
	requireIssue(t, err, "projectId")

	bobCol, err := svc.Kanban.Create(ctx, bob.UserID, dto.CreateColumnRequest{Name: "mine", ProjectID: &bobProject.ID})
	require.NoError(t, err)
	_, err = svc.Kanban.Update(ctx, alice.UserID, bobCol.ID, dto.UpdateColumnRequest{Name: strPtr("stolen")})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Kanban.Delete(ctx, alice.UserID, bobCol.ID), ErrNotFound)

	got, err := svc.Kanban.Get(ctx, bob.UserID, bobCol.ID)
	require.NoError(t, err)
	assert.Equal(t, "mine", got.Name)

	global, err := svc.Kanban.Create(ctx, bob.UserID, dto.CreateColumnRequest{Name: "Shared"})
	require.NoError(t, err)
	renamed, err := svc.Kanban.Update(ctx, alice.UserID, global.ID, dto.UpdateColumnRequest{Name: strPtr("Common")})
	require.NoError(t, err)
	assert.Equal(t, "Common", renamed.Name)
}

func TestKanbanReorder(t *testing.T) {
	svc, clock := newTestServices(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice@example.com")

	var ids []string
	for _, name := range []string{"a", "b", "c"} {
		clock.Advance(time.Second)
		col, err := svc.Kanban.Create(ctx, alice.UserID, dto.CreateColumnRequest{Name: name})
		require.NoError(t, err)
		ids = append(ids, col.ID)
	}

	_, err := svc.Kanban.Reorder(ctx, alice.UserID, dto.ReorderColumnsRequest{ColumnIDs: []string{ids[2], ids[0], ids[1]}})
	require.NoError(t, err)

	cols, err := svc.Kanban.List(ctx, alice.UserID, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, columnNames(cols))

	_, err = svc.Kanban.Reorder(ctx, alice.UserID, dto.ReorderColumnsRequest{ColumnIDs: []string{ids[0], ids[0]}})
	requireIssue(t, err, "columnIds")

	_, err = svc.Kanban.Reorder(ctx, alice.UserID, dto.ReorderColumnsRequest{ColumnIDs: []string{"missing"}})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestKanbanGlobalDefaultOrderIgnoresProjectColumns(t *testing.T) {
	svc, clock := newTestServices(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice@example.com")
	bob := registerUser(t, svc, "bob@example.com")

	p, err := svc.Projects.Create(ctx, alice.UserID, dto.CreateProjectRequest{Name: "A"})
	require.NoError(t, err)
	_, err = svc.Kanban.Create(ctx, alice.UserID, dto.CreateColumnRequest{Name: "Deep", ProjectID: &p.ID, Order: intPtr(7)})
	require.NoError(t, err)

	clock.Advance(time.Second)
	first, err := svc.Kanban.Create(ctx, alice.UserID, dto.CreateColumnRequest{Name: "Global 1"})
	require.NoError(t, err)
	assert.Equal(t, 0, first.Order)

	clock.Advance(time.Second)
	second, err := svc.Kanban.Create(ctx, bob.UserID, dto.CreateColumnRequest{Name: "Global 2"})
	require.NoError(t, err)
	assert.Equal(t, 1, second.Order)

	clock.Advance(time.Second)
	next, err := svc.Kanban.Create(ctx, alice.UserID, dto.CreateColumnRequest{Name: "Next", ProjectID: &p.ID})
	require.NoError(t, err)
	assert.Equal(t, 8, next.Order)
}

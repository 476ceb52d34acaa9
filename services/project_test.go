package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planner/dto"
	"planner/model"
	"planner/store"
)

func TestProjectCreateDefaultsAndRoundTrip(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice@example.com")

	created, err := svc.Projects.Create(ctx, alice.UserID, dto.CreateProjectRequest{
		Name:        "Garden",
		Description: "raised beds",
		DueDate:     strPtr("2026-04-01T00:00:00Z"),
	})
	require.NoError(t, err)
	assert.Equal(t, string(model.ProjectActive), created.Status)
	assert.Equal(t, DefaultColor, created.Color)
	require.NotNil(t, created.DueDate)
	assert.Equal(t, "2026-04-01T00:00:00Z", *created.DueDate)
	assert.Nil(t, created.OrganizationID)
	assert.Nil(t, created.OrganizationName)

	got, err := svc.Projects.Get(ctx, alice.UserID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestProjectListCarriesOrganizationAndTaskSummary(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice@example.com")

	org, err := svc.Organizations.Create(ctx, alice.UserID, dto.CreateOrganizationRequest{Name: "Acme"})
	require.NoError(t, err)
	p, err := svc.Projects.Create(ctx, alice.UserID, dto.CreateProjectRequest{Name: "Launch", OrganizationID: &org.ID})
	require.NoError(t, err)

	for _, status := range []string{"TODO", "DONE", "DONE"} {
		_, err := svc.Tasks.Create(ctx, alice.UserID, dto.CreateTaskRequest{Title: "t", Status: status, ProjectID: &p.ID})
		require.NoError(t, err)
	}

	list, err := svc.Projects.List(ctx, alice.UserID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].OrganizationName)
	assert.Equal(t, "Acme", *list[0].OrganizationName)
	assert.Equal(t, &dto.TaskSummary{Total: 3, Completed: 2}, list[0].Tasks)
}

func TestProjectOrganizationMustBelongToCaller(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice@example.com")
	bob := registerUser(t, svc, "bob@example.com")

	org, err := svc.Organizations.Create(ctx, bob.UserID, dto.CreateOrganizationRequest{Name: "Bobco"})
	require.NoError(t, err)

	_, err = svc.Projects.Create(ctx, alice.UserID, dto.CreateProjectRequest{Name: "Sneaky", OrganizationID: &org.ID})
	requireIssue(t, err, "organizationId")

	_, err = svc.Projects.Create(ctx, alice.UserID, dto.CreateProjectRequest{Name: "Lost", OrganizationID: strPtr("missing")})
	requireIssue(t, err, "organizationId")
}

func TestProjectUpdateClearsOptionalFields(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice@example.com")

	org, err := svc.Organizations.Create(ctx, alice.UserID, dto.CreateOrganizationRequest{Name: "Acme"})
	require.NoError(t, err)
	p, err := svc.Projects.Create(ctx, alice.UserID, dto.CreateProjectRequest{
		Name: "Launch", OrganizationID: &org.ID, DueDate: strPtr("2026-05-01"),
	})
	require.NoError(t, err)

	updated, err := svc.Projects.Update(ctx, alice.UserID, p.ID, dto.UpdateProjectRequest{
		Status:         strPtr("ON_HOLD"),
		DueDate:        strPtr(""),
		OrganizationID: strPtr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "ON_HOLD", updated.Status)
	assert.Nil(t, updated.DueDate)
	assert.Nil(t, updated.OrganizationID)
	assert.Equal(t, "Launch", updated.Name)
}

func TestProjectDeleteKeepsTasks(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice@example.com")

	p, err := svc.Projects.Create(ctx, alice.UserID, dto.CreateProjectRequest{Name: "Doomed"})
	require.NoError(t, err)
	task, err := svc.Tasks.Create(ctx, alice.UserID, dto.CreateTaskRequest{Title: "survivor", ProjectID: &p.ID})
	require.NoError(t, err)

	require.NoError(t, svc.Projects.Delete(ctx, alice.UserID, p.ID))

	_, err = svc.Projects.Get(ctx, alice.UserID, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	remaining, err := svc.Tasks.Get(ctx, alice.UserID, task.ID)
	require.NoError(t, err)
	require.NotNil(t, remaining.ProjectID)
	assert.Equal(t, p.ID, *remaining.ProjectID)
	assert.Nil(t, remaining.ProjectName)

	docs, err := svc.Tasks.store.Find(ctx, store.Tasks, store.Eq("projectId", p.ID))
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestProjectNonOwnerCannotUpdate(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice@example.com")
	bob := registerUser(t, svc, "bob@example.com")

	p, err := svc.Projects.Create(ctx, alice.UserID, dto.CreateProjectRequest{Name: "Mine"})
	require.NoError(t, err)

	_, err = svc.Projects.Update(ctx, bob.UserID, p.ID, dto.UpdateProjectRequest{Name: strPtr("Theirs")})
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := svc.Projects.Get(ctx, alice.UserID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	list, err := svc.Projects.List(ctx, bob.UserID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

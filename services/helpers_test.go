package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"planner/dto"
	"planner/model"
	"planner/testutil"
)

var testNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

func newTestServices(t *testing.T) (*Services, *testutil.Clock) {
	t.Helper()
	svc := New(testutil.NewStore(t), Options{
		JWTSecret:        "test-secret",
		SessionMaxAge:    720 * time.Hour,
		SessionUpdateAge: 24 * time.Hour,
	})
	clock := testutil.NewClock(testNow)
	svc.SetClock(clock.Now)
	return svc, clock
}

func registerUser(t *testing.T, svc *Services, email string) *model.User {
	t.Helper()
	u, err := svc.Users.Register(context.Background(), dto.SignupRequest{
		Email:    email,
		Password: "password1",
		Name:     "Test User",
	})
	require.NoError(t, err)
	return u
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func requireIssue(t *testing.T, err error, field string) {
	t.Helper()
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	for _, is := range vErr.Issues {
		if is.Field == field {
			return
		}
	}
	t.Fatalf("no issue for %q in %v", field, vErr.Issues)
}

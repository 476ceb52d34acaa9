package services

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planner/dto"
	"planner/store"
)

func TestRegisterNormalizesAndHashes(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	u, err := svc.Users.Register(ctx, dto.SignupRequest{
		Email:    "  Alice@Example.COM ",
		Password: "password1",
		Name:     "  Alice ",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, "Alice", u.Name)
	assert.NotEqual(t, "password1", u.Password)
	assert.Equal(t, testNow, u.CreatedAt)

	stored, err := svc.Users.Get(ctx, u.UserID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, stored.Email)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()
	registerUser(t, svc, "bob@example.com")

	_, err := svc.Users.Register(ctx, dto.SignupRequest{
		Email:    "BOB@example.com",
		Password: "another1pass",
		Name:     "Bob Two",
	})
	assert.ErrorIs(t, err, ErrConflict)

	docs, err := svc.Users.store.Find(ctx, store.Users, store.Eq("email", "bob@example.com"))
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestServices(t)

	_, err := svc.Users.Register(context.Background(), dto.SignupRequest{
		Email:    "not-an-email",
		Password: "short",
		Name:     "   ",
	})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Issues, 3)
	requireIssue(t, err, "email")
	requireIssue(t, err, "password")
	requireIssue(t, err, "name")
}

func TestRegisterPasswordNeedsLetterAndDigit(t *testing.T) {
	svc, _ := newTestServices(t)

	_, err := svc.Users.Register(context.Background(), dto.SignupRequest{
		Email:    "carol@example.com",
		Password: "onlyletters",
		Name:     "Carol",
	})
	requireIssue(t, err, "password")
}

func TestRegisterChecksMX(t *testing.T) {
	svc, _ := newTestServices(t)
	svc.Users.checkMX = true
	svc.Users.lookupMX = func(domain string) ([]*net.MX, error) {
		if domain == "example.com" {
			return []*net.MX{{Host: "mx.example.com"}}, nil
		}
		return nil, errors.New("no such host")
	}

	_, err := svc.Users.Register(context.Background(), dto.SignupRequest{
		Email: "dave@nowhere.invalid", Password: "password1", Name: "Dave",
	})
	requireIssue(t, err, "email")

	_, err = svc.Users.Register(context.Background(), dto.SignupRequest{
		Email: "dave@example.com", Password: "password1", Name: "Dave",
	})
	assert.NoError(t, err)
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()
	u := registerUser(t, svc, "erin@example.com")

	got, err := svc.Users.Authenticate(ctx, "Erin@Example.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, u.UserID, got.UserID)

	_, err = svc.Users.Authenticate(ctx, "erin@example.com", "wrong-password1")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Users.Authenticate(ctx, "nobody@example.com", "password1")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdateProfile(t *testing.T) {
	svc, clock := newTestServices(t)
	ctx := context.Background()
	u := registerUser(t, svc, "frank@example.com")
	clock.Advance(time.Minute)

	updated, err := svc.Users.UpdateProfile(ctx, u.UserID, dto.UpdateProfileRequest{
		Name:     strPtr("Franklin"),
		Password: strPtr("newpassword2"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Franklin", updated.Name)
	assert.Equal(t, testNow.Add(time.Minute), updated.UpdatedAt)
	assert.Equal(t, testNow, updated.CreatedAt)

	_, err = svc.Users.Authenticate(ctx, "frank@example.com", "newpassword2")
	assert.NoError(t, err)

	_, err = svc.Users.UpdateProfile(ctx, u.UserID, dto.UpdateProfileRequest{Password: strPtr("weak")})
	requireIssue(t, err, "password")

	_, err = svc.Users.UpdateProfile(ctx, "missing", dto.UpdateProfileRequest{Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrNotFound)
}

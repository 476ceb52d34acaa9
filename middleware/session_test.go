package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planner/cache"
	"planner/dto"
	"planner/model"
	"planner/services"
	"planner/store"
	"planner/testutil"
)

type fixture struct {
	router *gin.Engine
	svc    *services.Services
	clock  *testutil.Clock
	store  store.DocumentStore
	auth   *SessionAuth
	user   *model.User
	token  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewStore(t)
	svc := services.New(db, services.Options{
		JWTSecret:        "test-secret",
		SessionMaxAge:    720 * time.Hour,
		SessionUpdateAge: 24 * time.Hour,
	})
	clock := testutil.NewClock(time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC))
	svc.SetClock(clock.Now)

	u, err := svc.Users.Register(context.Background(), dto.SignupRequest{
		Email: "ada@example.com", Password: "password1", Name: "Ada",
	})
	require.NoError(t, err)
	token, _, err := svc.Sessions.Issue(u)
	require.NoError(t, err)

	userCache := cache.NewTTL[string, *model.User](time.Minute).WithClock(clock.Now)
	auth := NewSessionAuth(svc.Sessions, svc.Users, userCache)

	r := gin.New()
	r.GET("/whoami", auth.Required(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.GetString("userId"), "name": CurrentUser(c).Name})
	})
	return &fixture{router: r, svc: svc, clock: clock, store: db, auth: auth, user: u, token: token}
}

func TestRequiredRejectsMissingToken(t *testing.T) {
	f := newFixture(t)
	rec := testutil.Request(t, f.router, http.MethodGet, "/whoami", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestRequiredRejectsBadToken(t *testing.T) {
	f := newFixture(t)
	rec := testutil.Request(t, f.router, http.MethodGet, "/whoami", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	other := services.NewSessionManager("other-secret", time.Hour, 0)
	forged, _, err := other.Issue(f.user)
	require.NoError(t, err)
	rec = testutil.Request(t, f.router, http.MethodGet, "/whoami", forged, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequiredRejectsExpiredToken(t *testing.T) {
	f := newFixture(t)
	f.clock.Advance(721 * time.Hour)
	rec := testutil.Request(t, f.router, http.MethodGet, "/whoami", f.token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequiredAcceptsBearerToken(t *testing.T) {
	f := newFixture(t)
	rec := testutil.Request(t, f.router, http.MethodGet, "/whoami", f.token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	testutil.Decode(t, rec, &body)
	assert.Equal(t, f.user.UserID, body["userId"])
	assert.Equal(t, "Ada", body["name"])
	assert.Empty(t, rec.Header().Get(RefreshHeader))
}

func TestRequiredAcceptsCookie(t *testing.T) {
	f := newFixture(t)
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: f.token})
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequiredRefreshesOldSession(t *testing.T) {
	f := newFixture(t)
	f.clock.Advance(25 * time.Hour)

	rec := testutil.Request(t, f.router, http.MethodGet, "/whoami", f.token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	fresh := rec.Header().Get(RefreshHeader)
	require.NotEmpty(t, fresh)
	assert.NotEqual(t, f.token, fresh)
	claims, err := f.svc.Sessions.Parse(fresh)
	require.NoError(t, err)
	assert.Equal(t, f.clock.Now().Unix(), claims.IssuedAt.Unix())
	assert.Contains(t, rec.Header().Get("Set-Cookie"), CookieName+"="+fresh)
}

func TestRequiredRejectsDeletedUser(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Delete(context.Background(), store.Users, f.user.UserID))

	rec := testutil.Request(t, f.router, http.MethodGet, "/whoami", f.token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestForgetReloadsUser(t *testing.T) {
	f := newFixture(t)
	rec := testutil.Request(t, f.router, http.MethodGet, "/whoami", f.token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Cached: deleting the record is not seen until the entry is forgotten.
	require.NoError(t, f.store.Delete(context.Background(), store.Users, f.user.UserID))
	rec = testutil.Request(t, f.router, http.MethodGet, "/whoami", f.token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	f.auth.Forget(f.user.UserID)
	rec = testutil.Request(t, f.router, http.MethodGet, "/whoami", f.token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

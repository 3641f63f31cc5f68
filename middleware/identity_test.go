package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"klinik/clients/clinicapi"
	"klinik/models"
	"klinik/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeProfiles struct {
	patients map[string]models.Profile
	admins   map[string]models.Profile
	calls    int
	err      error
}

func (f *fakeProfiles) PatientProfile(ctx context.Context, token string) (*models.Profile, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.patients[token]; ok {
		return &p, nil
	}
	return nil, &clinicapi.APIError{Status: http.StatusUnauthorized, Message: "Unauthorized"}
}

func (f *fakeProfiles) AdminProfile(ctx context.Context, token string) (*models.Profile, error) {
	f.calls++
	if p, ok := f.admins[token]; ok {
		return &p, nil
	}
	return nil, &clinicapi.APIError{Status: http.StatusForbidden, Message: "Forbidden"}
}

func newProfiles() *fakeProfiles {
	return &fakeProfiles{
		patients: map[string]models.Profile{"p-tok": {ID: "12", Nama: "Siti", Username: "siti"}},
		admins:   map[string]models.Profile{"a-tok": {ID: "1", Nama: "Admin", Username: "admin"}},
	}
}

func newCache(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestUpstreamIdentityProvider(t *testing.T) {
	mr, cache := newCache(t)
	api := newProfiles()
	p := &UpstreamIdentityProvider{API: api, Cache: cache, TTL: time.Minute}
	ctx := context.Background()

	id, err := p.Identify(ctx, "p-tok")
	require.NoError(t, err)
	assert.Equal(t, models.Identity{ID: "12", Name: "Siti", Username: "siti", Role: models.RolePatient, Token: "p-tok"}, id)
	assert.True(t, mr.Exists(utils.IdentityCachePrefix+utils.HashToken("p-tok")))

	calls := api.calls
	id, err = p.Identify(ctx, "p-tok")
	require.NoError(t, err)
	assert.Equal(t, "p-tok", id.Token)
	assert.Equal(t, calls, api.calls, "second lookup served from cache")

	id, err = p.Identify(ctx, "a-tok")
	require.NoError(t, err)
	assert.True(t, id.IsAdmin())

	_, err = p.Identify(ctx, "nobody")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestUpstreamIdentityProvider_UpstreamDown(t *testing.T) {
	api := newProfiles()
	api.err = &clinicapi.APIError{Status: http.StatusInternalServerError, Message: "boom"}
	p := &UpstreamIdentityProvider{API: api}

	_, err := p.Identify(context.Background(), "p-tok")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnauthenticated)
}

func TestJWTIdentityProvider(t *testing.T) {
	secret := []byte("s3cret")
	token, err := utils.GenerateToken(secret, "12", "Siti", "siti", "", time.Hour)
	require.NoError(t, err)

	id, err := JWTIdentityProvider{Secret: secret}.Identify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "12", id.ID)
	assert.Equal(t, models.RolePatient, id.Role)

	_, err = JWTIdentityProvider{Secret: []byte("other")}.Identify(context.Background(), token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func newIdentityRouter(provider IdentityProvider) *gin.Engine {
	r := gin.New()
	protected := r.Group("/", IdentityMiddleware(provider, zap.NewNop()))
	protected.GET("/me", func(c *gin.Context) {
		id, _ := IdentityFrom(c)
		c.JSON(http.StatusOK, id)
	})
	protected.GET("/admin", AdminOnly(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestIdentityMiddleware(t *testing.T) {
	r := newIdentityRouter(&UpstreamIdentityProvider{API: newProfiles()})

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"no header", "/me", "", http.StatusUnauthorized},
		{"not bearer", "/me", "Basic abc", http.StatusUnauthorized},
		{"unknown token", "/me", "Bearer nobody", http.StatusUnauthorized},
		{"patient", "/me", "Bearer p-tok", http.StatusOK},
		{"patient on admin route", "/admin", "Bearer p-tok", http.StatusForbidden},
		{"admin", "/admin", "Bearer a-tok", http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestIdentityMiddleware_UpstreamFailure(t *testing.T) {
	api := newProfiles()
	api.err = &clinicapi.APIError{Status: http.StatusServiceUnavailable, Message: "down"}
	r := newIdentityRouter(&UpstreamIdentityProvider{API: api})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer p-tok")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

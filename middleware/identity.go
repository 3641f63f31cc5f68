package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"klinik/clients/clinicapi"
	"klinik/models"
	"klinik/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ErrUnauthenticated is returned by providers when a token names no caller.
var ErrUnauthenticated = errors.New("unauthenticated")

// IdentityProvider turns a bearer token into the caller's identity.
type IdentityProvider interface {
	Identify(ctx context.Context, token string) (models.Identity, error)
}

// JWTIdentityProvider reads the identity from a locally verified HS256 token.
type JWTIdentityProvider struct {
	Secret []byte
}

func (p JWTIdentityProvider) Identify(ctx context.Context, token string) (models.Identity, error) {
	claims, err := utils.ValidateToken(p.Secret, token)
	if err != nil {
		return models.Identity{}, ErrUnauthenticated
	}
	role := claims.Role
	if role == "" {
		role = models.RolePatient
	}
	return models.Identity{
		ID:       claims.Subject,
		Name:     claims.Name,
		Username: claims.Username,
		Role:     role,
		Token:    token,
	}, nil
}

// ProfileAPI is the part of the clinic API used to hydrate identities.
type ProfileAPI interface {
	PatientProfile(ctx context.Context, token string) (*models.Profile, error)
	AdminProfile(ctx context.Context, token string) (*models.Profile, error)
}

// UpstreamIdentityProvider asks the clinic API who owns the token, trying the
// patient profile first and the admin profile second. Results are cached in redis
// under the hash of the token.
type UpstreamIdentityProvider struct {
	API    ProfileAPI
	Cache  *redis.Client
	TTL    time.Duration
	Logger *zap.Logger
}

func (p *UpstreamIdentityProvider) Identify(ctx context.Context, token string) (models.Identity, error) {
	key := utils.IdentityCachePrefix + utils.HashToken(token)
	if id, ok := p.cached(ctx, key); ok {
		id.Token = token
		return id, nil
	}

	id, err := p.hydrate(ctx, token)
	if err != nil {
		return models.Identity{}, err
	}
	p.store(ctx, key, id)
	return id, nil
}

func (p *UpstreamIdentityProvider) hydrate(ctx context.Context, token string) (models.Identity, error) {
	profile, err := p.API.PatientProfile(ctx, token)
	if err == nil {
		return profile.Identity(models.RolePatient, token), nil
	}
	if !clinicapi.IsUnauthorized(err) && !clinicapi.IsNotFound(err) {
		return models.Identity{}, err
	}

	profile, err = p.API.AdminProfile(ctx, token)
	if err == nil {
		return profile.Identity(models.RoleAdmin, token), nil
	}
	if clinicapi.IsUnauthorized(err) || clinicapi.IsNotFound(err) {
		return models.Identity{}, ErrUnauthenticated
	}
	return models.Identity{}, err
}

func (p *UpstreamIdentityProvider) cached(ctx context.Context, key string) (models.Identity, bool) {
	var id models.Identity
	if p.Cache == nil {
		return id, false
	}
	raw, err := p.Cache.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			p.logger().Warn("Identity cache read failed", zap.Error(err))
		}
		return id, false
	}
	if err := json.Unmarshal(raw, &id); err != nil {
		return id, false
	}
	return id, true
}

func (p *UpstreamIdentityProvider) store(ctx context.Context, key string, id models.Identity) {
	if p.Cache == nil {
		return
	}
	ttl := p.TTL
	if ttl <= 0 {
		ttl = utils.IdentityCacheTTL
	}
	raw, err := json.Marshal(id)
	if err != nil {
		return
	}
	if err := p.Cache.Set(ctx, key, raw, ttl).Err(); err != nil {
		p.logger().Warn("Identity cache write failed", zap.Error(err))
	}
}

func (p *UpstreamIdentityProvider) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}

// IdentityMiddleware requires a bearer token and stores the resolved identity on
// the context.
func IdentityMiddleware(provider IdentityProvider, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		id, err := provider.Identify(c.Request.Context(), token)
		switch {
		case errors.Is(err, ErrUnauthenticated):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		case err != nil:
			logger.Error("Identity lookup failed",
				zap.String("requestId", c.GetString(utils.RequestIDKey)),
				zap.Error(err),
			)
			c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "Unable to verify identity"})
			return
		}

		c.Set(utils.IdentityKey, id)
		c.Next()
	}
}

// IdentityFrom returns the identity set by IdentityMiddleware.
func IdentityFrom(c *gin.Context) (models.Identity, bool) {
	v, ok := c.Get(utils.IdentityKey)
	if !ok {
		return models.Identity{}, false
	}
	id, ok := v.(models.Identity)
	return id, ok
}

// AdminOnly rejects callers whose identity is not an admin. It must run after
// IdentityMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing identity"})
			return
		}
		if !id.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unauthorized admin access"})
			return
		}
		c.Next()
	}
}

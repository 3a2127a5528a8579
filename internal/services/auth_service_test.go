package services

import (
	"context"
	"testing"
	"time"

	"homeservices-backend/internal/config"
	"homeservices-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T, cfg config.AuthConfig) AuthService {
	t.Helper()

	db := testDB(t)
	return NewAuthService(repository.NewAdminRepository(db), nil, cfg, testLogger())
}

func TestAuthLoginAndVerify(t *testing.T) {
	cfg := config.AuthConfig{
		JWTSecret:     "test-secret",
		TokenTTL:      time.Hour,
		AdminEmail:    "admin@example.com",
		AdminPassword: "s3cret-pass",
		AdminName:     "Admin",
	}
	svc := newAuthService(t, cfg)
	ctx := context.Background()

	require.NoError(t, svc.SeedAdmin(ctx))

	token, admin, err := svc.Login(ctx, "admin@example.com", "s3cret-pass")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, "admin@example.com", admin.Email)
	assert.NotEmpty(t, token)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.AdminID)
	assert.Equal(t, "admin@example.com", claims.Email)

	loaded, err := svc.GetAdmin(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, admin.Email, loaded.Email)
}

func TestAuthLoginFailures(t *testing.T) {
	cfg := config.AuthConfig{
		JWTSecret:     "test-secret",
		TokenTTL:      time.Hour,
		AdminEmail:    "admin@example.com",
		AdminPassword: "s3cret-pass",
	}
	svc := newAuthService(t, cfg)
	ctx := context.Background()

	require.NoError(t, svc.SeedAdmin(ctx))

	_, _, err := svc.Login(ctx, "admin@example.com", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, _, err = svc.Login(ctx, "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, _, err = svc.Login(ctx, "", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAuthVerifyTokenRejectsGarbage(t *testing.T) {
	svc := newAuthService(t, config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour})

	_, err := svc.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthVerifyTokenRejectsWrongSecret(t *testing.T) {
	cfg := config.AuthConfig{
		JWTSecret:     "secret-a",
		TokenTTL:      time.Hour,
		AdminEmail:    "admin@example.com",
		AdminPassword: "s3cret-pass",
	}
	issuer := newAuthService(t, cfg)
	ctx := context.Background()
	require.NoError(t, issuer.SeedAdmin(ctx))

	token, _, err := issuer.Login(ctx, "admin@example.com", "s3cret-pass")
	require.NoError(t, err)

	cfg.JWTSecret = "secret-b"
	verifier := newAuthService(t, cfg)
	_, err = verifier.VerifyToken(token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestSeedAdminIsIdempotent(t *testing.T) {
	db := testDB(t)
	repo := repository.NewAdminRepository(db)
	cfg := config.AuthConfig{
		JWTSecret:     "test-secret",
		TokenTTL:      time.Hour,
		AdminEmail:    "admin@example.com",
		AdminPassword: "s3cret-pass",
	}
	svc := NewAuthService(repo, nil, cfg, testLogger())
	ctx := context.Background()

	require.NoError(t, svc.SeedAdmin(ctx))
	require.NoError(t, svc.SeedAdmin(ctx))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

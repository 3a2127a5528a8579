package services

import (
	"context"
	"fmt"
	"time"

	"homeservices-backend/internal/config"
	"homeservices-backend/internal/models"
	"homeservices-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// AdminClaims is the JWT payload for dashboard sessions.
type AdminClaims struct {
	AdminID uint   `json:"adminId"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *models.AdminUser, error)
	VerifyToken(token string) (*AdminClaims, error)
	GetAdmin(ctx context.Context, id uint) (*models.AdminUser, error)
	SeedAdmin(ctx context.Context) error
}

// authService checks credentials against bcrypt hashes and issues HS256 JWTs.
// Failed attempts are counted in Redis with a TTL so the lockout survives
// restarts and is shared across instances.
type authService struct {
	repo   repository.AdminRepository
	redis  *redis.Client
	cfg    config.AuthConfig
	logger *logrus.Logger
}

func NewAuthService(repo repository.AdminRepository, redisClient *redis.Client, cfg config.AuthConfig, logger *logrus.Logger) AuthService {
	return &authService{
		repo:   repo,
		redis:  redisClient,
		cfg:    cfg,
		logger: logger,
	}
}

func attemptsKey(email string) string {
	return "login_attempts:" + email
}

func (s *authService) isLocked(ctx context.Context, email string) bool {
	if s.redis == nil {
		return false
	}

	count, err := s.redis.Get(ctx, attemptsKey(email)).Int()
	if err != nil {
		if err != redis.Nil {
			s.logger.WithError(err).Warn("Failed to read login attempts from Redis")
		}
		return false
	}
	return count >= s.cfg.MaxAttempts
}

func (s *authService) recordFailure(ctx context.Context, email string) {
	if s.redis == nil {
		return
	}

	count, err := s.redis.Incr(ctx, attemptsKey(email)).Result()
	if err != nil {
		s.logger.WithError(err).Warn("Failed to record login attempt in Redis")
		return
	}
	if count == 1 {
		if err := s.redis.Expire(ctx, attemptsKey(email), s.cfg.LockoutDuration).Err(); err != nil {
			s.logger.WithError(err).Warn("Failed to set lockout TTL in Redis")
		}
	}
}

func (s *authService) clearFailures(ctx context.Context, email string) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, attemptsKey(email)).Err(); err != nil {
		s.logger.WithError(err).Warn("Failed to clear login attempts in Redis")
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *models.AdminUser, error) {
	if email == "" || password == "" {
		return "", nil, fmt.Errorf("email and password are required: %w", ErrValidation)
	}

	if s.isLocked(ctx, email) {
		return "", nil, fmt.Errorf("too many failed attempts, try again later: %w", ErrUnauthorized)
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		// Count failures for unknown accounts too, to avoid enumeration.
		s.recordFailure(ctx, email)
		return "", nil, fmt.Errorf("invalid email or password: %w", ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.recordFailure(ctx, email)
		return "", nil, fmt.Errorf("invalid email or password: %w", ErrUnauthorized)
	}

	s.clearFailures(ctx, email)

	now := time.Now().UTC()
	claims := AdminClaims{
		AdminID: user.ID,
		Email:   user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return token, user, nil
}

func (s *authService) VerifyToken(tokenString string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", ErrUnauthorized)
	}
	return claims, nil
}

func (s *authService) GetAdmin(ctx context.Context, id uint) (*models.AdminUser, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("admin %d: %w", id, ErrNotFound)
	}
	return user, nil
}

// SeedAdmin creates the initial dashboard account from env config when the
// table is empty. No-op once any account exists.
func (s *authService) SeedAdmin(ctx context.Context) error {
	if s.cfg.AdminEmail == "" || s.cfg.AdminPassword == "" {
		return nil
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	if err := s.repo.Create(ctx, &models.AdminUser{
		Email:        s.cfg.AdminEmail,
		Name:         s.cfg.AdminName,
		PasswordHash: string(hash),
	}); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	s.logger.WithField("email", s.cfg.AdminEmail).Info("Seeded initial admin user")
	return nil
}

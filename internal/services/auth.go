package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"taskhub/internal/models"
	"taskhub/internal/repositories"

	"github.com/gofrs/uuid"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type AuthService interface {
	LoginUser(ctx context.Context, email, password string) (*models.User, error)
	GenerateTokens(ctx context.Context, user *models.User) (*TokenPair, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error)
	RevokeToken(ctx context.Context, refreshToken string) error
}

// AuthServiceImpl issues short-lived JWT access tokens and opaque refresh
// tokens. Refresh tokens live in redis keyed by their value, so revocation
// and expiry are a single DEL / TTL away; nothing session-shaped touches
// the relational store.
type AuthServiceImpl struct {
	userRepo   *repositories.UserRepository
	redis      *redis.Client
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(userRepo *repositories.UserRepository, redisClient *redis.Client, secret string, accessTTL, refreshTTL time.Duration) *AuthServiceImpl {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		redis:      redisClient,
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func VerifyPassword(hashedPassword, plainPassword string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
	return err == nil
}

func (s *AuthServiceImpl) LoginUser(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !VerifyPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthServiceImpl) GenerateTokens(ctx context.Context, user *models.User) (*TokenPair, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"roles":   []string(user.Roles),
		"exp":     time.Now().Add(s.accessTTL).Unix(),
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	refreshUUID, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	refreshToken := refreshUUID.String()

	err = s.redis.Set(ctx, refreshKey(refreshToken), user.ID, s.refreshTTL).Err()
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

// RefreshTokens rotates the refresh token: the presented one is consumed
// whether or not issuing the replacement succeeds.
func (s *AuthServiceImpl) RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error) {
	value, err := s.redis.GetDel(ctx, refreshKey(refreshToken)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	userID, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.userRepo.FindByID(ctx, uint(userID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	return s.GenerateTokens(ctx, user)
}

func (s *AuthServiceImpl) RevokeToken(ctx context.Context, refreshToken string) error {
	return s.redis.Del(ctx, refreshKey(refreshToken)).Err()
}

func refreshKey(token string) string {
	return "refresh_token:" + token
}

// Package services реализует сервисы токенов (JWT) и паролей (bcrypt).
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"mesto/internal/api/domain/services"
	svc "mesto/internal/api/ports/services"
	"mesto/pkg/logger"
)

const (
	methodIssue  = "Issue"
	methodVerify = "Verify"

	msgIssuingToken    = "issuing token"
	msgVerifyingToken  = "verifying token"
	msgTokenIssued     = "token issued"
	msgTokenVerified   = "token verified"
	msgTokenExpired    = "token has expired"
	msgTokenRejected   = "token rejected"
	msgEmptySecret     = "empty secret key provided"
	msgEmptyUserID     = "_id claim is empty"
	errCtxIssuingToken = "issuing token"
	//nolint:gosec
	errCtxVerifyingToken = "verifying token"
)

// ErrInvalidAlgorithm - токен подписан неожиданным алгоритмом.
var ErrInvalidAlgorithm = errors.New("invalid signing algorithm")

// Claims - полезная нагрузка токена: {"_id": ..., "iat": ..., "exp": ...}.
type Claims struct {
	ID string `json:"_id"`
	jwt.RegisteredClaims
}

// ServiceJWT реализует svc.TokenService на HS256.
type ServiceJWT struct {
	config services.JWTConfig
	now    func() time.Time
}

// NewJWT создает сервис JWT с секретом из конфигурации.
func NewJWT(secretKey string, tokenTTL time.Duration) svc.TokenService {
	return &ServiceJWT{
		config: services.JWTConfig{
			SecretKey: []byte(secretKey),
			TokenTTL:  tokenTTL,
		},
		now: time.Now,
	}
}

func domainToJWTClaims(claims services.JWTClaims) Claims {
	return Claims{
		ID: claims.UserID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(claims.IssuedAt),
		},
	}
}

// Issue подписывает токен для userID.
func (s *ServiceJWT) Issue(ctx context.Context, userID string) (string, time.Time, error) {
	log := logger.Log(ctx).With(zap.String("method", methodIssue), zap.String("userID", userID))
	log.Debug(ctx, msgIssuingToken)

	if len(s.config.SecretKey) == 0 {
		log.Error(ctx, msgEmptySecret)
		return "", time.Time{}, fmt.Errorf("%s: %w: empty secret key", errCtxIssuingToken, services.ErrGeneratingJWTToken)
	}

	now := s.now()
	expiresAt := now.Add(s.config.TokenTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, domainToJWTClaims(services.JWTClaims{
		UserID:    userID,
		IssuedAt:  now,
		ExpiresAt: expiresAt,
	}))

	signed, err := token.SignedString(s.config.SecretKey)
	if err != nil {
		log.Error(ctx, "error signing token", zap.Error(err))
		return "", time.Time{}, fmt.Errorf("%s: %w: %w", errCtxIssuingToken, services.ErrGeneratingJWTToken, err)
	}

	log.Debug(ctx, msgTokenIssued, zap.Time("expiresAt", expiresAt))
	return signed, expiresAt, nil
}

// Verify проверяет токен и возвращает _id.
func (s *ServiceJWT) Verify(ctx context.Context, tokenString string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodVerify))
	log.Debug(ctx, msgVerifyingToken)

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAlgorithm, token.Header["alg"])
		}
		return s.config.SecretKey, nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug(ctx, msgTokenExpired)
			return "", fmt.Errorf("%s: %w", errCtxVerifyingToken, services.ErrExpiredJWTToken)
		}
		log.Debug(ctx, msgTokenRejected, zap.Error(err))
		return "", fmt.Errorf("%s: %w: %w", errCtxVerifyingToken, services.ErrInvalidJWTToken, err)
	}

	if !token.Valid {
		return "", fmt.Errorf("%s: %w", errCtxVerifyingToken, services.ErrInvalidJWTToken)
	}
	if claims.ID == "" {
		log.Debug(ctx, msgEmptyUserID)
		return "", fmt.Errorf("%s: %w: empty _id", errCtxVerifyingToken, services.ErrInvalidJWTToken)
	}

	log.Debug(ctx, msgTokenVerified, zap.String("userID", claims.ID))
	return claims.ID, nil
}

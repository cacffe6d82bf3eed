package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"mesto/internal/api/domain/apperr"
	"mesto/internal/api/domain/entities"
	"mesto/internal/api/domain/services"
	"mesto/internal/api/ports/api"
	"mesto/internal/api/ports/repositories"
	svc "mesto/internal/api/ports/services"
	"mesto/pkg/logger"
)

const (
	methodSignUp       = "SignUp"
	methodSignIn       = "SignIn"
	methodAuthenticate = "Authenticate"

	msgStartSignUp      = "starting user registration"
	msgUserRegistered   = "user registered successfully"
	msgSignInAttempt    = "sign-in attempt"
	msgUnknownEmail     = "sign-in with unknown email"
	msgWrongPassword    = "sign-in with wrong password"
	msgUserSignedIn     = "user signed in successfully"
	msgTokenMissing     = "authorization token missing"
	msgTokenRejected    = "authorization token rejected"
	msgErrHashPassword  = "failed to hash password"
	msgErrCreateUser    = "failed to create user"
	msgErrFindingUser   = "error finding user by email"
	msgErrVerifyingPass = "error verifying password"
	msgErrIssuingToken  = "failed to issue token"

	errCtxHashingPassword = "hashing password"
	errCtxFindingUser     = "finding user"
	errCtxVerifying       = "verifying password"
	errCtxIssuingToken    = "issuing token"
)

// AuthUseCaseImpl реализует интерфейс AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
}

// NewAuthUseCase создает новый экземпляр сервиса аутентификации.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
	}
}

// SignUp регистрирует пользователя. Пустые поля профиля получают значения по умолчанию.
func (a *AuthUseCaseImpl) SignUp(ctx context.Context, in api.SignUpInput) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodSignUp), zap.String("email", in.Email))
	log.Debug(ctx, msgStartSignUp)

	hash, err := a.passwordSvc.Hash(ctx, in.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPassword) {
			return nil, apperr.Wrap(apperr.KindBadRequest, apperr.MsgBadRequest, err)
		}
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, apperr.Internal(fmt.Errorf("%s: %w", errCtxHashingPassword, err))
	}

	user := &entities.User{
		Name:         in.Name,
		About:        in.About,
		Avatar:       in.Avatar,
		Email:        in.Email,
		PasswordHash: hash,
	}
	user.ApplyDefaults()

	created, err := a.userRepo.Create(ctx, user)
	if err != nil {
		if !errors.Is(err, entities.ErrEmailAlreadyExists) && !errors.Is(err, entities.ErrInvalidData) {
			log.Error(ctx, msgErrCreateUser, zap.Error(err))
		}
		return nil, classify(err, apperr.MsgUserNotFound)
	}

	log.Info(ctx, msgUserRegistered, zap.String("userID", created.ID))
	return created, nil
}

// SignIn проверяет почту и пароль и выпускает токен.
// Неизвестная почта и неверный пароль неразличимы для клиента.
func (a *AuthUseCaseImpl) SignIn(ctx context.Context, email, password string) (*api.Session, error) {
	log := logger.Log(ctx).With(zap.String("method", methodSignIn), zap.String("email", email))
	log.Debug(ctx, msgSignInAttempt)

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgUnknownEmail)
			return nil, apperr.Wrap(apperr.KindUnauthorized, apperr.MsgBadCredentials, err)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, apperr.Internal(fmt.Errorf("%s: %w", errCtxFindingUser, err))
	}

	ok, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPass, zap.Error(err))
		return nil, apperr.Internal(fmt.Errorf("%s: %w", errCtxVerifying, err))
	}
	if !ok {
		log.Debug(ctx, msgWrongPassword)
		return nil, apperr.Unauthorized(apperr.MsgBadCredentials)
	}

	token, _, err := a.tokenSvc.Issue(ctx, user.ID)
	if err != nil {
		log.Error(ctx, msgErrIssuingToken, zap.Error(err))
		return nil, apperr.Internal(fmt.Errorf("%s: %w", errCtxIssuingToken, err))
	}

	log.Info(ctx, msgUserSignedIn, zap.String("userID", user.ID))
	return &api.Session{UserID: user.ID, Token: token}, nil
}

// Authenticate проверяет токен. Любая ошибка проверки превращается в Unauthorized.
func (a *AuthUseCaseImpl) Authenticate(ctx context.Context, token string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAuthenticate))

	if token == "" {
		log.Debug(ctx, msgTokenMissing)
		return "", apperr.Unauthorized(apperr.MsgUnauthorized)
	}

	userID, err := a.tokenSvc.Verify(ctx, token)
	if err != nil {
		log.Debug(ctx, msgTokenRejected, zap.Error(err))
		return "", apperr.Wrap(apperr.KindUnauthorized, apperr.MsgUnauthorized, err)
	}

	return userID, nil
}

package service

import (
	"context"
	"fmt"
	"jumpy/config"
	"jumpy/infras/jwt"
	"jumpy/infras/otel"
	"jumpy/internal/domains/adminuser/model"
	"jumpy/internal/domains/adminuser/model/dto"
	"jumpy/internal/domains/adminuser/repository"
	"jumpy/shared"
	"jumpy/shared/constant"
	"jumpy/shared/failure"
	"jumpy/shared/password"
	"jumpy/shared/timezone"

	"github.com/rs/zerolog/log"
)

// One message for every credential failure, the login form never reveals
// whether the email exists.
const invalidCredentialsText = "invalid email or password"

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Refresh(ctx context.Context, req dto.RefreshRequest) (jwt.TokenPair, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
}

type serviceImpl struct {
	repo repository.AdminUser
	cfg  *config.Config
	jwt  jwt.JWT
	otel otel.Otel
}

func New(repo repository.AdminUser, cfg *config.Config, jwtService jwt.JWT, otel otel.Otel) Auth {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		jwt:  jwtService,
		otel: otel,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.repo.Get(ctx, shared.FilterByID(req.Email, model.FieldEmail, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin user")

		return res, fmt.Errorf("failed to get admin user: %w", err)
	}

	if user.ID == constant.Empty || !user.Active {
		return res, failure.BadRequestFromString(invalidCredentialsText)
	}

	if err = password.Verify(req.Password, user.PasswordHash); err != nil {
		return res, failure.BadRequestFromString(invalidCredentialsText)
	}

	tokens, err := s.jwt.GenerateTokenPair(user.ID, user.Email, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token pair")

		return res, fmt.Errorf("failed to generate token pair: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		fields := map[string]any{
			model.FieldLastLogin:     timezone.Now(),
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user.ID,
		}

		if err := s.repo.Update(c, fields, shared.FilterByID(user.ID, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Str("userID", user.ID).Msg("failed to stamp last login")
		}
	}()

	res.User.FromModel(user)
	res.Tokens = *tokens

	return res, nil
}

func (s *serviceImpl) Refresh(ctx context.Context, req dto.RefreshRequest) (res jwt.TokenPair, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Refresh")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokens, err := s.jwt.RefreshTokens(req.RefreshToken)
	if err != nil {
		return res, failure.Unauthorized("invalid refresh token")
	}

	return *tokens, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(userID, model.FieldID, model.TableName)

	user, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin user")

		return fmt.Errorf("failed to get admin user: %w", err)
	}

	if user.ID == constant.Empty {
		return failure.NotFound("admin user not found")
	}

	if err = password.Verify(req.CurrentPassword, user.PasswordHash); err != nil {
		return failure.BadRequestFromString("current password is incorrect")
	}

	hash, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	fields := map[string]any{
		"password_hash":          hash,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: userID,
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

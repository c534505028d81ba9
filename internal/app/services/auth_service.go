package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/nadira/campusconduct/internal/app/models/dto"
	"github.com/nadira/campusconduct/internal/app/repositories"
	"github.com/nadira/campusconduct/internal/pkg/apperrors"
	"github.com/nadira/campusconduct/internal/pkg/auth"
)

// authService implements AuthService
type authService struct {
	staffRepo  repositories.IStaffRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(staffRepo repositories.IStaffRepository, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authService{
		staffRepo:  staffRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login authenticates a staff member and issues a signed token.
// Unknown email and wrong password yield the same error so the
// response never reveals which staff accounts exist.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	staff, err := s.staffRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrStaffNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(staff.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, expiresIn, err := s.jwtService.GenerateToken(staff)
	if err != nil {
		s.logger.Error().Err(err).Int64("staffId", staff.ID).Msg("Failed to sign access token")
		return nil, err
	}

	s.logger.Info().Int64("staffId", staff.ID).Msg("Staff member logged in")

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/thalibook/thalibook-api/internal/domain"
	userRepo "github.com/thalibook/thalibook-api/internal/infra/storage/user"
	"github.com/thalibook/thalibook-api/internal/service/auth/models"
)

// Service сервис регистрации и аутентификации
type Service struct {
	userRepo UserRepository
	tokens   TokenIssuer
	logger   Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(userRepo UserRepository, tokens TokenIssuer, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register регистрирует нового пользователя и сразу выдает токен
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	s.logger.Info("Register: registering user email=%s, role=%s", email, req.Role)

	role := domain.Role(req.Role)
	if req.Role == "" {
		role = domain.RoleCustomer
	}
	if !role.IsValid() {
		s.logger.Warn("Register: invalid role=%s for email=%s", req.Role, email)
		return nil, fmt.Errorf("%w: unknown role", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Phone:        req.Phone,
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			s.logger.Warn("Register: email=%s already registered", email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	return s.buildAuthResponse(created, "Register")
}

// Login аутентифицирует пользователя по email и паролю
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	s.logger.Info("Login: authenticating email=%s", email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for email=%s", email)
		return nil, ErrInvalidCredentials
	}

	return s.buildAuthResponse(user, "Login")
}

// GetUser возвращает публичные данные пользователя по ID
func (s *Service) GetUser(ctx context.Context, id int64) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("GetUser: repository error for user=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetUser - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUser(user), nil
}

func (s *Service) buildAuthResponse(user *domain.User, op string) (*models.AuthResponse, error) {
	token, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error("%s: failed to issue token for user=%d: %v", op, user.ID, err)
		return nil, fmt.Errorf("%w: %s - issue token: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: authenticated user=%d, role=%s", op, user.ID, user.Role)
	return &models.AuthResponse{
		Token: token,
		User:  *models.FromDomainUser(user),
	}, nil
}

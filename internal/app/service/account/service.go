package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/homegrove/estate/internal/models"
	"github.com/homegrove/estate/pkg/tool"
	"github.com/homegrove/estate/pkg/types"
)

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrEmailTaken          = errors.New("email already registered for this role")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidRegistration = errors.New("invalid registration")
)

type RegisterRequest struct {
	Role     types.Role `json:"role"`
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Phone    string     `json:"phone"`
}

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{db: db, log: log}
}

// Register creates a buyer or seller account. Staff and admin accounts are
// provisioned out of band.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*models.Account, error) {
	if req.Role != types.RoleBuyer && req.Role != types.RoleSeller {
		return nil, fmt.Errorf("%w: registration is limited to buyer and seller roles", ErrInvalidRegistration)
	}
	if req.Name == "" || req.Email == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrInvalidRegistration)
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidRegistration)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Account{}).
		Where("role = ? AND email = ?", req.Role, email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	acct := &models.Account{
		ID:           tool.GenerateUUIDV7(),
		Role:         req.Role,
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
	}
	if err := s.db.WithContext(ctx).Create(acct).Error; err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	s.log.Infow("account registered", "account_id", acct.ID, "role", acct.Role)
	return acct, nil
}

// Login checks credentials for the given role and returns the account.
func (s *Service) Login(ctx context.Context, role types.Role, email, password string) (*models.Account, error) {
	var acct models.Account
	err := s.db.WithContext(ctx).
		Where("role = ? AND email = ?", role, strings.ToLower(strings.TrimSpace(email))).
		First(&acct).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &acct, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.Account, error) {
	var acct models.Account
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&acct).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &acct, nil
}

// GetByRole returns an account only if it has the expected role.
func (s *Service) GetByRole(ctx context.Context, id string, role types.Role) (*models.Account, error) {
	acct, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if acct.Role != role {
		return nil, ErrAccountNotFound
	}
	return acct, nil
}

package services

import (
	"context"
	"errors"
	"strings"

	"github.com/franciscosanchezn/tablekeeper/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type UserService interface {
	// CreateUser hashes the plain text password and stores the user
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	// Authenticate checks credentials and, when role is not empty, that the account holds that role
	Authenticate(ctx context.Context, email, password, role string) (*models.User, error)
	// EnsureOwner creates the owner account if no user with that email exists yet
	EnsureOwner(ctx context.Context, name, email, password string) error
}

type userService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db}
}

func (s *userService) CreateUser(ctx context.Context, user *models.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if user.Role == "" {
		user.Role = models.RoleCustomer
	}
	if !models.ValidRole(user.Role) {
		return invalid("Invalid role. Must be one of: customer, staff, owner")
	}
	if err := user.HashPassword(); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.User{}).Where("email = ?", user.Email).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrDuplicateEmail
		}
		return duplicate(tx.Create(user).Error)
	})
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *userService) Authenticate(ctx context.Context, email, password, role string) (*models.User, error) {
	user, err := s.GetUserByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	if role != "" && user.Role != role {
		return nil, ErrRoleMismatch
	}
	return user, nil
}

func (s *userService) EnsureOwner(ctx context.Context, name, email, password string) error {
	if email == "" || password == "" {
		logrus.Debug("No owner credentials configured, skipping owner seed")
		return nil
	}
	_, err := s.GetUserByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrNotFound) {
		return err
	}
	owner := &models.User{Name: name, Email: email, Password: password, Role: models.RoleOwner}
	if err := s.CreateUser(ctx, owner); err != nil {
		return err
	}
	logrus.WithField("email", owner.Email).Info("Seeded owner account")
	return nil
}

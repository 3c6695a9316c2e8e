package services

import (
	"context"
	"strings"

	"github.com/franciscosanchezn/tablekeeper/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type ClientService interface {
	// CreateClient generates credentials for a new client and returns the plain secret once
	CreateClient(ctx context.Context, client *models.OAuthClient) (string, error)
	GetClientsByUserID(ctx context.Context, userID string) ([]models.OAuthClient, error)
	GetClientByID(ctx context.Context, id string) (*models.OAuthClient, error)
	DeleteClient(ctx context.Context, clientID, userID string) error
}

type clientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) ClientService {
	return &clientService{db: db}
}

func (s *clientService) CreateClient(ctx context.Context, client *models.OAuthClient) (string, error) {
	if strings.TrimSpace(client.Name) == "" {
		return "", invalid("Client name is required")
	}
	if client.UserID == "" {
		return "", invalid("Client must belong to a user")
	}
	secret := uuid.NewString()
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	if client.ID == "" {
		client.ID = uuid.NewString()
	}
	client.Secret = string(hashed)
	if client.GrantTypes == "" {
		client.GrantTypes = "client_credentials"
	}
	if err := s.db.WithContext(ctx).Create(client).Error; err != nil {
		return "", err
	}
	return secret, nil
}

func (s *clientService) GetClientsByUserID(ctx context.Context, userID string) ([]models.OAuthClient, error) {
	var clients []models.OAuthClient
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (s *clientService) GetClientByID(ctx context.Context, id string) (*models.OAuthClient, error) {
	var client models.OAuthClient
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&client).Error; err != nil {
		return nil, notFound(err)
	}
	return &client, nil
}

func (s *clientService) DeleteClient(ctx context.Context, clientID, userID string) error {
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", clientID, userID).Delete(&models.OAuthClient{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

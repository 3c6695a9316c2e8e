package services

import (
	"context"
	"errors"
	"strings"

	"github.com/franciscosanchezn/tablekeeper/internal/models"
	"gorm.io/gorm"
)

type StaffService interface {
	List(ctx context.Context) ([]models.Staff, error)
	Get(ctx context.Context, id string) (*models.Staff, error)
	Create(ctx context.Context, staff *models.Staff) error
	Replace(ctx context.Context, id string, staff models.Staff) (*models.Staff, error)
	Delete(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id, status string) (*models.Staff, error)
}

type staffService struct {
	db *gorm.DB
}

func NewStaffService(db *gorm.DB) StaffService {
	return &staffService{db: db}
}

func (s *staffService) List(ctx context.Context) ([]models.Staff, error) {
	var staff []models.Staff
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *staffService) Get(ctx context.Context, id string) (*models.Staff, error) {
	var member models.Staff
	if err := s.db.WithContext(ctx).First(&member, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &member, nil
}

func (s *staffService) Create(ctx context.Context, staff *models.Staff) error {
	if err := checkStaff(staff); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := emailFree(tx, staff.Email, ""); err != nil {
			return err
		}
		return duplicate(tx.Create(staff).Error)
	})
}

func (s *staffService) Replace(ctx context.Context, id string, staff models.Staff) (*models.Staff, error) {
	if err := checkStaff(&staff); err != nil {
		return nil, err
	}
	var existing models.Staff
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&existing, "id = ?", id).Error; err != nil {
			return notFound(err)
		}
		if err := emailFree(tx, staff.Email, id); err != nil {
			return err
		}
		existing.Name = staff.Name
		existing.Position = staff.Position
		existing.Email = staff.Email
		existing.Phone = staff.Phone
		existing.Salary = staff.Salary
		existing.StartDate = staff.StartDate
		existing.Status = staff.Status
		existing.Avatar = staff.Avatar
		return duplicate(tx.Save(&existing).Error)
	})
	if err != nil {
		return nil, err
	}
	return &existing, nil
}

func (s *staffService) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&models.Staff{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *staffService) SetStatus(ctx context.Context, id, status string) (*models.Staff, error) {
	if !models.ValidStaffStatus(status) {
		return nil, invalid("Invalid status. Must be one of: active, inactive")
	}
	member, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(member).Update("status", status).Error; err != nil {
		return nil, err
	}
	member.Status = status
	return member, nil
}

func checkStaff(staff *models.Staff) error {
	staff.Email = strings.ToLower(strings.TrimSpace(staff.Email))
	if staff.Salary < 0 {
		return invalid("Salary cannot be negative")
	}
	if staff.Status == "" {
		staff.Status = models.StaffActive
	}
	if !models.ValidStaffStatus(staff.Status) {
		return invalid("Invalid status. Must be one of: active, inactive")
	}
	return nil
}

// emailFree fails with ErrDuplicateEmail when another staff record already uses email
func emailFree(tx *gorm.DB, email, exceptID string) error {
	q := tx.Model(&models.Staff{}).Where("email = ?", email)
	if exceptID != "" {
		q = q.Where("id <> ?", exceptID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return ErrDuplicateEmail
	}
	return nil
}

func duplicate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEmail
	}
	return err
}

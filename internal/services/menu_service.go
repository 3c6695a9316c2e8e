package services

import (
	"context"
	"strings"

	"github.com/franciscosanchezn/tablekeeper/internal/models"
	"gorm.io/gorm"
)

// MenuFilter narrows a menu listing. Empty fields are ignored.
type MenuFilter struct {
	Category string
	Dietary  string
	Status   string
	Search   string
	Featured *bool
}

// MenuService provides methods to interact with the menu items
type MenuService interface {
	// List returns menu items newest first
	List(ctx context.Context, filter MenuFilter) ([]models.MenuItem, error)
	// Featured returns featured items that can currently be ordered
	Featured(ctx context.Context) ([]models.MenuItem, error)
	Get(ctx context.Context, id string) (*models.MenuItem, error)
	Create(ctx context.Context, item *models.MenuItem) error
	// Replace overwrites every editable field of an existing item
	Replace(ctx context.Context, id string, item models.MenuItem) (*models.MenuItem, error)
	Delete(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id, status string) (*models.MenuItem, error)
	// SeedDefaults inserts a starter menu when the table is empty
	SeedDefaults(ctx context.Context) error
}

type menuService struct {
	db *gorm.DB
}

func NewMenuService(db *gorm.DB) MenuService {
	return &menuService{db: db}
}

func (s *menuService) List(ctx context.Context, filter MenuFilter) ([]models.MenuItem, error) {
	q := s.db.WithContext(ctx).Model(&models.MenuItem{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Featured != nil {
		q = q.Where("featured = ?", *filter.Featured)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var items []models.MenuItem
	if err := q.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}

	// Dietary tags live in a JSON column, filtered here to stay portable across drivers
	if filter.Dietary != "" {
		kept := items[:0]
		for _, it := range items {
			if it.HasDietary(filter.Dietary) {
				kept = append(kept, it)
			}
		}
		items = kept
	}
	return items, nil
}

func (s *menuService) Featured(ctx context.Context) ([]models.MenuItem, error) {
	featured := true
	return s.List(ctx, MenuFilter{Featured: &featured, Status: models.MenuStatusAvailable})
}

func (s *menuService) Get(ctx context.Context, id string) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

func (s *menuService) Create(ctx context.Context, item *models.MenuItem) error {
	if err := checkMenuItem(item); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *menuService) Replace(ctx context.Context, id string, item models.MenuItem) (*models.MenuItem, error) {
	if err := checkMenuItem(&item); err != nil {
		return nil, err
	}
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = item.Name
	existing.Description = item.Description
	existing.Category = item.Category
	existing.Price = item.Price
	existing.Image = item.Image
	existing.Dietary = item.Dietary
	existing.Featured = item.Featured
	existing.Status = item.Status

	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *menuService) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&models.MenuItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *menuService) SetStatus(ctx context.Context, id, status string) (*models.MenuItem, error) {
	if !models.ValidMenuStatus(status) {
		return nil, invalid("Invalid status. Must be one of: available, unavailable, sold_out")
	}
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(item).Update("status", status).Error; err != nil {
		return nil, err
	}
	item.Status = status
	return item, nil
}

// checkMenuItem fills defaults and rejects values outside the closed enums
func checkMenuItem(item *models.MenuItem) error {
	if !models.ValidMenuCategory(item.Category) {
		return invalid("Invalid category. Must be one of: " + strings.Join(models.MenuCategories, ", "))
	}
	if item.Price <= 0 {
		return invalid("Price must be greater than zero")
	}
	if item.Status == "" {
		item.Status = models.MenuStatusAvailable
	}
	if !models.ValidMenuStatus(item.Status) {
		return invalid("Invalid status. Must be one of: available, unavailable, sold_out")
	}
	if item.Dietary == nil {
		item.Dietary = []string{}
	}
	for _, tag := range item.Dietary {
		if !models.ValidDietaryTag(tag) {
			return invalid("Invalid dietary tag " + tag + ". Must be one of: " + strings.Join(models.DietaryTags, ", "))
		}
	}
	return nil
}

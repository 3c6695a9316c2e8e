package services

import (
	"context"

	"github.com/franciscosanchezn/tablekeeper/internal/models"
	"gorm.io/gorm"
)

var starterMenu = []models.MenuItem{
	{Name: "Garlic Bruschetta", Description: "Toasted sourdough, tomato, basil and garlic", Category: models.CategoryAppetizers, Price: 7.5, Image: "/images/bruschetta.jpg", Dietary: []string{models.DietaryVegan}},
	{Name: "Grilled Salmon", Description: "Atlantic salmon with lemon butter and greens", Category: models.CategoryMainCourse, Price: 22, Image: "/images/salmon.jpg", Dietary: []string{models.DietaryGlutenFree}, Featured: true},
	{Name: "Mushroom Risotto", Description: "Arborio rice, wild mushrooms and parmesan", Category: models.CategoryMainCourse, Price: 18, Image: "/images/risotto.jpg", Dietary: []string{models.DietaryVegetarian, models.DietaryGlutenFree}, Featured: true},
	{Name: "Chocolate Fondant", Description: "Warm chocolate cake with a molten centre", Category: models.CategoryDesserts, Price: 9, Image: "/images/fondant.jpg", Dietary: []string{models.DietaryVegetarian}},
	{Name: "Fresh Lemonade", Description: "House made with mint", Category: models.CategoryBeverages, Price: 4, Image: "/images/lemonade.jpg", Dietary: []string{models.DietaryVegan, models.DietaryGlutenFree}},
	{Name: "Rosemary Fries", Description: "Hand cut potatoes, sea salt and rosemary", Category: models.CategorySides, Price: 5, Image: "/images/fries.jpg", Dietary: []string{models.DietaryVegan, models.DietaryDairyFree}},
}

func (s *menuService) SeedDefaults(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		items := make([]models.MenuItem, len(starterMenu))
		copy(items, starterMenu)
		for i := range items {
			items[i].Status = models.MenuStatusAvailable
		}
		return tx.Create(&items).Error
	})
}

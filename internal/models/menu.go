package models

import (
	"slices"
	"time"

	"gorm.io/datatypes"
)

// Menu categories
const (
	CategoryAppetizers = "Appetizers"
	CategoryMainCourse = "Main Course"
	CategoryDesserts   = "Desserts"
	CategoryBeverages  = "Beverages"
	CategorySides      = "Sides"
)

// Dietary tags: vegetarian, vegan, gluten free, dairy free, contains nuts
const (
	DietaryVegetarian = "V"
	DietaryVegan      = "VG"
	DietaryGlutenFree = "GF"
	DietaryDairyFree  = "DF"
	DietaryNuts       = "N"
)

// Menu item availability
const (
	MenuStatusAvailable   = "available"
	MenuStatusUnavailable = "unavailable"
	MenuStatusSoldOut     = "sold_out"
)

var (
	MenuCategories = []string{CategoryAppetizers, CategoryMainCourse, CategoryDesserts, CategoryBeverages, CategorySides}
	DietaryTags    = []string{DietaryVegetarian, DietaryVegan, DietaryGlutenFree, DietaryDairyFree, DietaryNuts}
	MenuStatuses   = []string{MenuStatusAvailable, MenuStatusUnavailable, MenuStatusSoldOut}
)

// MenuItem is a dish offered on the storefront
type MenuItem struct {
	Base
	Name        string                      `gorm:"not null" json:"name"`
	Description string                      `gorm:"not null" json:"description"`
	Category    string                      `gorm:"not null;index" json:"category"`
	Price       float64                     `gorm:"not null" json:"price"`
	Image       string                      `gorm:"not null" json:"image"`
	Dietary     datatypes.JSONSlice[string] `json:"dietary"`
	Featured    bool                        `gorm:"not null;default:false" json:"featured"`
	Status      string                      `gorm:"not null;default:available;index" json:"status"`
	CreatedAt   time.Time                   `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}

// HasDietary reports whether the item carries the given tag
func (m *MenuItem) HasDietary(tag string) bool {
	return slices.Contains(m.Dietary, tag)
}

func ValidMenuCategory(c string) bool { return slices.Contains(MenuCategories, c) }
func ValidDietaryTag(t string) bool   { return slices.Contains(DietaryTags, t) }
func ValidMenuStatus(s string) bool   { return slices.Contains(MenuStatuses, s) }

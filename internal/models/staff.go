package models

import "time"

const (
	StaffActive   = "active"
	StaffInactive = "inactive"
)

// Staff is an employee record managed from the owner dashboard
type Staff struct {
	Base
	Name      string    `gorm:"not null" json:"name"`
	Position  string    `gorm:"not null" json:"position"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Phone     string    `gorm:"not null" json:"phone"`
	Salary    float64   `gorm:"not null" json:"salary"`
	StartDate time.Time `gorm:"not null" json:"startDate"`
	Status    string    `gorm:"not null;default:active" json:"status"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ValidStaffStatus(s string) bool {
	return s == StaffActive || s == StaffInactive
}

package models

import "time"

type UserRole string

const (
	RoleSuperAdmin UserRole = "super_admin"
	RoleEmployee   UserRole = "employee"
)

type User struct {
	ID           uint     `gorm:"primaryKey"`
	Username     string   `gorm:"size:150;uniqueIndex;not null"` // email'in @ öncesinden türetilir
	Email        string   `gorm:"size:100;uniqueIndex;not null"`
	FirstName    string   `gorm:"size:100"`
	LastName     string   `gorm:"size:100"`
	PasswordHash string   `gorm:"size:255;not null"`
	Role         UserRole `gorm:"size:20;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	UserData *UserData
}

// UserData - Çalışanın işe giriş/çıkış tarihleri (employee formundan yazılır)
type UserData struct {
	ID        uint       `gorm:"primaryKey"`
	UserID    uint       `gorm:"uniqueIndex;not null"`
	StartDate *time.Time `gorm:"type:date"`
	EndDate   *time.Time `gorm:"type:date"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

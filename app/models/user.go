package models

import "time"

// User represents an agency account (staff or model)
type User struct {
	ID             int        `json:"id" gorm:"primaryKey" validate:"required"`
	Email          string     `json:"email" gorm:"uniqueIndex;not null" validate:"required,email"`
	Password       string     `json:"-" gorm:"not null" validate:"required,min=8"`
	FullName       string     `json:"fullName" gorm:"not null" validate:"required"`
	Role           UserRole   `json:"role" gorm:"not null;type:varchar(20)" validate:"required"`
	SoloPercentage int        `json:"soloPercentage,omitempty" gorm:"default:0"`
	IsActive       bool       `json:"isActive" gorm:"default:true"`
	CreatedAt      time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
	DeletedAt      *time.Time `json:"deletedAt,omitempty" gorm:"index"`
}

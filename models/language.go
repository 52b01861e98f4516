package models

import "time"

// Language is a locale the portfolio content is published in
type Language struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Code      string    `json:"code" gorm:"type:varchar(5);not null;uniqueIndex:idx_language_code"`
	Name      string    `json:"name" gorm:"type:varchar(50);not null"`
	IsActive  bool      `json:"isActive" gorm:"not null"`
	IsDefault bool      `json:"isDefault" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"not null;autoUpdateTime"`
}

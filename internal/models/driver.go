package models

import (
	"time"

	"gorm.io/gorm"
)

type Driver struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"not null"`
	Phone       string  `json:"phone" gorm:"uniqueIndex;not null"`
	Email       string  `json:"email"`
	Password    string  `json:"-" gorm:"not null"`
	IsVerified  bool    `json:"is_verified" gorm:"default:false"`
	IsAvailable bool    `json:"is_available" gorm:"default:true"`
	Earnings    float64 `json:"earnings" gorm:"type:decimal(12,2);default:0"`
	// Comma-separated references to uploaded document objects.
	Documents  string  `json:"documents" gorm:"type:text"`
	CurrentLat float64 `json:"current_lat" gorm:"default:0"`
	CurrentLng float64 `json:"current_lng" gorm:"default:0"`
	Orders     []Order `json:"orders,omitempty" gorm:"foreignKey:DriverID"`

	Version   uint           `json:"version" gorm:"default:1"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

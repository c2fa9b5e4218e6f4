package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a customer account. An account is either password-based
// (phone + password) or federated (google id), never both.
type User struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	Name      string        `json:"name" gorm:"not null"`
	Email     string        `json:"email" gorm:"uniqueIndex;not null"`
	Phone     *string       `json:"phone" gorm:"uniqueIndex"`
	Password  *string       `json:"-"`
	GoogleID  *string       `json:"google_id" gorm:"uniqueIndex"`
	Addresses []UserAddress `json:"addresses,omitempty" gorm:"foreignKey:UserID"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type UserAddress struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Label     string    `json:"label"`
	Building  string    `json:"building"`
	Apartment string    `json:"apartment"`
	Emirate   string    `json:"emirate"`
	Area      string    `json:"area"`
	CreatedAt time.Time `json:"created_at"`
}

type Admin struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	ID             uint    `json:"id" gorm:"primaryKey"`
	TrackingNumber string  `json:"tracking_number" gorm:"uniqueIndex;not null"`
	UserID         *uint   `json:"user_id" gorm:"index"`
	User           *User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	DriverID       *uint   `json:"driver_id" gorm:"index"`
	Driver         *Driver `json:"driver,omitempty" gorm:"foreignKey:DriverID"`

	PickupBuilding  string `json:"pickup_building" gorm:"not null"`
	PickupApartment string `json:"pickup_apartment" gorm:"not null"`
	PickupEmirate   string `json:"pickup_emirate" gorm:"not null"`
	PickupArea      string `json:"pickup_area" gorm:"not null"`
	PickupPhone     string `json:"pickup_phone" gorm:"not null"`
	DropBuilding    string `json:"drop_building" gorm:"not null"`
	DropApartment   string `json:"drop_apartment" gorm:"not null"`
	DropEmirate     string `json:"drop_emirate" gorm:"not null"`
	DropArea        string `json:"drop_area" gorm:"not null"`
	DropPhone       string `json:"drop_phone" gorm:"not null"`

	DeliveryType  string  `json:"delivery_type" gorm:"not null"`  // delivery, standard, express, next-day, return
	ReturnType    string  `json:"return_type" gorm:"not null"`    // no-return, with-return
	PaymentMethod string  `json:"payment_method" gorm:"not null"` // card, cash
	Amount        float64 `json:"amount" gorm:"type:decimal(12,2);not null"`
	PaymentStatus string  `json:"payment_status" gorm:"default:'pending'"` // pending, completed, failed, refunded
	Status        string  `json:"status" gorm:"default:'pending'"`         // pending, accepted, picked_up, in_transit, delivered
	Notes         string  `json:"notes"`

	Version   uint           `json:"version" gorm:"default:1"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderAccepted  OrderStatus = "accepted"
	OrderPickedUp  OrderStatus = "picked_up"
	OrderInTransit OrderStatus = "in_transit"
	OrderDelivered OrderStatus = "delivered"
)

type DeliveryType string

const (
	DeliveryDefault  DeliveryType = "delivery"
	DeliveryStandard DeliveryType = "standard"
	DeliveryExpress  DeliveryType = "express"
	DeliveryNextDay  DeliveryType = "next-day"
	DeliveryReturn   DeliveryType = "return"
)

type ReturnType string

const (
	NoReturn   ReturnType = "no-return"
	WithReturn ReturnType = "with-return"
)

type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentCash PaymentMethod = "cash"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

package models

import "time"

type Wallet struct {
	ID           uint                `json:"id" gorm:"primaryKey"`
	DriverID     uint                `json:"driver_id" gorm:"uniqueIndex;not null"`
	Balance      float64             `json:"balance" gorm:"type:decimal(12,2);default:0"`
	Transactions []WalletTransaction `json:"transactions,omitempty" gorm:"foreignKey:WalletID"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

type WalletTransaction struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	WalletID    uint      `json:"wallet_id" gorm:"not null;index"`
	OrderID     *uint     `json:"order_id" gorm:"index"`
	Order       *Order    `json:"order,omitempty" gorm:"foreignKey:OrderID"`
	Amount      float64   `json:"amount" gorm:"type:decimal(12,2);not null"`
	Type        string    `json:"type" gorm:"not null"` // credit, debit
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

type Withdrawal struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	DriverID  uint      `json:"driver_id" gorm:"not null;index"`
	Driver    *Driver   `json:"driver,omitempty" gorm:"foreignKey:DriverID"`
	Amount    float64   `json:"amount" gorm:"type:decimal(12,2);not null"`
	Status    string    `json:"status" gorm:"default:'pending'"` // pending, approved, rejected, paid
	AdminNote string    `json:"admin_note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type WithdrawalStatus string

const (
	WithdrawalPending  WithdrawalStatus = "pending"
	WithdrawalApproved WithdrawalStatus = "approved"
	WithdrawalRejected WithdrawalStatus = "rejected"
	WithdrawalPaid     WithdrawalStatus = "paid"
)

// Sequence backs tracking-number generation. The single "orders" row is
// incremented inside the order-create transaction so concurrent creations
// cannot observe the same value.
type Sequence struct {
	Name  string `json:"name" gorm:"primaryKey"`
	Value uint64 `json:"value" gorm:"not null;default:0"`
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is owned by the surrounding shop; the bridge only reads it and applies
// payment-driven status transitions. OrderKey is the stable external reference
// sent to My-CoolPay as app_transaction_ref.
type Order struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	OrderKey       string          `gorm:"size:64;uniqueIndex;not null" json:"order_key"`
	Total          decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	Currency       string          `gorm:"size:3;not null" json:"currency"`
	Status         string          `gorm:"size:20;not null;index" json:"status"`
	BillingName    string          `gorm:"size:255" json:"billing_name"`
	BillingEmail   string          `gorm:"size:255" json:"billing_email"`
	BillingPhone   string          `gorm:"size:64" json:"billing_phone"`
	BillingCountry string          `gorm:"size:2" json:"billing_country"`
	TransactionRef string          `gorm:"size:255;index" json:"transaction_ref"`
	PaidAt         *time.Time      `json:"paid_at"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

func (Order) TableName() string { return "orders" }

type OrderItem struct {
	ID       uint            `gorm:"primaryKey" json:"id"`
	OrderID  uint            `gorm:"not null;index" json:"order_id"`
	Name     string          `gorm:"size:255;not null" json:"name"`
	Quantity int             `gorm:"not null;default:1" json:"quantity"`
	Price    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
}

func (OrderItem) TableName() string { return "order_items" }

// OrderNote is the audit trail the shop shows on the order page.
type OrderNote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"not null;index" json:"order_id"`
	Note      string    `gorm:"type:text;not null" json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

func (OrderNote) TableName() string { return "order_notes" }

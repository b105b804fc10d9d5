package handler

import (
	"context"

	"coolpay/internal/models"
	"coolpay/internal/service"
	"coolpay/pkg/coolpay"
)

// OrderStore is the order-repository surface the bridge needs from the
// surrounding shop. repository.OrderRepository implements it.
type OrderStore interface {
	FindByID(id uint) (*models.Order, error)
	FindByKey(key string) (*models.Order, error)
	MarkPaid(o *models.Order, autocomplete bool) error
	UpdateStatus(o *models.Order, status, reason string) error
	AppendNote(o *models.Order, note string) error
	SetTransactionRef(o *models.Order, ref string) error
	Notes(orderID uint) ([]models.OrderNote, error)
}

// AuditStore records callback decisions.
type AuditStore interface {
	Create(entry *models.AuditLog) error
}

// ConfigSource yields a gateway settings snapshot per request.
type ConfigSource interface {
	Load() (*service.GatewayConfig, error)
}

// PaylinkAPI is the outbound provider call.
type PaylinkAPI interface {
	Paylink(ctx context.Context, publicKey string, req coolpay.PaylinkRequest) (*coolpay.PaylinkResponse, error)
}

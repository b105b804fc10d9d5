package handler

import (
	"context"
	"time"

	"coolpay/internal/domain"
	"coolpay/internal/models"
	"coolpay/internal/service"
	"coolpay/pkg/coolpay"

	"gorm.io/gorm"
)

type fakeOrderStore struct {
	order         *models.Order
	notes         []string
	statusChanges []string
	markPaidCalls int
}

func (f *fakeOrderStore) FindByID(id uint) (*models.Order, error) {
	if f.order != nil && f.order.ID == id {
		return f.order, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrderStore) FindByKey(key string) (*models.Order, error) {
	if f.order != nil && f.order.OrderKey == key {
		return f.order, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrderStore) MarkPaid(o *models.Order, autocomplete bool) error {
	f.markPaidCalls++
	if autocomplete {
		o.Status = domain.OrderStatusCompleted
	} else {
		o.Status = domain.OrderStatusProcessing
	}
	now := time.Now()
	o.PaidAt = &now
	return nil
}

func (f *fakeOrderStore) UpdateStatus(o *models.Order, status, reason string) error {
	o.Status = status
	f.statusChanges = append(f.statusChanges, status+": "+reason)
	return nil
}

func (f *fakeOrderStore) AppendNote(o *models.Order, note string) error {
	f.notes = append(f.notes, note)
	return nil
}

func (f *fakeOrderStore) SetTransactionRef(o *models.Order, ref string) error {
	o.TransactionRef = ref
	return nil
}

func (f *fakeOrderStore) Notes(orderID uint) ([]models.OrderNote, error) {
	return nil, nil
}

type fakeConfigSource struct {
	cfg *service.GatewayConfig
}

func (f *fakeConfigSource) Load() (*service.GatewayConfig, error) { return f.cfg, nil }

type fakeAuditStore struct {
	entries []models.AuditLog
}

func (f *fakeAuditStore) Create(entry *models.AuditLog) error {
	f.entries = append(f.entries, *entry)
	return nil
}

type fakePaylinkAPI struct {
	lastPublicKey string
	lastRequest   coolpay.PaylinkRequest
	response      *coolpay.PaylinkResponse
	err           error
}

func (f *fakePaylinkAPI) Paylink(ctx context.Context, publicKey string, req coolpay.PaylinkRequest) (*coolpay.PaylinkResponse, error) {
	f.lastPublicKey = publicKey
	f.lastRequest = req
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

package repository

import (
	"time"

	"coolpay/internal/domain"
	"coolpay/internal/models"

	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) FindByID(id uint) (*models.Order, error) {
	var o models.Order
	if err := r.db.Preload("Items").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) FindByKey(key string) (*models.Order, error) {
	var o models.Order
	if err := r.db.Where("order_key = ?", key).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// MarkPaid records a successful payment. The order goes to processing, or
// straight to completed when the gateway autocompletes orders.
func (r *OrderRepository) MarkPaid(o *models.Order, autocomplete bool) error {
	status := domain.OrderStatusProcessing
	if autocomplete {
		status = domain.OrderStatusCompleted
	}
	now := time.Now()
	o.Status = status
	o.PaidAt = &now
	return r.db.Model(o).Updates(map[string]interface{}{
		"status":  status,
		"paid_at": &now,
	}).Error
}

// UpdateStatus moves the order to the given status and records the reason as
// an order note, mirroring how the shop annotates status changes.
func (r *OrderRepository) UpdateStatus(o *models.Order, status, reason string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(o).Update("status", status).Error; err != nil {
			return err
		}
		o.Status = status
		if reason == "" {
			return nil
		}
		return tx.Create(&models.OrderNote{OrderID: o.ID, Note: reason}).Error
	})
}

func (r *OrderRepository) AppendNote(o *models.Order, note string) error {
	return r.db.Create(&models.OrderNote{OrderID: o.ID, Note: note}).Error
}

// SetTransactionRef persists the provider transaction reference on the order.
func (r *OrderRepository) SetTransactionRef(o *models.Order, ref string) error {
	o.TransactionRef = ref
	return r.db.Model(o).Update("transaction_ref", ref).Error
}

func (r *OrderRepository) Items(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.Where("order_id = ?", orderID).Order("id ASC").Find(&items).Error
	return items, err
}

func (r *OrderRepository) Notes(orderID uint) ([]models.OrderNote, error) {
	var notes []models.OrderNote
	err := r.db.Where("order_id = ?", orderID).Order("id ASC").Find(&notes).Error
	return notes, err
}

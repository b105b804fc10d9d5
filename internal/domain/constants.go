package domain

// Order statuses. Pending orders await payment; processing means paid and
// awaiting fulfilment; completed is the autocomplete fast path.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
	OrderStatusFailed     = "failed"
)

// PaidStatuses are the statuses a successful payment can leave an order in.
// A SUCCESS redelivery against any of these is a no-op.
var PaidStatuses = map[string]bool{
	OrderStatusProcessing: true,
	OrderStatusCompleted:  true,
}

// Payment method subsets selectable in gateway settings.
const (
	PaymentMethodsAll        = "all"
	PaymentMethodsMobile     = "mobile"
	PaymentMethodsCreditCard = "credit_card"
)

package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"coolpay/internal/domain"
	"coolpay/internal/events"
	"coolpay/internal/middleware"
	"coolpay/internal/models"
	"coolpay/pkg/coolpay"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	orders    OrderStore
	gateway   ConfigSource
	client    PaylinkAPI
	publisher *events.Publisher
}

func NewCheckoutHandler(orders OrderStore, gateway ConfigSource, client PaylinkAPI, publisher *events.Publisher) *CheckoutHandler {
	return &CheckoutHandler{orders: orders, gateway: gateway, client: client, publisher: publisher}
}

// Pay initiates a My-CoolPay payment for an order and returns the hosted
// payment page URL the customer's browser should be redirected to. Runs
// synchronously during checkout; the outcome arrives later on the callback.
func (h *CheckoutHandler) Pay(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}
	order, err := h.orders.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	cfg, err := h.gateway.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gateway configuration unavailable"})
		return
	}
	if !cfg.Enabled || cfg.PublicKey == "" || cfg.PrivateKey == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "payment gateway is not configured"})
		return
	}
	if domain.PaidStatuses[order.Status] {
		c.JSON(http.StatusConflict, gin.H{"error": "order is already paid"})
		return
	}

	amount, currency, err := coolpay.Convert(order.Total, order.Currency, cfg.Currency)
	if err != nil {
		h.fail(c, order, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	req := coolpay.PaylinkRequest{
		TransactionAmount:   amount,
		TransactionCurrency: currency,
		TransactionReason:   orderDescription(order.Items),
		AppTransactionRef:   order.OrderKey,
		CustomerName:        order.BillingName,
		CustomerEmail:       order.BillingEmail,
		CustomerLang:        cfg.CustomerLang(),
	}
	if phone, ok := coolpay.MobileMoneyPhone(order.BillingCountry, order.BillingPhone); ok {
		req.CustomerPhoneNumber = phone
	}

	resp, err := h.client.Paylink(c.Request.Context(), cfg.PublicKey, req)
	if err != nil {
		msg := coolpay.GenericInitiationMessage
		var initErr *coolpay.InitiationError
		if errors.As(err, &initErr) {
			msg = initErr.Message
		}
		h.fail(c, order, msg, http.StatusBadGateway)
		return
	}

	if err := h.orders.SetTransactionRef(order, resp.TransactionRef); err != nil {
		log.Printf("[Checkout] persist transaction_ref order_key=%s: %v", order.OrderKey, err)
	}
	_ = h.orders.AppendNote(order, "My-CoolPay payment initiated with reference: "+resp.TransactionRef)

	// The shop clears the shopper's cart on this event.
	h.publisher.Publish(events.TypeCheckoutInitiated, order, "")
	log.Printf("[Checkout] initiated order_key=%s ref=%s user_id=%d", order.OrderKey, resp.TransactionRef, middleware.GetUserID(c))

	c.JSON(http.StatusOK, gin.H{
		"result":   "success",
		"redirect": resp.PaymentURL,
	})
}

// fail annotates the order and surfaces a customer-visible error. The order
// stays payable; the customer may retry checkout, which starts a fresh
// initiation attempt.
func (h *CheckoutHandler) fail(c *gin.Context, order *models.Order, msg string, status int) {
	_ = h.orders.AppendNote(order, "My-CoolPay payment init failed with message: "+msg)
	log.Printf("[Checkout] init failed order_key=%s: %s", order.OrderKey, msg)
	c.JSON(status, gin.H{
		"result":  "failure",
		"message": "Payment error : " + msg,
	})
}

// orderDescription joins the line-item names, capped at the provider's
// 255-char reason limit.
func orderDescription(items []models.OrderItem) string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	desc := strings.Join(names, ", ")
	if len(desc) > 255 {
		desc = desc[:255]
	}
	return desc
}

package handler

import (
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"strings"

	"coolpay/internal/cache"
	"coolpay/internal/domain"
	"coolpay/internal/events"
	"coolpay/internal/models"
	"coolpay/pkg/coolpay"

	"github.com/gin-gonic/gin"
)

// CallbackHandler processes the asynchronous transaction-result webhook from
// My-CoolPay. Every gate must pass before any order mutation happens; a
// rejection never touches order state.
type CallbackHandler struct {
	providerIP string
	orders     OrderStore
	gateway    ConfigSource
	audit      AuditStore
	replay     *cache.ReplayCache
	publisher  *events.Publisher
}

func NewCallbackHandler(providerIP string, orders OrderStore, gateway ConfigSource, audit AuditStore, replay *cache.ReplayCache, publisher *events.Publisher) *CallbackHandler {
	return &CallbackHandler{
		providerIP: providerIP,
		orders:     orders,
		gateway:    gateway,
		audit:      audit,
		replay:     replay,
		publisher:  publisher,
	}
}

// Handle runs the gate pipeline: secret path token, source IP, parse,
// application key, signature, order lookup, then exactly one status
// transition. Transitions are idempotent under provider redelivery.
func (h *CallbackHandler) Handle(c *gin.Context) {
	cfg, err := h.gateway.Load()
	if err != nil {
		c.String(http.StatusInternalServerError, "Server error")
		return
	}
	if cfg.CallbackToken == "" || c.Param("token") != cfg.CallbackToken {
		c.String(http.StatusNotFound, "Not found")
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid payload")
		return
	}
	// Every delivery is logged before gating, accepted or not.
	log.Printf("[CoolPay callback] raw body: %s", string(body))

	if !h.fromProvider(c) {
		h.reject(c, http.StatusForbidden, "Unknown IP address", "")
		return
	}

	payload, err := coolpay.ParseCallback(c.ContentType(), body)
	if err != nil {
		log.Printf("[CoolPay callback] parse error: %v", err)
		h.reject(c, http.StatusBadRequest, "Invalid payload", "")
		return
	}

	if payload.Application != cfg.PublicKey {
		h.reject(c, http.StatusForbidden, "Unknown application", payload.TransactionRef)
		return
	}
	if !coolpay.Verify(payload, cfg.PrivateKey) {
		h.reject(c, http.StatusForbidden, "Bad signature", payload.TransactionRef)
		return
	}

	order, err := h.orders.FindByKey(payload.AppTransactionRef)
	if err != nil {
		h.reject(c, http.StatusNotFound, "Order not found", payload.TransactionRef)
		return
	}

	if seen, err := h.replay.MarkDelivery(c.Request.Context(), payload.TransactionRef, body); err != nil {
		log.Printf("[CoolPay callback] replay cache: %v", err)
	} else if seen {
		log.Printf("[CoolPay callback] redelivery of ref=%s status=%s", payload.TransactionRef, payload.TransactionStatus)
	}

	status, known := coolpay.ParseStatus(payload.TransactionStatus)
	if !known {
		h.reject(c, http.StatusBadRequest,
			fmt.Sprintf("Unknown transaction_status '%s'", payload.TransactionStatus),
			payload.TransactionRef)
		return
	}

	switch status {
	case coolpay.StatusSuccess:
		if !domain.PaidStatuses[order.Status] {
			if err := h.orders.MarkPaid(order, cfg.AutocompleteOrders); err != nil {
				log.Printf("[CoolPay callback] mark paid order_key=%s: %v", order.OrderKey, err)
				c.String(http.StatusInternalServerError, "Server error")
				return
			}
			_ = h.orders.AppendNote(order, "Payment was successful on My-CoolPay")
			h.publisher.Publish(events.TypePaymentCompleted, order, payload.TransactionMessage)
		}
		h.accept(c, order, payload, "Order completed")

	case coolpay.StatusCanceled:
		if order.Status != domain.OrderStatusCancelled {
			if err := h.orders.UpdateStatus(order, domain.OrderStatusCancelled, payload.TransactionMessage); err != nil {
				log.Printf("[CoolPay callback] cancel order_key=%s: %v", order.OrderKey, err)
				c.String(http.StatusInternalServerError, "Server error")
				return
			}
			h.publisher.Publish(events.TypePaymentCancelled, order, payload.TransactionMessage)
		}
		h.accept(c, order, payload, "Order cancelled")

	case coolpay.StatusFailed:
		if order.Status != domain.OrderStatusFailed {
			if err := h.orders.UpdateStatus(order, domain.OrderStatusFailed, payload.TransactionMessage); err != nil {
				log.Printf("[CoolPay callback] fail order_key=%s: %v", order.OrderKey, err)
				c.String(http.StatusInternalServerError, "Server error")
				return
			}
			h.publisher.Publish(events.TypePaymentFailed, order, payload.TransactionMessage)
		}
		h.accept(c, order, payload, "Order failed")
	}
}

// fromProvider accepts the request only when the forwarded-for or remote
// address equals the provider's server IP.
func (h *CallbackHandler) fromProvider(c *gin.Context) bool {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first := strings.TrimSpace(strings.Split(xff, ",")[0])
		if first == h.providerIP {
			return true
		}
	}
	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		host = c.Request.RemoteAddr
	}
	return host == h.providerIP
}

func (h *CallbackHandler) reject(c *gin.Context, status int, reason, transactionRef string) {
	_ = h.audit.Create(&models.AuditLog{
		Action:     "callback_rejected",
		Resource:   "callback",
		ResourceID: transactionRef,
		IP:         c.ClientIP(),
		Detail:     reason,
	})
	c.String(status, reason)
}

func (h *CallbackHandler) accept(c *gin.Context, order *models.Order, payload *coolpay.CallbackPayload, text string) {
	_ = h.audit.Create(&models.AuditLog{
		Action:     "callback_applied",
		Resource:   "order",
		ResourceID: order.OrderKey,
		IP:         c.ClientIP(),
		Detail:     fmt.Sprintf("%s ref=%s", payload.TransactionStatus, payload.TransactionRef),
	})
	c.String(http.StatusOK, text)
}

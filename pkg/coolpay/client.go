package coolpay

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
)

// DefaultBaseURL is the production My-CoolPay API root.
const DefaultBaseURL = "https://my-coolpay.com/api"

// PaylinkRequest asks the provider for a hosted payment page.
type PaylinkRequest struct {
	TransactionAmount   decimal.Decimal `json:"transaction_amount"`
	TransactionCurrency string          `json:"transaction_currency"`
	TransactionReason   string          `json:"transaction_reason"`
	AppTransactionRef   string          `json:"app_transaction_ref"`
	CustomerName        string          `json:"customer_name"`
	CustomerEmail       string          `json:"customer_email"`
	CustomerLang        string          `json:"customer_lang"`
	CustomerPhoneNumber string          `json:"customer_phone_number,omitempty"`
}

// PaylinkResponse is the provider's answer. Status is "success" on the happy
// path; otherwise Message explains.
type PaylinkResponse struct {
	Status         string `json:"status"`
	TransactionRef string `json:"transaction_ref"`
	PaymentURL     string `json:"payment_url"`
	Message        string `json:"message"`
}

// Client talks to the My-CoolPay paylink API. A circuit breaker trips after
// consecutive provider failures so checkout degrades fast instead of stacking
// blocked requests.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

// NewClient builds a paylink client with a bounded timeout. insecureSkipVerify
// disables TLS certificate verification for legacy self-signed setups; leave it
// off unless the provider endpoint cannot present a valid chain.
func NewClient(baseURL string, timeout time.Duration, insecureSkipVerify bool) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	transport := http.DefaultTransport
	if insecureSkipVerify {
		log.Printf("[CoolPay] TLS certificate verification DISABLED for %s", baseURL)
		transport = &http.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: true}}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout, Transport: transport},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name: "coolpay-paylink",
			ReadyToTrip: func(c gobreaker.Counts) bool {
				return c.ConsecutiveFailures >= 5
			},
		}),
	}
}

// Paylink requests a hosted payment page for the transaction. A non-"success"
// provider status, a transport error or a tripped breaker all come back as
// *InitiationError.
func (c *Client) Paylink(ctx context.Context, publicKey string, req PaylinkRequest) (*PaylinkResponse, error) {
	out, err := c.breaker.Execute(func() (interface{}, error) {
		return c.doPaylink(ctx, publicKey, req)
	})
	if err != nil {
		var initErr *InitiationError
		if errors.As(err, &initErr) {
			return nil, initErr
		}
		return nil, &InitiationError{Message: GenericInitiationMessage, Err: err}
	}
	return out.(*PaylinkResponse), nil
}

func (c *Client) doPaylink(ctx context.Context, publicKey string, req PaylinkRequest) (*PaylinkResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	endpoint := fmt.Sprintf("%s/%s/paylink", c.baseURL, publicKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	log.Printf("[CoolPay] POST paylink ref=%s amount=%s %s", req.AppTransactionRef, req.TransactionAmount, req.TransactionCurrency)
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("paylink request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	log.Printf("[CoolPay] paylink response status=%d body=%s", resp.StatusCode, string(raw))

	var out PaylinkResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse paylink response: %w", err)
	}
	if out.Status != "success" {
		msg := out.Message
		if msg == "" {
			msg = GenericInitiationMessage
		}
		return nil, &InitiationError{Message: msg}
	}
	return &out, nil
}

package coolpay

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// CallbackPayload is the webhook body My-CoolPay posts after a transaction
// reaches a terminal state. Amount stays a string so the signature is computed
// over the exact bytes the provider signed.
type CallbackPayload struct {
	Application         string `json:"application"`
	TransactionRef      string `json:"transaction_ref"`
	AppTransactionRef   string `json:"app_transaction_ref"`
	TransactionType     string `json:"transaction_type"`
	TransactionAmount   string `json:"transaction_amount"`
	TransactionCurrency string `json:"transaction_currency"`
	TransactionOperator string `json:"transaction_operator"`
	TransactionStatus   string `json:"transaction_status"`
	TransactionMessage  string `json:"transaction_message"`
	Signature           string `json:"signature"`
}

// ParseCallback decodes a callback body. The provider sends either JSON or a
// urlencoded form depending on merchant settings.
func ParseCallback(contentType string, body []byte) (*CallbackPayload, error) {
	if strings.HasPrefix(contentType, "application/json") {
		return parseJSONCallback(body)
	}
	return parseFormCallback(body)
}

func parseJSONCallback(body []byte) (*CallbackPayload, error) {
	var raw struct {
		Application         string          `json:"application"`
		TransactionRef      string          `json:"transaction_ref"`
		AppTransactionRef   string          `json:"app_transaction_ref"`
		TransactionType     string          `json:"transaction_type"`
		TransactionAmount   json.RawMessage `json:"transaction_amount"`
		TransactionCurrency string          `json:"transaction_currency"`
		TransactionOperator string          `json:"transaction_operator"`
		TransactionStatus   string          `json:"transaction_status"`
		TransactionMessage  string          `json:"transaction_message"`
		Signature           string          `json:"signature"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode callback json: %w", err)
	}
	return &CallbackPayload{
		Application:         raw.Application,
		TransactionRef:      raw.TransactionRef,
		AppTransactionRef:   raw.AppTransactionRef,
		TransactionType:     raw.TransactionType,
		TransactionAmount:   amountText(raw.TransactionAmount),
		TransactionCurrency: raw.TransactionCurrency,
		TransactionOperator: raw.TransactionOperator,
		TransactionStatus:   raw.TransactionStatus,
		TransactionMessage:  raw.TransactionMessage,
		Signature:           raw.Signature,
	}, nil
}

// amountText keeps the amount's exact wire form: the signature is computed
// over the text the provider signed, whether it sent a number or a string.
func amountText(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if len(s) >= 2 && s[0] == '"' {
		var out string
		if err := json.Unmarshal(raw, &out); err == nil {
			return out
		}
	}
	return s
}

func parseFormCallback(body []byte) (*CallbackPayload, error) {
	values, err := url.ParseQuery(string(body))
	if err != nil {
		return nil, fmt.Errorf("decode callback form: %w", err)
	}
	return &CallbackPayload{
		Application:         values.Get("application"),
		TransactionRef:      values.Get("transaction_ref"),
		AppTransactionRef:   values.Get("app_transaction_ref"),
		TransactionType:     values.Get("transaction_type"),
		TransactionAmount:   values.Get("transaction_amount"),
		TransactionCurrency: values.Get("transaction_currency"),
		TransactionOperator: values.Get("transaction_operator"),
		TransactionStatus:   values.Get("transaction_status"),
		TransactionMessage:  values.Get("transaction_message"),
		Signature:           values.Get("signature"),
	}, nil
}

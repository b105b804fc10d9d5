package coolpay

import (
	"fmt"
	"strings"
)

// UnsupportedCurrencyError is returned when an order is priced in a currency
// My-CoolPay has no exchange rate for.
type UnsupportedCurrencyError struct {
	Currency string
}

func (e *UnsupportedCurrencyError) Error() string {
	return fmt.Sprintf("Currency '%s' is not currently supported. Please, try using one of the following: %s",
		e.Currency, strings.Join(SupportedCurrencies(), ", "))
}

// InitiationError wraps any failure while requesting a payment link. Message is
// safe to show to the customer; Err carries the underlying cause, if any.
type InitiationError struct {
	Message string
	Err     error
}

func (e *InitiationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("payment initiation failed: %s: %v", e.Message, e.Err)
	}
	return "payment initiation failed: " + e.Message
}

func (e *InitiationError) Unwrap() error { return e.Err }

// GenericInitiationMessage is shown when the provider gives no usable message.
const GenericInitiationMessage = "An error has occurred. Please try again later"

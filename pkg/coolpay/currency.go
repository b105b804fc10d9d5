package coolpay

import (
	"github.com/shopspring/decimal"
)

// Fixed exchange table relative to XAF. These are the provider's own constants,
// not market rates.
var supportedCurrencies = map[string]int64{
	"XAF": 1,
	"XOF": 1,
	"EUR": 650,
	"USD": 550,
}

// supportedCurrencyOrder keeps error messages deterministic.
var supportedCurrencyOrder = []string{"XAF", "XOF", "EUR", "USD"}

// settlementCurrencies are the currencies My-CoolPay can actually settle in.
var settlementCurrencies = map[string]bool{
	"XAF": true,
	"EUR": true,
}

// SupportedCurrencies lists the order currencies the converter accepts.
func SupportedCurrencies() []string {
	out := make([]string, len(supportedCurrencyOrder))
	copy(out, supportedCurrencyOrder)
	return out
}

// IsSettlementCurrency reports whether the provider settles in the given currency.
func IsSettlementCurrency(code string) bool { return settlementCurrencies[code] }

// Convert rescales an order total into the settlement currency. If preferred is
// not a settlement currency the order currency is kept and the amount passes
// through unchanged. Cross-currency amounts are computed as
// total * rate(order) / rate(settlement) and rounded half away from zero to
// 2 decimal places (amounts here are always positive, so this is round-half-up).
func Convert(total decimal.Decimal, orderCurrency, preferred string) (decimal.Decimal, string, error) {
	orderRate, ok := supportedCurrencies[orderCurrency]
	if !ok {
		return decimal.Zero, "", &UnsupportedCurrencyError{Currency: orderCurrency}
	}

	currency := preferred
	if !settlementCurrencies[currency] {
		currency = orderCurrency
	}
	if currency == orderCurrency {
		return total, currency, nil
	}

	amount := total.
		Mul(decimal.NewFromInt(orderRate)).
		DivRound(decimal.NewFromInt(supportedCurrencies[currency]), 2)
	return amount, currency, nil
}

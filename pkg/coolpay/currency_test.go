package coolpay

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestConvertKeepsOrderCurrencyWhenPreferredNotSettleable(t *testing.T) {
	cases := []struct {
		total     string
		currency  string
		preferred string
	}{
		{"1000", "XAF", "default"},
		{"1000", "XAF", ""},
		{"49.99", "USD", "USD"}, // USD is supported but not a settlement currency
		{"500", "XOF", "XOF"},
	}
	for _, tc := range cases {
		amount, currency, err := Convert(decimal.RequireFromString(tc.total), tc.currency, tc.preferred)
		if err != nil {
			t.Fatalf("Convert(%s %s, pref %q): %v", tc.total, tc.currency, tc.preferred, err)
		}
		if currency != tc.currency {
			t.Errorf("Convert(%s %s, pref %q) currency = %s, want %s", tc.total, tc.currency, tc.preferred, currency, tc.currency)
		}
		if !amount.Equal(decimal.RequireFromString(tc.total)) {
			t.Errorf("Convert(%s %s, pref %q) amount = %s, want unchanged", tc.total, tc.currency, tc.preferred, amount)
		}
	}
}

func TestConvertCrossCurrency(t *testing.T) {
	cases := []struct {
		total     string
		currency  string
		preferred string
		want      string
	}{
		{"1000", "XAF", "EUR", "1.54"},
		{"650", "XAF", "EUR", "1"},
		{"1", "EUR", "XAF", "650"},
		{"10", "USD", "XAF", "5500"},
		{"100", "USD", "EUR", "84.62"}, // 100*550/650 = 84.615...
	}
	for _, tc := range cases {
		amount, currency, err := Convert(decimal.RequireFromString(tc.total), tc.currency, tc.preferred)
		if err != nil {
			t.Fatalf("Convert(%s %s -> %s): %v", tc.total, tc.currency, tc.preferred, err)
		}
		if currency != tc.preferred {
			t.Errorf("Convert(%s %s -> %s) currency = %s", tc.total, tc.currency, tc.preferred, currency)
		}
		if !amount.Equal(decimal.RequireFromString(tc.want)) {
			t.Errorf("Convert(%s %s -> %s) = %s, want %s", tc.total, tc.currency, tc.preferred, amount, tc.want)
		}
	}
}

func TestConvertRoundTripWithinTolerance(t *testing.T) {
	// Only XAF and EUR can be targets, so the invertible pairs are XAF<->EUR.
	pairs := [][2]string{{"XAF", "EUR"}, {"EUR", "XAF"}}
	amounts := []string{"1", "100", "1000", "12.34", "999999.99"}
	for _, pair := range pairs {
		from, to := pair[0], pair[1]
		rFrom := decimal.NewFromInt(supportedCurrencies[from])
		rTo := decimal.NewFromInt(supportedCurrencies[to])
		// One rounding of up to 0.005 in the target currency, scaled back,
		// plus the second rounding.
		tol := decimal.RequireFromString("0.005").Mul(rTo).Div(rFrom).
			Add(decimal.RequireFromString("0.006"))
		for _, a := range amounts {
			orig := decimal.RequireFromString(a)
			there, cur, err := Convert(orig, from, to)
			if err != nil || cur != to {
				t.Fatalf("Convert(%s %s -> %s): cur=%s err=%v", a, from, to, cur, err)
			}
			back, cur, err := Convert(there, to, from)
			if err != nil || cur != from {
				t.Fatalf("Convert back(%s %s -> %s): cur=%s err=%v", there, to, from, cur, err)
			}
			if diff := back.Sub(orig).Abs(); diff.GreaterThan(tol) {
				t.Errorf("round trip %s %s -> %s -> %s drifted by %s (tolerance %s)", a, from, to, back, diff, tol)
			}
		}
	}
}

func TestConvertUnsupportedCurrency(t *testing.T) {
	_, _, err := Convert(decimal.NewFromInt(10), "GBP", "XAF")
	if err == nil {
		t.Fatal("expected error for unsupported currency")
	}
	var unsupported *UnsupportedCurrencyError
	if !errors.As(err, &unsupported) {
		t.Fatalf("error type = %T, want *UnsupportedCurrencyError", err)
	}
	if unsupported.Currency != "GBP" {
		t.Errorf("Currency = %s, want GBP", unsupported.Currency)
	}
	msg := err.Error()
	if !strings.Contains(msg, "'GBP'") {
		t.Errorf("message %q does not name the offending currency", msg)
	}
	for _, code := range SupportedCurrencies() {
		if !strings.Contains(msg, code) {
			t.Errorf("message %q does not list supported code %s", msg, code)
		}
	}
}

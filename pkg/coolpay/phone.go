package coolpay

import "regexp"

// mobileMoneyCountry is the only billing country eligible for Mobile Money.
const mobileMoneyCountry = "CM"

var (
	nonDigits        = regexp.MustCompile(`[^0-9]`)
	mobileMoneyPhone = regexp.MustCompile(`^((\+|00)?237)?6[5789][0-9]{7}$`)
)

// MobileMoneyPhone normalizes a billing phone to digits only and reports
// whether the order is Mobile-Money eligible: Cameroonian billing country and a
// phone on an Orange/MTN numbering range, with or without the 237 prefix.
func MobileMoneyPhone(billingCountry, billingPhone string) (string, bool) {
	if billingCountry != mobileMoneyCountry {
		return "", false
	}
	digits := nonDigits.ReplaceAllString(billingPhone, "")
	if !mobileMoneyPhone.MatchString(digits) {
		return "", false
	}
	return digits, true
}

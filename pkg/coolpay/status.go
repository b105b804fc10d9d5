package coolpay

// TransactionStatus is the closed set of outcomes My-CoolPay reports on a
// callback. Anything else is protocol drift and must be rejected, not guessed.
type TransactionStatus string

const (
	StatusSuccess  TransactionStatus = "SUCCESS"
	StatusCanceled TransactionStatus = "CANCELED"
	StatusFailed   TransactionStatus = "FAILED"
)

// ParseStatus maps a raw callback status onto the known set. ok is false for
// unrecognized values.
func ParseStatus(s string) (TransactionStatus, bool) {
	switch TransactionStatus(s) {
	case StatusSuccess, StatusCanceled, StatusFailed:
		return TransactionStatus(s), true
	}
	return "", false
}

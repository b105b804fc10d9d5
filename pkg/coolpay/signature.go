package coolpay

import (
	"crypto/md5"
	"encoding/hex"
)

// Sign computes the My-CoolPay callback checksum: the hex MD5 of the transaction
// fields concatenated in protocol order with the shared private key appended.
// The key never travels on the wire; only a holder of it can produce a matching
// digest.
func Sign(ref, txType, amount, currency, operator, privateKey string) string {
	sum := md5.Sum([]byte(ref + txType + amount + currency + operator + privateKey))
	return hex.EncodeToString(sum[:])
}

// Verify recomputes the digest from the payload and compares it exactly against
// the signature the provider sent.
func Verify(p *CallbackPayload, privateKey string) bool {
	return p.Signature == Sign(
		p.TransactionRef,
		p.TransactionType,
		p.TransactionAmount,
		p.TransactionCurrency,
		p.TransactionOperator,
		privateKey,
	)
}

package service

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// MidtransSignature = SHA512(order_id + status_code + gross_amount + server_key), hex.
func MidtransSignature(orderID, statusCode, grossAmount, serverKey string) string {
	h := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(h[:])
}

// VerifySignature membandingkan signature_key notifikasi dengan hitungan lokal.
func VerifySignature(orderID, statusCode, grossAmount, serverKey, signatureKey string) bool {
	want := strings.ToLower(strings.TrimSpace(signatureKey))
	if want == "" || serverKey == "" {
		return false
	}
	got := MidtransSignature(orderID, statusCode, grossAmount, serverKey)
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}

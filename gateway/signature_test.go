package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature_Valid(t *testing.T) {
	sig := sign("order_abc", "pay_xyz", "secret")
	assert.True(t, VerifySignature("order_abc", "pay_xyz", sig, "secret"))
}

func TestVerifySignature_SingleCharMutation(t *testing.T) {
	sig := sign("order_abc", "pay_xyz", "secret")

	for i := range sig {
		mutated := []byte(sig)
		if mutated[i] == '0' {
			mutated[i] = '1'
		} else {
			mutated[i] = '0'
		}
		assert.False(t, VerifySignature("order_abc", "pay_xyz", string(mutated), "secret"),
			"mutation at index %d must fail", i)
	}
}

func TestVerifySignature_WrongSecret(t *testing.T) {
	sig := sign("order_abc", "pay_xyz", "secret")
	assert.False(t, VerifySignature("order_abc", "pay_xyz", sig, "other-secret"))
}

func TestVerifySignature_SwappedIDs(t *testing.T) {
	sig := sign("order_abc", "pay_xyz", "secret")
	assert.False(t, VerifySignature("pay_xyz", "order_abc", sig, "secret"))
}

func TestVerifySignature_Empty(t *testing.T) {
	assert.False(t, VerifySignature("order_abc", "pay_xyz", "", "secret"))
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentSignature(t *testing.T) {
	const secret = "test-gateway-secret"

	t.Run("verifies its own signature", func(t *testing.T) {
		signature := ComputePaymentSignature(secret, "order_123", "pay_456")
		assert.True(t, VerifyPaymentSignature(secret, "order_123", "pay_456", signature))
	})

	t.Run("rejects a tampered payment id", func(t *testing.T) {
		signature := ComputePaymentSignature(secret, "order_123", "pay_456")
		assert.False(t, VerifyPaymentSignature(secret, "order_123", "pay_789", signature))
	})

	t.Run("rejects a signature from a different secret", func(t *testing.T) {
		signature := ComputePaymentSignature("other-secret", "order_123", "pay_456")
		assert.False(t, VerifyPaymentSignature(secret, "order_123", "pay_456", signature))
	})

	t.Run("rejects an empty signature", func(t *testing.T) {
		assert.False(t, VerifyPaymentSignature(secret, "order_123", "pay_456", ""))
	})
}

func TestJWT(t *testing.T) {
	const secret = "test-jwt-secret"

	t.Run("round trips the session id", func(t *testing.T) {
		token, err := GenerateJWT("session-abc", secret, 1)
		require.NoError(t, err)

		sessionID, err := ParseJWT(token, secret)
		require.NoError(t, err)
		assert.Equal(t, "session-abc", sessionID)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		token, err := GenerateJWT("session-abc", "wrong-secret", 1)
		require.NoError(t, err)

		_, err = ParseJWT(token, secret)
		assert.Error(t, err)
	})

	t.Run("rejects garbage input", func(t *testing.T) {
		_, err := ParseJWT("not.a.token", secret)
		assert.Error(t, err)
	})
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, CheckPasswordHash("wrong password", hash))
}

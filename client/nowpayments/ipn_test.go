package nowpayments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomazmm/nowpayments-go/signer"
)

func TestVerifyIPN(t *testing.T) {
	c := NewClient(&Config{ApiKey: "key", IpnSecret: "ipn-secret"})
	body := []byte(`{"payment_status":"finished","payment_id":5745459419}`)

	// The gateway signs the body with sorted keys.
	sorted := []byte(`{"payment_id":5745459419,"payment_status":"finished"}`)
	signature := signer.Sign(sorted, []byte("ipn-secret"))

	ok, err := c.VerifyIPN(body, signature)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.VerifyIPN(body, "deadbeef")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = c.VerifyIPN([]byte("not json"), signature)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestVerifyIPNKeepsNumberLiterals(t *testing.T) {
	c := NewClient(&Config{ApiKey: "key", IpnSecret: "ipn-secret"})
	// Trailing-zero decimals and ids above 2^53 do not survive a float64
	// round-trip; the signature must still match.
	body := []byte(`{"payment_id":9007199254740993,"pay_amount":100.10,"outcome":{"amount":0.00000010}}`)
	sorted := []byte(`{"outcome":{"amount":0.00000010},"pay_amount":100.10,"payment_id":9007199254740993}`)
	signature := signer.Sign(sorted, []byte("ipn-secret"))

	ok, err := c.VerifyIPN(body, signature)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyIPNMissingSecret(t *testing.T) {
	c := NewClient(&Config{ApiKey: "key"})
	_, err := c.VerifyIPN([]byte(`{}`), "sig")
	assert.ErrorIs(t, err, ErrMissingIpnSecret)
}

package nowpayments

import (
	"bytes"
	"encoding/json"

	"github.com/tomazmm/nowpayments-go/signer"
)

// VerifyIPN reports whether an IPN callback body matches the signature the
// gateway sent in the x-nowpayments-sig header. The signature covers the JSON
// body re-serialized with sorted keys, HMAC-SHA512 under the IPN secret.
func (c *Client) VerifyIPN(body []byte, signature string) (bool, error) {
	if c.config.IpnSecret == "" {
		return false, ErrMissingIpnSecret
	}
	// Numbers must keep their literal text: a float64 round-trip would
	// reformat values like 100.10 and corrupt ids above 2^53.
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	var payload map[string]any
	if err := decoder.Decode(&payload); err != nil {
		return false, err
	}
	// encoding/json marshals map keys in sorted order, which is exactly the
	// canonical form the gateway signs.
	sorted, err := json.Marshal(payload)
	if err != nil {
		return false, err
	}
	return signer.Verify(sorted, []byte(c.config.IpnSecret), signature), nil
}

package paysera

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams() []Param {
	return []Param{
		{Key: "projectid", Value: "12345"},
		{Key: "orderid", Value: "order_01HZX"},
		{Key: "lang", Value: "LIT"},
		{Key: "amount", Value: "2599"},
		{Key: "currency", Value: "EUR"},
		{Key: "accepturl", Value: "https://shop.example.lt/accept"},
		{Key: "cancelurl", Value: "https://shop.example.lt/cancel"},
		{Key: "callbackurl", Value: "https://shop.example.lt/api/payments/callback"},
		{Key: "test", Value: "1"},
		{Key: "version", Value: Version},
	}
}

func TestEncode_URLSafe(t *testing.T) {
	encoded := Encode(testParams())

	assert.NotEmpty(t, encoded)
	assert.NotContains(t, encoded, "+")
	assert.NotContains(t, encoded, "/")
	assert.NotContains(t, encoded, "=")
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	encoded := Encode(testParams())

	values, err := Decode(encoded)
	require.NoError(t, err)

	assert.Equal(t, "12345", values.Get("projectid"))
	assert.Equal(t, "order_01HZX", values.Get("orderid"))
	assert.Equal(t, "2599", values.Get("amount"))
	assert.Equal(t, "EUR", values.Get("currency"))
	assert.Equal(t, "https://shop.example.lt/accept", values.Get("accepturl"))
	assert.Equal(t, Version, values.Get("version"))
}

func TestDecode_ToleratesPaddingAndAlphabets(t *testing.T) {
	encoded := Encode(testParams())

	// Re-pad and swap back to the standard alphabet.
	padded := strings.NewReplacer("-", "+", "_", "/").Replace(encoded)
	if m := len(padded) % 4; m != 0 {
		padded += strings.Repeat("=", 4-m)
	}

	fromPadded, err := Decode(padded)
	require.NoError(t, err)
	fromRaw, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, fromRaw, fromPadded)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode("!!!not-base64!!!")
	assert.Error(t, err)
}

func TestSign_Deterministic(t *testing.T) {
	encoded := Encode(testParams())

	s1 := Sign(encoded, "secret")
	s2 := Sign(encoded, "secret")
	assert.Equal(t, s1, s2)
	assert.Len(t, s1, 32) // hex-encoded MD5
}

func TestSign_ChangesWithInput(t *testing.T) {
	encoded := Encode(testParams())

	original := Sign(encoded, "secret")

	// Flipping one byte of the payload must change the digest.
	tampered := "A" + encoded[1:]
	if tampered == encoded {
		tampered = "B" + encoded[1:]
	}
	assert.NotEqual(t, original, Sign(tampered, "secret"))

	// A different secret must change the digest.
	assert.NotEqual(t, original, Sign(encoded, "other-secret"))
}

func TestBuildPaymentURL(t *testing.T) {
	u := BuildPaymentURL("https://www.paysera.com/pay/", "abc", "def")
	assert.Contains(t, u, "data=abc")
	assert.Contains(t, u, "sign=def")
	assert.True(t, strings.HasPrefix(u, "https://www.paysera.com/pay/?"))

	// Base URL that already carries a query string.
	u = BuildPaymentURL("https://www.paysera.com/pay/?mode=live", "abc", "def")
	assert.Contains(t, u, "mode=live&")
}

func TestValidateCallback(t *testing.T) {
	const password = "sign-password"
	encoded := Encode(testParams())
	signature := Sign(encoded, password)

	tests := []struct {
		name  string
		data  string
		ss1   string
		valid bool
	}{
		{name: "valid signature", data: encoded, ss1: signature, valid: true},
		{name: "missing data", data: "", ss1: signature, valid: false},
		{name: "missing ss1", data: encoded, ss1: "", valid: false},
		{name: "tampered data", data: encoded + "x", ss1: signature, valid: false},
		{name: "tampered ss1", data: encoded, ss1: "0" + signature[1:], valid: false},
		{name: "wrong password", data: encoded, ss1: Sign(encoded, "other"), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateCallback(tt.data, tt.ss1, password))
		})
	}
}

func TestDecodeCallback(t *testing.T) {
	params := []Param{
		{Key: "projectid", Value: "12345"},
		{Key: "orderid", Value: "order_7"},
		{Key: "amount", Value: "2599"},
		{Key: "currency", Value: "EUR"},
		{Key: "status", Value: "1"},
		{Key: "test", Value: "0"},
		{Key: "payamount", Value: "2599"},
		{Key: "paycurrency", Value: "EUR"},
	}
	encoded := Encode(params)

	data, err := DecodeCallback(encoded)
	require.NoError(t, err)

	assert.Equal(t, "order_7", data.OrderID)
	assert.True(t, data.Paid())
	assert.False(t, data.IsTest())
	assert.Equal(t, int64(2599), data.AmountCents())
}

func TestDecodeCallback_NonPaidStatus(t *testing.T) {
	for _, status := range []string{"0", "2", "3", ""} {
		encoded := Encode([]Param{
			{Key: "orderid", Value: "order_7"},
			{Key: "status", Value: status},
		})

		data, err := DecodeCallback(encoded)
		require.NoError(t, err)
		assert.False(t, data.Paid(), "status %q must not be paid", status)
	}
}

func TestCallbackData_AmountCents_Malformed(t *testing.T) {
	d := CallbackData{Amount: "not-a-number"}
	assert.Equal(t, int64(0), d.AmountCents())
}

// Package paysera implements the Paysera payment gateway request encoding
// and callback signature protocol.
//
// Outbound requests are serialized as an ordered query string, base64
// encoded with a URL-safe alphabet, and signed with hex(md5(data+password)).
// Inbound callbacks carry the same encoded payload ("data") and signature
// ("ss1") and are validated by recomputing the digest. MD5 is mandated by
// the gateway's legacy protocol, not a choice made here.
package paysera

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Protocol constants fixed by the gateway.
const (
	// Version is the protocol version sent with every request.
	Version = "1.6"
	// StatusPaid is the callback status value denoting a completed payment.
	StatusPaid = "1"
)

// Param is a single ordered key/value pair of the request payload.
// The gateway signature depends on insertion order, so a slice is used
// instead of a map.
type Param struct {
	Key   string
	Value string
}

// CallbackData holds the decoded fields of a gateway callback.
type CallbackData struct {
	ProjectID   string
	OrderID     string
	Language    string
	Amount      string
	Currency    string
	Payment     string
	Country     string
	Status      string
	Test        string
	PayAmount   string
	PayCurrency string
	Version     string
}

// Paid reports whether the callback denotes a completed payment.
// Any status other than "1" is treated as failed or canceled.
func (d CallbackData) Paid() bool {
	return d.Status == StatusPaid
}

// IsTest reports whether the callback was delivered in test mode.
func (d CallbackData) IsTest() bool {
	return d.Test == "1"
}

// AmountCents parses the callback amount into minor currency units.
// Returns 0 when the field is absent or malformed.
func (d CallbackData) AmountCents() int64 {
	v, err := strconv.ParseInt(d.Amount, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// Encode serializes ordered params as a query string and applies the
// gateway's URL-safe base64 variant: standard base64 with '+' replaced
// by '-', '/' by '_', and padding stripped.
func Encode(params []Param) string {
	pairs := make([]string, 0, len(params))
	for _, p := range params {
		pairs = append(pairs, p.Key+"="+url.QueryEscape(p.Value))
	}
	query := strings.Join(pairs, "&")
	return base64.RawURLEncoding.EncodeToString([]byte(query))
}

// Decode reverses Encode. It tolerates both padded and unpadded input
// and both the standard and URL-safe alphabets, since the gateway has
// been observed sending either through intermediate proxies.
func Decode(encoded string) (url.Values, error) {
	normalized := strings.NewReplacer("-", "+", "_", "/").Replace(encoded)
	if m := len(normalized) % 4; m != 0 {
		normalized += strings.Repeat("=", 4-m)
	}

	raw, err := base64.StdEncoding.DecodeString(normalized)
	if err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	values, err := url.ParseQuery(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parse payload: %w", err)
	}
	return values, nil
}

// Sign computes the gateway signature for an encoded payload:
// hex(md5(encoded + password)).
func Sign(encoded, password string) string {
	sum := md5.Sum([]byte(encoded + password))
	return hex.EncodeToString(sum[:])
}

// BuildPaymentURL assembles the shopper redirect URL from an encoded
// payload and its signature.
func BuildPaymentURL(baseURL, encoded, signature string) string {
	q := url.Values{}
	q.Set("data", encoded)
	q.Set("sign", signature)

	sep := "?"
	if strings.Contains(baseURL, "?") {
		sep = "&"
	}
	return baseURL + sep + q.Encode()
}

// ValidateCallback verifies an inbound callback signature. It returns
// false, never an error: a missing data or ss1 field and a digest
// mismatch are both authentication failures. The comparison is
// constant-time.
func ValidateCallback(data, ss1, password string) bool {
	if data == "" || ss1 == "" {
		return false
	}
	expected := Sign(data, password)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(ss1)) == 1
}

// DecodeCallback decodes a validated callback payload into named fields.
func DecodeCallback(data string) (CallbackData, error) {
	values, err := Decode(data)
	if err != nil {
		return CallbackData{}, err
	}

	return CallbackData{
		ProjectID:   values.Get("projectid"),
		OrderID:     values.Get("orderid"),
		Language:    values.Get("lang"),
		Amount:      values.Get("amount"),
		Currency:    values.Get("currency"),
		Payment:     values.Get("payment"),
		Country:     values.Get("country"),
		Status:      values.Get("status"),
		Test:        values.Get("test"),
		PayAmount:   values.Get("payamount"),
		PayCurrency: values.Get("paycurrency"),
		Version:     values.Get("version"),
	}, nil
}

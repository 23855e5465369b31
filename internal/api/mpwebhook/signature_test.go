package mpwebhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func signManifest(secret, dataID, requestID string, ts int64) string {
	manifest := fmt.Sprintf("id:%s;request-id:%s;ts:%d;", dataID, requestID, ts)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(manifest))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestParseSignatureHeader_Valid(t *testing.T) {
	ts, v1, err := parseSignatureHeader("ts=1704067200,v1=abcdef0123")
	assert.NoError(t, err)
	assert.Equal(t, int64(1704067200), ts)
	assert.Equal(t, "abcdef0123", v1)
}

func TestParseSignatureHeader_SpacesAndOrder(t *testing.T) {
	ts, v1, err := parseSignatureHeader("v1=deadbeef, ts=42")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), ts)
	assert.Equal(t, "deadbeef", v1)
}

func TestParseSignatureHeader_Malformed(t *testing.T) {
	cases := []string{
		"",
		"ts=123",
		"v1=deadbeef",
		"ts=notanumber,v1=deadbeef",
		"garbage",
	}
	for _, header := range cases {
		_, _, err := parseSignatureHeader(header)
		assert.ErrorIs(t, err, errMalformedSignature, "header %q", header)
	}
}

func TestVerifySignature_Valid(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	secret := "whsec_test"
	sig := signManifest(secret, "98765", "req-1", now.Unix())
	header := fmt.Sprintf("ts=%d,v1=%s", now.Unix(), sig)

	err := verifySignature(secret, "98765", "req-1", header, now)
	assert.NoError(t, err)
}

func TestVerifySignature_UppercaseHexAccepted(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	secret := "whsec_test"
	sig := signManifest(secret, "98765", "req-1", now.Unix())
	header := fmt.Sprintf("ts=%d,v1=%s", now.Unix(), strings.ToUpper(sig))

	err := verifySignature(secret, "98765", "req-1", header, now)
	assert.NoError(t, err)
}

func TestVerifySignature_MissingHeaders(t *testing.T) {
	now := time.Now()
	assert.ErrorIs(t, verifySignature("s", "1", "req-1", "", now), errMissingHeaders)
	assert.ErrorIs(t, verifySignature("s", "1", "", "ts=1,v1=aa", now), errMissingHeaders)
}

func TestVerifySignature_StaleTimestamp(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	secret := "whsec_test"
	old := now.Add(-6 * time.Minute).Unix()
	sig := signManifest(secret, "98765", "req-1", old)
	header := fmt.Sprintf("ts=%d,v1=%s", old, sig)

	err := verifySignature(secret, "98765", "req-1", header, now)
	assert.ErrorIs(t, err, errStaleTimestamp)
}

func TestVerifySignature_FutureTimestampRejected(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	secret := "whsec_test"
	future := now.Add(6 * time.Minute).Unix()
	sig := signManifest(secret, "98765", "req-1", future)
	header := fmt.Sprintf("ts=%d,v1=%s", future, sig)

	err := verifySignature(secret, "98765", "req-1", header, now)
	assert.ErrorIs(t, err, errStaleTimestamp)
}

func TestVerifySignature_WithinSkewWindow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	secret := "whsec_test"
	ts := now.Add(-4 * time.Minute).Unix()
	sig := signManifest(secret, "98765", "req-1", ts)
	header := fmt.Sprintf("ts=%d,v1=%s", ts, sig)

	err := verifySignature(secret, "98765", "req-1", header, now)
	assert.NoError(t, err)
}

func TestVerifySignature_WrongSecret(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	sig := signManifest("other_secret", "98765", "req-1", now.Unix())
	header := fmt.Sprintf("ts=%d,v1=%s", now.Unix(), sig)

	err := verifySignature("whsec_test", "98765", "req-1", header, now)
	assert.ErrorIs(t, err, errSignatureMismatch)
}

func TestVerifySignature_TamperedDataID(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	secret := "whsec_test"
	sig := signManifest(secret, "98765", "req-1", now.Unix())
	header := fmt.Sprintf("ts=%d,v1=%s", now.Unix(), sig)

	err := verifySignature(secret, "11111", "req-1", header, now)
	assert.ErrorIs(t, err, errSignatureMismatch)
}

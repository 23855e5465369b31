package mpwebhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// maxClockSkew bounds the replay window for webhook signatures.
const maxClockSkew = 300 * time.Second

var (
	errMissingHeaders     = errors.New("missing signature headers")
	errMalformedSignature = errors.New("malformed signature header")
	errStaleTimestamp     = errors.New("signature timestamp outside tolerance")
	errSignatureMismatch  = errors.New("signature mismatch")
)

// parseSignatureHeader reads the x-signature header, a comma-separated
// key=value list that must carry ts and v1.
func parseSignatureHeader(header string) (int64, string, error) {
	var ts int64
	var v1 string

	for _, part := range strings.Split(header, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "ts":
			parsed, err := strconv.ParseInt(strings.TrimSpace(kv[1]), 10, 64)
			if err != nil {
				return 0, "", errMalformedSignature
			}
			ts = parsed
		case "v1":
			v1 = strings.TrimSpace(kv[1])
		}
	}

	if ts == 0 || v1 == "" {
		return 0, "", errMalformedSignature
	}
	return ts, v1, nil
}

// verifySignature validates a webhook delivery against the signing secret.
// The signed manifest is "id:{dataID};request-id:{requestID};ts:{ts};" and
// the expected signature is its hex HMAC-SHA256.
func verifySignature(secret, dataID, requestID, sigHeader string, now time.Time) error {
	if sigHeader == "" || requestID == "" {
		return errMissingHeaders
	}

	ts, v1, err := parseSignatureHeader(sigHeader)
	if err != nil {
		return err
	}

	skew := now.Sub(time.Unix(ts, 0))
	if skew < 0 {
		skew = -skew
	}
	if skew > maxClockSkew {
		return errStaleTimestamp
	}

	manifest := fmt.Sprintf("id:%s;request-id:%s;ts:%d;", dataID, requestID, ts)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(manifest))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(v1))) {
		return errSignatureMismatch
	}
	return nil
}

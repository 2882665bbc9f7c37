// Package lmv1 implements the LMv1 request signing scheme of the LogicMonitor
// REST API and a minimal transport for signed requests.
package lmv1

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strconv"

	"github.com/kurochkinivan/device_onboarder/internal/domain"
)

// Sign computes base64(hex(HMAC-SHA256(secret, method + timestamp + body + path))).
func Sign(secret, method, path string, timestampMillis int64, body []byte) (string, error) {
	if secret == "" {
		return "", domain.ErrEmptySecret
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(method))
	mac.Write([]byte(strconv.FormatInt(timestampMillis, 10)))
	mac.Write(body)
	mac.Write([]byte(path))

	digest := hex.EncodeToString(mac.Sum(nil))

	return base64.StdEncoding.EncodeToString([]byte(digest)), nil
}

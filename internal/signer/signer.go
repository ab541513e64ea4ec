// Package signer produces the time-bound signature token attached to every
// outbound request.
//
// The signer owns payload serialization: it marshals the operation payload
// exactly once and hands the serialized bytes back to the caller, so the
// bytes that were signed and the bytes that go on the wire are identical.
// Re-serializing on the send path would break signatures whenever map key
// ordering differs between the two passes.
package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"time"

	"github.com/raihq/rai-go/pkg/errors"
)

// Sign serializes the operation payload, captures the current timestamp, and
// returns the signature token together with the serialized body.
//
// The token has four dot-separated parts:
//
//	{keyId}.{publicKey}.{hex(hmacSha256(body || millis, secret))}.{base64(millis)}
//
// The timestamp is captured once as decimal milliseconds since epoch and used
// for both the MAC input and the base64 suffix, letting the server check
// freshness against the same instant that was signed.
func Sign(keyID, publicKey, secret string, payload []interface{}) (string, []byte, error) {
	return SignAt(keyID, publicKey, secret, payload, time.Now())
}

// SignAt is Sign with an explicit signing instant.
func SignAt(keyID, publicKey, secret string, payload []interface{}, at time.Time) (string, []byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		// The marshal error never contains key material, so it is safe to carry.
		return "", nil, errors.NewSDKError("failed to serialize operation payload", err)
	}

	millis := strconv.FormatInt(at.UnixMilli(), 10)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	mac.Write([]byte(millis))
	digest := hex.EncodeToString(mac.Sum(nil))

	encodedTS := base64.StdEncoding.EncodeToString([]byte(millis))

	return keyID + "." + publicKey + "." + digest + "." + encodedTS, body, nil
}

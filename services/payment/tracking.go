package payment

import "crypto/rand"

const (
	trackingPrefix   = "TRK-"
	trackingAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	trackingLength   = 8
)

// NewTrackingID generates a human-facing confirmation code: "TRK-" followed
// by 8 random base-36 uppercase characters. Collisions are accepted as
// negligible; the payment ledger persists whichever code is recorded first.
func NewTrackingID() string {
	buf := make([]byte, trackingLength)
	_, _ = rand.Read(buf)

	out := make([]byte, trackingLength)
	for i, b := range buf {
		out[i] = trackingAlphabet[int(b)%len(trackingAlphabet)]
	}
	return trackingPrefix + string(out)
}

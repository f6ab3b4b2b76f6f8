package models

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"
)

// NewComplainNo builds a public complaint number of the form
// CPL-<unix-seconds>-<4-digit-random>.
func NewComplainNo() string {
	return fmt.Sprintf("CPL-%d-%04d", time.Now().Unix(), randomInt(10000))
}

// NewUserComplaintID builds a public consumer complaint id of the form
// comp-user-<6-digit-random>.
func NewUserComplaintID() string {
	return fmt.Sprintf("comp-user-%06d", randomInt(1000000))
}

// NewConsumerID builds a public consumer id of the form CP-<unix-millis>.
func NewConsumerID() string {
	return fmt.Sprintf("CP-%d", time.Now().UnixMilli())
}

// NewConsumerPassword returns a random 16-character hex password. The
// plaintext is shown once at registration and never stored.
func NewConsumerPassword() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the host is broken, fall back to a
		// time-derived value rather than panic inside a request.
		return fmt.Sprintf("%016x", time.Now().UnixNano())
	}
	return hex.EncodeToString(buf)
}

func randomInt(max int64) int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		return time.Now().UnixNano() % max
	}
	return n.Int64()
}

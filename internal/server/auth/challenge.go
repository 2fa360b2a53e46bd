// Package auth implements the fingerprint challenge scheme. A proof hash is
// the SHA-512 digest over a canonical concatenation of the protocol tag, the
// process-wide nonce pair, the caller-supplied key and hash, the device
// fingerprint on record, and the current UTC timestamp at hour granularity.
// The proof therefore stays constant for the remainder of the UTC hour and
// changes on the hour boundary; no explicit expiry bookkeeping is needed.
package auth

import (
	"strconv"
	"strings"
	"time"

	"github.com/emeraldsys/acidity-backend/internal/cryptox"
)

// challengeTag is the constant protocol prefix clients bake into their own
// hash computation. Changing it invalidates every deployed client.
const challengeTag = "ACIDITYV3_"

// Challenge computes proof hashes from the process-wide secret nonce pair.
// It is stateless apart from the injected clock and safe for concurrent use.
type Challenge struct {
	nonce1 string
	nonce2 string
	now    func() time.Time
}

// NewChallenge builds a Challenge using the wall clock.
func NewChallenge(nonce1, nonce2 string) *Challenge {
	return NewChallengeWithClock(nonce1, nonce2, time.Now)
}

// NewChallengeWithClock builds a Challenge with an explicit clock. Tests use
// this to pin the hour component.
func NewChallengeWithClock(nonce1, nonce2 string, now func() time.Time) *Challenge {
	return &Challenge{nonce1: nonce1, nonce2: nonce2, now: now}
}

// Proof returns the lowercase SHA-512 hex digest of the canonical challenge
// string for the given inputs. The timestamp components are bare decimal
// integers (month, day, year, hour) with no padding or separators.
func (c *Challenge) Proof(key, callerHash, fingerprint string) string {
	t := c.now().UTC()

	var b strings.Builder
	b.WriteString(challengeTag)
	b.WriteString(c.nonce1)
	b.WriteString(key)
	b.WriteString(callerHash)
	b.WriteString(c.nonce2)
	b.WriteString(fingerprint)
	b.WriteString(strconv.Itoa(int(t.Month())))
	b.WriteString(strconv.Itoa(t.Day()))
	b.WriteString(strconv.Itoa(t.Year()))
	b.WriteString(strconv.Itoa(t.Hour()))

	return cryptox.SHA512Hex([]byte(b.String()))
}

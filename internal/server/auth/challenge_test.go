package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestProofKnownVector(t *testing.T) {
	// sha512("ACIDITYV3_n1K1H1n2F135202410")
	want := "5b1c98f24a61827cf751b49a383cd3669a3924f3bd86a4db37f8cab183e1d206" +
		"e32e7d12e82adb9e667f6519e6721485b5ee33952c703059632b670b26318d16"

	c := NewChallengeWithClock("n1", "n2", fixedClock(time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, want, c.Proof("K1", "H1", "F1"))
}

func TestProofEmptyFingerprint(t *testing.T) {
	// sha512("ACIDITYV3_n1K1H1n235202410"): a record without the requested
	// fingerprint field still yields a deterministic proof.
	want := "c147317204efa3ca08c55c7c4451f4212a85aa3b092574e3666b7d2a1994e561" +
		"dac186e8e7ffe6bf2d4cd1877df6eebedb9056179fe9e1d3367cb57d4d512070"

	c := NewChallengeWithClock("n1", "n2", fixedClock(time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, want, c.Proof("K1", "H1", ""))
}

func TestProofStableWithinHour(t *testing.T) {
	first := NewChallengeWithClock("n1", "n2", fixedClock(time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)))
	last := NewChallengeWithClock("n1", "n2", fixedClock(time.Date(2024, 3, 5, 10, 59, 59, 0, time.UTC)))

	assert.Equal(t, first.Proof("K1", "H1", "F1"), last.Proof("K1", "H1", "F1"))
}

func TestProofChangesOnHourBoundary(t *testing.T) {
	before := NewChallengeWithClock("n1", "n2", fixedClock(time.Date(2024, 3, 5, 10, 59, 59, 0, time.UTC)))
	after := NewChallengeWithClock("n1", "n2", fixedClock(time.Date(2024, 3, 5, 11, 0, 0, 0, time.UTC)))

	assert.NotEqual(t, before.Proof("K1", "H1", "F1"), after.Proof("K1", "H1", "F1"))
}

func TestProofUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	utc := NewChallengeWithClock("n1", "n2", fixedClock(time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC)))
	zoned := NewChallengeWithClock("n1", "n2", fixedClock(time.Date(2024, 3, 5, 13, 30, 0, 0, loc)))

	assert.Equal(t, utc.Proof("K1", "H1", "F1"), zoned.Proof("K1", "H1", "F1"))
}

func TestProofDependsOnFingerprint(t *testing.T) {
	c := NewChallengeWithClock("n1", "n2", fixedClock(time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)))

	assert.NotEqual(t, c.Proof("K1", "H1", "F1"), c.Proof("K1", "H1", "G1"))
}

package models

import (
	"strings"

	"github.com/emeraldsys/acidity-backend/internal/common"
)

// User is a whitelist record from the users collection. Records are created
// out-of-band; only the fingerprint fields are ever mutated here. Optional
// fields are pointers so that a missing field can be told apart from an
// empty one.
type User struct {
	Key            string  `bson:"key"`
	Username       *string `bson:"username,omitempty"`
	SynFingerprint *string `bson:"synFingerprint,omitempty"`
	SwFingerprint  *string `bson:"swFingerprint,omitempty"`
	Admin          bool    `bson:"admin,omitempty"`
}

// Fingerprint returns the fingerprint bound to the given kind, or the empty
// string when the record does not carry that field. Absence is deliberately
// not an error: callers asking for the wrong channel still get a
// deterministic challenge input.
func (u *User) Fingerprint(kind FingerprintKind) string {
	var v *string
	switch kind {
	case FingerprintSyn:
		v = u.SynFingerprint
	case FingerprintSw:
		v = u.SwFingerprint
	}
	if v == nil {
		return ""
	}
	return *v
}

// FingerprintKind selects one of the two fingerprint channels a device can
// bind to a whitelist record.
type FingerprintKind string

const (
	FingerprintSyn FingerprintKind = "syn"
	FingerprintSw  FingerprintKind = "sw"
)

// ParseFingerprintKind validates a caller-supplied type parameter,
// case-insensitively. Unknown values yield common.ErrUnsupportedKind.
func ParseFingerprintKind(s string) (FingerprintKind, error) {
	switch strings.ToLower(s) {
	case string(FingerprintSyn):
		return FingerprintSyn, nil
	case string(FingerprintSw):
		return FingerprintSw, nil
	default:
		return "", common.ErrUnsupportedKind
	}
}

// Package scripts stores published script blobs keyed by version string.
// Two backends exist: a local directory (the default) and an S3-compatible
// object store.
package scripts

import (
	"context"
	"errors"
	"strings"
)

// Store is a byte-blob store keyed by version string. Write overwrites in
// place; Read returns whatever bytes were last written for the version.
type Store interface {
	Read(ctx context.Context, version string) ([]byte, error)
	Write(ctx context.Context, version string, data []byte) error
}

// ErrBadVersion is returned for version strings that cannot be used as a
// blob key.
var ErrBadVersion = errors.New("invalid version string")

// blobName maps a version string onto its blob key. Published scripts keep
// the .lua suffix. Versions that could escape the storage namespace are
// rejected.
func blobName(version string) (string, error) {
	if version == "" ||
		strings.ContainsAny(version, `/\`) ||
		strings.Contains(version, "..") {
		return "", ErrBadVersion
	}
	return version + ".lua", nil
}

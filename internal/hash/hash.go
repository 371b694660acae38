// Package hash streams file contents through SHA-1 without loading whole
// files into memory.
package hash

import (
	"crypto/sha1"
	"encoding/hex"
	"io"
	"os"

	"github.com/pkg/errors"
)

// chunkSize bounds the read buffer; files are never read in one shot.
const chunkSize = 64 * 1024

// File returns the lowercase hex SHA-1 digest of the file at path.
func File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "hash: open %s", path)
	}
	defer f.Close()
	return Reader(f)
}

// Reader streams r through SHA-1 in fixed-size chunks.
func Reader(r io.Reader) (string, error) {
	h := sha1.New()
	buf := make([]byte, chunkSize)
	if _, err := io.CopyBuffer(h, r, buf); err != nil {
		return "", errors.Wrap(err, "hash: read")
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Matches reports whether the file at path exists and its SHA-1 equals the
// given lowercase hex digest. A missing or unreadable file is not a match.
func Matches(path, sha1hex string) bool {
	if sha1hex == "" {
		return false
	}
	sum, err := File(path)
	if err != nil {
		return false
	}
	return sum == sha1hex
}

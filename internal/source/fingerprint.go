package source

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// FingerprintBytes returns the hex xxhash64 of data.
func FingerprintBytes(data []byte) string {
	return formatDigest(xxhash.Sum64(data))
}

// FingerprintFiles hashes the concatenated content of paths. Paths after the
// first that do not exist are skipped, which lets SQLite write-ahead logs be
// folded in when present.
func FingerprintFiles(paths ...string) (string, error) {
	digest := xxhash.New()
	for i, path := range paths {
		file, err := os.Open(path)
		if err != nil {
			if i > 0 && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if errors.Is(err, fs.ErrNotExist) {
				return "", fmt.Errorf("%w: %s", ErrNotFound, path)
			}
			return "", fmt.Errorf("open source: %w", err)
		}
		_, err = io.Copy(digest, file)
		file.Close()
		if err != nil {
			return "", fmt.Errorf("hash source: %w", err)
		}
	}
	return formatDigest(digest.Sum64()), nil
}

func formatDigest(sum uint64) string {
	s := strconv.FormatUint(sum, 16)
	for len(s) < 16 {
		s = "0" + s
	}
	return s
}

package hashutil

import (
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/arthur-debert/dotlink/pkg/types"
)

// CalculateFileChecksum calculates the SHA256 checksum of a file
func CalculateFileChecksum(fs types.FS, path string) (string, error) {
	file, err := fs.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = file.Close()
	}()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}

	return fmt.Sprintf("sha256:%x", hash.Sum(nil)), nil
}

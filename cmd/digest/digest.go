// Package digest implements the macsum digest CLI entry point.
package digest

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"macsum/internal/sha256"
)

// Run computes and prints the SHA-256 digest of each named file, or of
// standard input when no files are given. Output is one line per input:
// the lowercase hex digest, two spaces, the input name.
func Run(log zerolog.Logger, args []string) error {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		fmt.Println(Line(data, "-"))
		return nil
	}

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		log.Debug().Str("file", path).Int("bytes", len(data)).Msg("Hashing input")
		fmt.Println(Line(data, path))
	}
	return nil
}

// Line renders one sha256sum-compatible output line for data.
func Line(data []byte, name string) string {
	sum := sha256.Sum(data)
	return fmt.Sprintf("%x  %s", sum, name)
}

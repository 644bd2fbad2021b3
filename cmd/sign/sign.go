// Package sign implements the macsum sign CLI entry point.
package sign

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"macsum/internal/keyio"
	"macsum/internal/mac"
)

// Run computes and prints the HMAC-SHA256 tag of each named file, or of
// standard input when no files are given. The key comes from -k <file>,
// or from a no-echo terminal prompt when the flag is absent.
func Run(log zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("sign", flag.ContinueOnError)
	keyPath := fs.String("k", "", "path to the key file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() == 0 && *keyPath == "" {
		return fmt.Errorf("signing stdin requires a key file (-k)")
	}

	key, err := keyio.Load(*keyPath)
	if err != nil {
		return err
	}

	if fs.NArg() == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		fmt.Println(Line(data, key, "-"))
		return nil
	}

	for _, path := range fs.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		log.Debug().Str("file", path).Int("bytes", len(data)).Msg("Signing input")
		fmt.Println(Line(data, key, path))
	}
	return nil
}

// Line renders one output line: the lowercase hex tag, two spaces, the
// input name.
func Line(data, key []byte, name string) string {
	tag := mac.Compute(data, key)
	return fmt.Sprintf("%x  %s", tag, name)
}

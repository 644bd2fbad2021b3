// Package verify implements the macsum verify CLI entry point.
package verify

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"macsum/internal/keyio"
	"macsum/internal/mac"
)

// ErrMismatch is returned when the received tag does not authenticate the
// input. A mismatch is a normal outcome of verification, surfaced as an
// error only so the process exits non-zero.
var ErrMismatch = errors.New("tag verification failed")

// Run checks an HMAC-SHA256 tag (-t, lowercase hex) against the named
// file, or against standard input when no file is given. A tag that is
// not valid hex or not the right length is a mismatch, never a crash.
func Run(log zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	keyPath := fs.String("k", "", "path to the key file")
	tagHex := fs.String("t", "", "expected tag as lowercase hex")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *tagHex == "" {
		return fmt.Errorf("a tag to verify is required (-t)")
	}
	if fs.NArg() > 1 {
		return fmt.Errorf("verify takes at most one file")
	}
	if fs.NArg() == 0 && *keyPath == "" {
		return fmt.Errorf("verifying stdin requires a key file (-k)")
	}

	key, err := keyio.Load(*keyPath)
	if err != nil {
		return err
	}

	name := "-"
	var data []byte
	if fs.NArg() == 1 {
		name = fs.Arg(0)
		data, err = os.ReadFile(name)
		if err != nil {
			return fmt.Errorf("reading %s: %w", name, err)
		}
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}

	tag, err := hex.DecodeString(*tagHex)
	if err != nil {
		// A malformed tag can never authenticate anything.
		log.Debug().Err(err).Msg("Received tag is not valid hex")
		tag = nil
	}

	if !mac.Verify(data, tag, key) {
		fmt.Printf("%s: FAILED\n", name)
		return ErrMismatch
	}
	fmt.Printf("%s: OK\n", name)
	return nil
}

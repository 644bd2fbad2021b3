// Package keyio loads HMAC keys for the macsum CLI.
package keyio

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Load returns the key bytes from the file at path. When path is empty it
// prompts on the controlling terminal and reads the key without echo.
// Keys of any length are accepted; normalization happens downstream.
func Load(path string) ([]byte, error) {
	if path != "" {
		key, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading key file: %w", err)
		}
		if len(key) == 0 {
			return nil, fmt.Errorf("key file %s is empty", path)
		}
		return key, nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, fmt.Errorf("no key file given and stdin is not a terminal (use -k)")
	}

	fmt.Fprint(os.Stderr, "Key: ")
	key, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("reading key: %w", err)
	}
	if len(key) == 0 {
		return nil, fmt.Errorf("empty key")
	}
	return key, nil
}

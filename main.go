// macsum — SHA-256 digests and HMAC-SHA256 tags from a from-scratch core
//
// Usage:
//
//	macsum digest  — print SHA-256 digests of files or stdin
//	macsum sign    — print HMAC-SHA256 tags of files or stdin
//	macsum verify  — check a received tag against a file or stdin
package main

import (
	"fmt"
	"os"

	"macsum/cmd/digest"
	"macsum/cmd/sign"
	"macsum/cmd/verify"
	"macsum/pkg/logger"
)

const version = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	logLevel := "info"

	// Parse --log-level flag if present
	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--log-level" && i+1 < len(args) {
			logLevel = args[i+1]
			args = append(args[:i], args[i+2:]...)
			i--
			continue
		}
		if len(arg) > 12 && arg[:12] == "--log-level=" {
			logLevel = arg[12:]
			args = append(args[:i], args[i+1:]...)
			i--
			continue
		}
	}

	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	log := logger.Init(logLevel)

	subcommand := args[0]
	var err error

	switch subcommand {
	case "digest", "hash":
		err = digest.Run(log, args[1:])
	case "sign":
		err = sign.Run(log, args[1:])
	case "verify":
		err = verify.Run(log, args[1:])
	case "version":
		fmt.Printf("macsum v%s\n", version)
		return
	case "help", "--help", "-h":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", subcommand)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf(`macsum v%s — SHA-256 digests and HMAC-SHA256 tags

Usage:
  macsum <command> [flags] [file ...]

Commands:
  digest   Print the SHA-256 digest of each file (or stdin)
  sign     Print the HMAC-SHA256 tag of each file (or stdin)
  verify   Check a received tag: -t <hextag> [-k keyfile] [file]
  version  Print version information
  help     Show this help message

Options:
  -k <path>           Key file for sign/verify (prompted without echo if omitted)
  --log-level <level> Log verbosity: debug, info, warn, error (default: info)

Examples:
  macsum digest release.tar.gz          # sha256sum-compatible output
  macsum sign -k hmac.key release.tar.gz
  macsum verify -k hmac.key -t 198a607e... release.tar.gz

`, version)
}

package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"io"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/trezcool/mindcanvas/core/apikey"
)

const (
	defaultKeyBytes = 32
	minKeyBytes     = 16
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp        = errors.New("help provided")
	errKeyMismatch = errors.New("key does not match the configured API_KEY")
)

type commandLine struct {
	gate *apikey.Gate
	out  io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  genkey [-bytes N] - print a new random API key")
	fmt.Fprintln(cli.out, "  checkkey          - check a key against the configured API_KEY")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	genKeyCmd := flag.NewFlagSet("genkey", flag.ExitOnError)
	genKeyBytes := genKeyCmd.Int("bytes", defaultKeyBytes, "Number of random bytes in the key.")

	switch args[1] {
	case "genkey":
		if err := genKeyCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *genKeyBytes < minKeyBytes {
			return errors.Errorf("bytes must be at least %d", minKeyBytes)
		}
		key, err := generateKey(*genKeyBytes)
		if err != nil {
			return errors.Wrap(err, "generating key")
		}
		fmt.Fprintln(cli.out, key)
		return nil
	case "checkkey":
		fmt.Fprint(cli.out, "Enter key:")
		key, err := readPasswordFunc(int(syscall.Stdin))
		fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		if len(key) == 0 {
			cli.printUsage()
			return errHelp
		}
		if err = cli.gate.Check(string(key)); err != nil {
			return errKeyMismatch
		}
		fmt.Fprintln(cli.out, "key matches")
		return nil
	default:
		cli.printUsage()
		return errHelp
	}
}

// generateKey returns `n` random bytes, base64url encoded without padding.
func generateKey(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

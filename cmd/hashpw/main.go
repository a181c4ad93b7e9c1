// Command hashpw prints a salted PBKDF2 hash suitable for the users[].passwordHash config field.
//
// The password is read from the terminal without echo, or as a single line from stdin when piped.
// With -verify it checks the password against an existing hash instead.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/infra/auth"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

func main() {
	verify := flag.String("verify", "", "base64 hash to check the password against")
	flag.Parse()

	if err := run(os.Stdin, os.Stdout, os.Stderr, *verify); err != nil {
		fmt.Fprintln(os.Stderr, "hashpw:", err)
		os.Exit(1)
	}
}

func run(in *os.File, out, prompt io.Writer, verify string) error {
	password, err := getPassword(in, prompt)
	if err != nil {
		return err
	}

	hasher := auth.NewPBKDF2Hasher(auth.NewRandomSource())

	if verify != "" {
		expected, err := entity.ParseHashedPassword(verify)
		if err != nil {
			return err
		}
		if !hasher.Verify(password, expected) {
			return errors.New("password does not match")
		}
		_, err = fmt.Fprintln(out, "ok")

		return err
	}

	hashed, err := hasher.Create(password)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, hashed.AsBase64String())

	return err
}

func getPassword(in *os.File, prompt io.Writer) (string, error) {
	if !term.IsTerminal(int(in.Fd())) {
		return readLine(in)
	}

	if _, err := fmt.Fprint(prompt, "Password: "); err != nil {
		return "", err
	}
	pw, err := term.ReadPassword(int(in.Fd()))
	fmt.Fprintln(prompt)
	if err != nil {
		return "", errors.Wrap(err, "read password")
	}

	return string(pw), nil
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", errors.Wrap(err, "read password from stdin")
	}

	return strings.TrimRight(line, "\r\n"), nil
}

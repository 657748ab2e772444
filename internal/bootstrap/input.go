package bootstrap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Input carries the four fields needed to provision a super-admin account.
type Input struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// InputSource yields bootstrap input. It is resolved exactly once, before any
// storage access, so the two modes (flags vs prompts) cannot mix mid-run.
type InputSource interface {
	Resolve() (Input, error)
}

// ArgsSource returns flag-supplied values unchanged.
type ArgsSource struct {
	Input Input
}

func (s ArgsSource) Resolve() (Input, error) {
	return s.Input, nil
}

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// PromptSource collects input interactively. Empty answers fall back to the
// defaults drawn from configuration.
type PromptSource struct {
	Reader   *bufio.Reader
	Out      io.Writer
	Defaults Input
}

func (s PromptSource) Resolve() (Input, error) {
	if s.Reader == nil {
		return Input{}, errors.New("prompt source requires a reader")
	}
	out := s.Out
	if out == nil {
		out = os.Stdout
	}

	email, err := promptLine(s.Reader, out, "Email", s.Defaults.Email)
	if err != nil {
		return Input{}, err
	}
	password, err := promptPassword(out, s.Defaults.Password)
	if err != nil {
		return Input{}, err
	}
	firstName, err := promptLine(s.Reader, out, "First name", s.Defaults.FirstName)
	if err != nil {
		return Input{}, err
	}
	lastName, err := promptLine(s.Reader, out, "Last name", s.Defaults.LastName)
	if err != nil {
		return Input{}, err
	}

	return Input{
		Email:     email,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
	}, nil
}

func promptLine(reader *bufio.Reader, w io.Writer, label, fallback string) (string, error) {
	if fallback != "" {
		fmt.Fprintf(w, "%s [%s]: ", label, fallback)
	} else {
		fmt.Fprintf(w, "%s: ", label)
	}
	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return "", err
	}
	answer := strings.TrimSpace(line)
	if answer == "" {
		return fallback, nil
	}
	return answer, nil
}

func promptPassword(w io.Writer, fallback string) (string, error) {
	if fallback != "" {
		fmt.Fprint(w, "Password [press Enter to use ADMIN_PASSWORD]: ")
	} else {
		fmt.Fprint(w, "Password: ")
	}
	raw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	answer := strings.TrimSpace(string(raw))
	if answer == "" {
		return fallback, nil
	}
	return answer, nil
}

// Package token stores and removes the GitHub access token kept in the OS keyring.
package token

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var errEmptyToken = errors.New("the token is empty")

type TokenManager interface {
	SetToken(token string) error
	RemoveToken() error
}

type Controller struct {
	tokenManager TokenManager
	stdin        io.Reader
	stderr       io.Writer
	// readPassword is set if stdin is a terminal. Input isn't echoed.
	readPassword func() ([]byte, error)
}

func New(tokenManager TokenManager, stdin io.Reader, stderr io.Writer) *Controller {
	c := &Controller{
		tokenManager: tokenManager,
		stdin:        stdin,
		stderr:       stderr,
	}
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		c.readPassword = func() ([]byte, error) {
			return term.ReadPassword(fd) //nolint:wrapcheck
		}
	}
	return c
}

func (c *Controller) readToken() (string, error) {
	if c.readPassword != nil {
		fmt.Fprint(c.stderr, "Enter a GitHub access token: ")
		b, err := c.readPassword()
		fmt.Fprintln(c.stderr)
		if err != nil {
			return "", fmt.Errorf("read a GitHub access token from the terminal: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	}
	line, err := bufio.NewReader(c.stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read a GitHub access token from stdin: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Set reads a token and stores it.
// The token is read without echo from a terminal, or from the first line of piped stdin.
func (c *Controller) Set(logE *logrus.Entry) error {
	token, err := c.readToken()
	if err != nil {
		return err
	}
	if token == "" {
		return errEmptyToken
	}
	if err := c.tokenManager.SetToken(token); err != nil {
		return fmt.Errorf("store a GitHub access token in the secret store: %w", err)
	}
	logE.Info("stored a GitHub access token in the secret store")
	return nil
}

func (c *Controller) Remove(logE *logrus.Entry) error {
	if err := c.tokenManager.RemoveToken(); err != nil {
		return fmt.Errorf("remove a GitHub access token from the secret store: %w", err)
	}
	logE.Info("removed a GitHub access token from the secret store")
	return nil
}

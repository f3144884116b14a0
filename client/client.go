// Package client is the command line host of the registry. Each invocation
// handles exactly one request against the badger directory; badger's
// directory lock keeps two invocations from running at the same time.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"permissioned-registry/auth"
	"permissioned-registry/errors"
	"permissioned-registry/internal"
	"permissioned-registry/repositories"
	"permissioned-registry/services"
	"permissioned-registry/storage"
	"sort"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/spf13/pflag"
)

// Exit codes reported to the shell.
const (
	ExitOK       = 0
	ExitRuntime  = 1
	ExitConfig   = 2
	ExitRejected = 3
)

type CLI struct {
	config        internal.Config
	log           *slog.Logger
	stdout        io.Writer
	stderr        io.Writer
	colours       bool
	authenticator auth.Authenticator
}

func New(config internal.Config, log *slog.Logger, stdout, stderr io.Writer, colours bool) *CLI {
	return &CLI{
		config:        config,
		log:           log,
		stdout:        stdout,
		stderr:        stderr,
		colours:       colours,
		authenticator: auth.NewAuthenticator(config.SigningKey, config.TokenDuration),
	}
}

type command struct {
	summary string
	run     func(ctx context.Context, c *CLI, args []string) error
}

var commands = map[string]command{
	"instantiate":      {"create the registry; --owner defaults to the caller", runInstantiate},
	"add-writer":       {"approve a writer (owner only)", runAddWriter},
	"remove-writer":    {"revoke a writer (owner only); their message stays", runRemoveWriter},
	"register-message": {"store the caller's single message (writers only)", runRegisterMessage},
	"get-message":      {"show the message of a writer", runGetMessage},
	"get-writers":      {"list current writers in ascending order", runGetWriters},
	"issue-token":      {"sign a caller token for an identity", runIssueToken},
	"dump":             {"print every entry of one namespace", runDump},
	"inspect":          {"serve an HTML view of the namespaces", runInspect},
}

// Run dispatches args[0] to its subcommand and maps the outcome to an exit code.
func (c *CLI) Run(ctx context.Context, args []string) (int, error) {
	if len(args) == 0 {
		c.usage()
		return ExitConfig, fmt.Errorf("missing command")
	}
	cmd, ok := commands[args[0]]
	if !ok {
		c.usage()
		return ExitConfig, fmt.Errorf("unknown command %q", args[0])
	}

	err := cmd.run(ctx, c, args[1:])
	switch {
	case err == nil:
		return ExitOK, nil
	case isRejection(err):
		c.printf(c.stderr, color.FgRed, "rejected: %v", err)
		return ExitRejected, err
	case errors.Is(err, pflag.ErrHelp):
		return ExitOK, nil
	case isUsage(err):
		return ExitConfig, err
	default:
		return ExitRuntime, err
	}
}

func isRejection(err error) bool {
	for _, target := range []error{
		errors.ErrInvalidIdentity,
		errors.ErrUnauthorized,
		errors.ErrNotAWriter,
		errors.ErrMessageAlreadyExists,
		errors.ErrNotInstantiated,
		errors.ErrAlreadyInstantiated,
		errors.ErrInvalidToken,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

type usageError struct{ msg string }

func (u usageError) Error() string { return u.msg }

func isUsage(err error) bool {
	var u usageError
	return errors.As(err, &u)
}

func (c *CLI) usage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(c.stderr, "usage: registry <command> [flags]")
	for _, name := range names {
		fmt.Fprintf(c.stderr, "  %-18s %s\n", name, commands[name].summary)
	}
}

func (c *CLI) flagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(c.stderr)
	return fs
}

func parse(fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}
		return usageError{msg: err.Error()}
	}
	if fs.NArg() > 0 {
		return usageError{msg: fmt.Sprintf("unexpected arguments: %v", fs.Args())}
	}
	return nil
}

func required(name, value string) error {
	if value == "" {
		return usageError{msg: fmt.Sprintf("--%s is required", name)}
	}
	return nil
}

// withService opens the database, runs fn against a service, and closes it.
// The three repositories share the database, each in its own namespace.
func (c *CLI) withService(fn func(svc services.IRegistryService) error) error {
	return c.withDB(func(db *badger.DB) error {
		svc := services.NewRegistryService(c.log,
			repositories.NewConfigRepository(db, c.log),
			repositories.NewWriterRepository(db, c.log),
			repositories.NewMessageRepository(db, c.log),
		)
		return fn(svc)
	})
}

func (c *CLI) withDB(fn func(db *badger.DB) error) error {
	db, err := storage.Open(c.config.BadgerFilepath, c.log)
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		c.log.Debug("Closing BadgerDB...")
		_ = db.Close()
	}()
	return fn(db)
}

// caller authenticates the token passed with --token.
func (c *CLI) caller(token string) (string, error) {
	if err := required("token", token); err != nil {
		return "", err
	}
	id, err := c.authenticator.Authenticate(token)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (c *CLI) printf(w io.Writer, fg color.Color, format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	if c.colours {
		line = color.New(fg).Render(line)
	}
	fmt.Fprintln(w, line)
}

func (c *CLI) printJSON(v any) error {
	encoder := json.NewEncoder(c.stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func runInspect(ctx context.Context, c *CLI, args []string) error {
	fs := c.flagSet("inspect")
	port := fs.Int("port", c.config.InspectPort, "port to listen on")
	if err := parse(fs, args); err != nil {
		return err
	}
	return c.withDB(func(db *badger.DB) error {
		server := internal.NewDebugServer(db, *port, "/inspect", nil, c.log)
		errChan := make(chan error, 1)
		go func() {
			c.log.Info("Registry inspector available", "url", fmt.Sprintf("http://localhost:%d/inspect", *port))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errChan <- err
			}
		}()

		select {
		case <-ctx.Done():
			c.log.Info("Shutting down inspector...")
			return server.Close()
		case err := <-errChan:
			return fmt.Errorf("inspector error: %w", err)
		}
	})
}

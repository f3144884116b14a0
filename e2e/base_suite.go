package e2e

import (
	"bytes"
	"context"
	"fmt"
	"permissioned-registry/client"
	"permissioned-registry/internal"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

// BaseCLISuite drives the registry through its command line, one request per call.
type BaseCLISuite struct {
	suite.Suite
	Config Config
	cli    *client.CLI
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseCLISuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

// SetupTest gives every test a fresh database. Under E2E_BADGER_DIR it is
// kept after the run, in a directory named after a random run id.
func (s *BaseCLISuite) SetupTest() {
	dir := s.T().TempDir()
	if s.Config.BadgerDir != "" {
		dir = filepath.Join(s.Config.BadgerDir, uuid.NewString())
		s.T().Logf("Badger directory: %s", dir)
	}
	s.stdout = &bytes.Buffer{}
	s.stderr = &bytes.Buffer{}
	config := internal.Config{
		BadgerFilepath: dir,
		LogLevel:       s.Config.LogLevel,
		SigningKey:     s.Config.SigningKey,
		TokenDuration:  s.Config.TokenDuration,
	}
	s.Require().NoError(config.Validate())
	s.cli = client.New(config, logs.GetLoggerFromString(s.Config.LogLevel), s.stdout, s.stderr, false)
}

// Step prints a header then runs one CLI request, returning its exit code and stdout.
func (s *BaseCLISuite) Step(name string, args ...string) (int, string, error) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
	s.T().Logf("$ registry %s", strings.Join(args, " "))

	s.stdout.Reset()
	s.stderr.Reset()
	code, err := s.cli.Run(context.Background(), args)
	if s.stderr.Len() > 0 {
		s.T().Log(s.stderr.String())
	}
	return code, s.stdout.String(), err
}

// Token issues a caller token for identity.
func (s *BaseCLISuite) Token(identity string) string {
	code, out, err := s.Step("Issue token for "+identity, "issue-token", "--identity", identity)
	s.Require().NoError(err)
	s.Require().Equal(client.ExitOK, code)
	return strings.TrimSpace(out)
}

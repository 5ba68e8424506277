//go:build integration

package integration

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/fivetwenty-io/docker-client/internal/constants"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	Enabled    bool
	Host       string
	APIVersion string
	BinaryPath string
	Swarm      bool
	Verbose    bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	host := os.Getenv("DOCKER_HOST")
	if host == "" {
		host = constants.DefaultHost
	}

	return &TestConfig{
		Enabled:    os.Getenv("DOCKER_INTEGRATION") == "1",
		Host:       host,
		APIVersion: os.Getenv("DOCKER_API_VERSION"),
		BinaryPath: getBinaryPath(),
		Swarm:      os.Getenv("DOCKER_INTEGRATION_SWARM") == "1",
		Verbose:    os.Getenv("DOCKERCTL_VERBOSE") == "true",
	}
}

// getBinaryPath determines the path to the dockerctl binary
func getBinaryPath() string {
	if path := os.Getenv("DOCKERCTL_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../dockerctl",
		"./dockerctl",
		"../dockerctl",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "dockerctl"
}

// SkipIfDisabled skips the test unless DOCKER_INTEGRATION=1.
func (config *TestConfig) SkipIfDisabled(t *testing.T) {
	t.Helper()

	if !config.Enabled {
		t.Skip("DOCKER_INTEGRATION not set, skipping integration test")
	}
}

// SkipIfNoSwarm skips tests that need the daemon to be a swarm manager.
func (config *TestConfig) SkipIfNoSwarm(t *testing.T) {
	t.Helper()

	config.SkipIfDisabled(t)

	if !config.Swarm {
		t.Skip("DOCKER_INTEGRATION_SWARM not set, skipping swarm test")
	}
}

// SkipIfNoBinary skips tests that drive the CLI binary.
func (config *TestConfig) SkipIfNoBinary(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("dockerctl binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// CommandRunner provides utilities for running dockerctl commands
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		t:      t,
	}
}

// Run executes a dockerctl command against the configured host.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	return runner.RunWithInput("", args...)
}

// RunWithInput executes a dockerctl command with stdin input
func (runner *CommandRunner) RunWithInput(input string, args ...string) (stdout, stderr string, err error) {
	args = append([]string{"--host", runner.config.Host}, args...)

	cmd := exec.Command(runner.config.BinaryPath, args...)

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	cmd.Stdin = strings.NewReader(input)

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// GenerateTestName creates a unique test resource name
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// AssertJSONOutput verifies command output is valid JSON
func AssertJSONOutput(t *testing.T, output string) {
	t.Helper()

	output = strings.TrimSpace(output)
	if !strings.HasPrefix(output, "{") && !strings.HasPrefix(output, "[") {
		t.Errorf("Output does not appear to be JSON: %s", output)
	}
}

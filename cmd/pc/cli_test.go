package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	pctoolbox "github.com/timekillerj/pc-toolbox"
)

// testEnv resets flags and PC_* environment for one CLI test and returns
// a settings file path inside a temp directory (the path contains a
// separator, so the library uses it verbatim).
func testEnv(t *testing.T) string {
	t.Helper()

	for _, key := range []string{
		"PC_USERNAME", "PC_PASSWORD", "PC_API", "PC_API_COMPUTE",
		"PC_CA_BUNDLE", "PC_CONFIG_FILE", "PC_DEBUG", "PC_DEBUG_LOG",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	resetFlags := func() {
		cfgUsername = ""
		cfgPassword = ""
		cfgAPI = ""
		cfgAPICompute = ""
		cfgCABundle = ""
		cfgConfigFile = ""
		cfgYes = false
		cfgDebug = false
		outputJSON = false
	}
	resetFlags()
	t.Cleanup(resetFlags)

	return filepath.Join(t.TempDir(), "pc-settings.conf")
}

// execute runs the root command with args and returns captured stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), err
}

func TestCLI_Help_ListsAllCommands(t *testing.T) {
	testEnv(t)

	out, err := execute(t, "--help")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, name := range []string{"configure", "check", "version"} {
		if !strings.Contains(out, name) {
			t.Errorf("help output missing %q command:\n%s", name, out)
		}
	}
}

func TestCLI_Configure_WritesSettingsFile(t *testing.T) {
	path := testEnv(t)

	out, err := execute(t, "configure",
		"-u", "access-key", "-p", "secret-key",
		"--api", "https://app.example.com/",
		"--config_file", path)
	if err != nil {
		t.Fatalf("configure failed: %v", err)
	}
	if !strings.Contains(out, "Settings saved.") {
		t.Errorf("configure output = %q", out)
	}

	settings, err := pctoolbox.LoadSettingsFile(path)
	if err != nil {
		t.Fatalf("LoadSettingsFile() returned error: %v", err)
	}
	if settings.APIBase != "api.example.com" {
		t.Errorf("APIBase = %q, want %q", settings.APIBase, "api.example.com")
	}
	if settings.SettingsFileVersion != pctoolbox.SettingsFileVersion {
		t.Errorf("SettingsFileVersion = %d, want %d", settings.SettingsFileVersion, pctoolbox.SettingsFileVersion)
	}
}

func TestCLI_Configure_PartialCredentials(t *testing.T) {
	path := testEnv(t)

	_, err := execute(t, "configure", "-u", "access-key", "--config_file", path)
	if !errors.Is(err, pctoolbox.ErrMissingArguments) {
		t.Fatalf("configure error = %v, want ErrMissingArguments", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("configure wrote a settings file despite failing validation")
	}
}

func TestCLI_Configure_CredentialsFromEnv(t *testing.T) {
	path := testEnv(t)
	t.Setenv("PC_USERNAME", "env-user")
	t.Setenv("PC_PASSWORD", "env-secret")
	t.Setenv("PC_API", "app.env.example.com")

	_, err := execute(t, "configure", "--config_file", path)
	if err != nil {
		t.Fatalf("configure failed: %v", err)
	}

	settings, err := pctoolbox.LoadSettingsFile(path)
	if err != nil {
		t.Fatalf("LoadSettingsFile() returned error: %v", err)
	}
	if settings.Username != "env-user" {
		t.Errorf("Username = %q, want env fallback", settings.Username)
	}
	if settings.APIBase != "api.env.example.com" {
		t.Errorf("APIBase = %q, want %q", settings.APIBase, "api.env.example.com")
	}
}

func TestCLI_ConfigureGet_MasksPassword(t *testing.T) {
	path := testEnv(t)

	if _, err := execute(t, "configure",
		"-u", "access-key", "-p", "super-secret-key",
		"--api", "api.example.com", "--config_file", path); err != nil {
		t.Fatalf("configure failed: %v", err)
	}

	cfgUsername, cfgPassword, cfgAPI = "", "", ""
	out, err := execute(t, "configure", "get", "--config_file", path, "--json")
	if err != nil {
		t.Fatalf("configure get failed: %v", err)
	}
	if strings.Contains(out, "super-secret-key") {
		t.Error("configure get leaked the secret key")
	}

	var view SettingsView
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("configure get --json produced invalid JSON: %v\n%s", err, out)
	}
	if view.APIBase != "api.example.com" {
		t.Errorf("apiBase = %q, want %q", view.APIBase, "api.example.com")
	}
	if view.Username != "access-key" {
		t.Errorf("username = %q, want %q", view.Username, "access-key")
	}
}

func TestCLI_ConfigureGet_MissingFile(t *testing.T) {
	path := testEnv(t)

	_, err := execute(t, "configure", "get", "--config_file", path)
	if !errors.Is(err, pctoolbox.ErrSettingsNotFound) {
		t.Fatalf("configure get error = %v, want ErrSettingsNotFound", err)
	}
}

func TestCLI_Check_ResolvesFromFile(t *testing.T) {
	path := testEnv(t)

	if _, err := execute(t, "configure",
		"-u", "access-key", "-p", "secret-key",
		"--api", "api.example.com", "--config_file", path); err != nil {
		t.Fatalf("configure failed: %v", err)
	}

	cfgUsername, cfgPassword, cfgAPI = "", "", ""
	out, err := execute(t, "check", "--yes", "--config_file", path, "--json")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}

	var result CheckResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("check --json produced invalid JSON: %v\n%s", err, out)
	}
	if !strings.HasPrefix(result.Source, "settings file") {
		t.Errorf("Source = %q, want settings file source", result.Source)
	}
	if result.APIBase != "api.example.com" {
		t.Errorf("APIBase = %q, want %q", result.APIBase, "api.example.com")
	}
}

func TestCLI_Check_DeclinedPrompt(t *testing.T) {
	path := testEnv(t)

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stdout)
	rootCmd.SetIn(strings.NewReader("no\n"))
	rootCmd.SetArgs([]string{"check", "--config_file", path})

	err := rootCmd.Execute()
	if !errors.Is(err, pctoolbox.ErrUserDeclined) {
		t.Fatalf("check error = %v, want ErrUserDeclined", err)
	}
}

func TestCLI_Version_JSON(t *testing.T) {
	testEnv(t)

	out, err := execute(t, "version", "--json")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}

	var info versionInfo
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("version --json produced invalid JSON: %v\n%s", err, out)
	}
	if info.Version != version {
		t.Errorf("Version = %q, want %q", info.Version, version)
	}
}

func TestStatusCodeFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{pctoolbox.ErrMissingArguments, 400},
		{&pctoolbox.NotFoundError{Path: "x"}, 400},
		{pctoolbox.ErrUserDeclined, 400},
		{&pctoolbox.ParseError{Path: "x", Err: errors.New("bad")}, 500},
		{&pctoolbox.VersionError{Path: "x", Found: 1, Want: 4}, 500},
		{&pctoolbox.IOError{Op: "write", Path: "x", Err: errors.New("denied")}, 500},
	}
	for _, tt := range tests {
		if got := statusCodeFor(tt.err); got != tt.want {
			t.Errorf("statusCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestOutputError_ScrubsSecret(t *testing.T) {
	testEnv(t)
	cfgPassword = "super-secret-key"

	var buf bytes.Buffer
	outputError(&buf, errors.New("request failed for key super-secret-key"))

	if strings.Contains(buf.String(), "super-secret-key") {
		t.Error("outputError leaked the secret key")
	}
	if !strings.Contains(buf.String(), "Status Code: 500") {
		t.Errorf("outputError output = %q, want status code line", buf.String())
	}
}

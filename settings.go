package pctoolbox

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultSettingsFilename is the settings file name used when the
	// caller does not supply one, resolved against the working directory.
	DefaultSettingsFilename = "pc-settings.conf"

	// SettingsFileVersion is the settings file format version this
	// release reads and writes. Files declaring any other version are
	// rejected so stale credential caches never flow into API calls.
	SettingsFileVersion = 4
)

// Settings is the validated credential/configuration record consumed by
// API commands. It is constructed fresh from command-line arguments
// (unversioned) or loaded from a settings file (versioned), and is the
// exact JSON shape persisted to disk.
type Settings struct {
	SettingsFileVersion int     `json:"settings_file_version"`
	APIBase             string  `json:"apiBase"`
	Username            string  `json:"username"`
	Password            string  `json:"password"`
	APICompute          *string `json:"api_compute"`
	CABundle            *string `json:"ca_bundle"`
}

// Args carries the parsed command-line arguments relevant to settings
// resolution. Empty string means "not supplied".
type Args struct {
	Username   string
	Password   string
	API        string
	APICompute string
	CABundle   string
	ConfigFile string
}

// settings builds an in-memory record from freshly supplied arguments,
// normalizing the base URLs. The version field is left unset; only the
// save path stamps it.
func (a Args) settings() *Settings {
	return &Settings{
		APIBase:    NormalizeAPIBase(a.API),
		Username:   a.Username,
		Password:   a.Password,
		APICompute: optional(NormalizeAPIComputeBase(a.APICompute)),
		CABundle:   optional(a.CABundle),
	}
}

// ResolveSettings produces a settings record from command-line arguments
// or, when no credentials were supplied at all, from the settings file.
//
// Resolution rules:
//   - Username, Password, and API all absent: load the settings file
//     named by args.ConfigFile (default: DefaultSettingsFilename in
//     workDir). The filesystem is touched only on this path.
//   - Some but not all three present: ErrMissingArguments.
//   - All three present: build directly from the arguments; the
//     filesystem is never touched.
func ResolveSettings(args Args, workDir string) (*Settings, error) {
	switch {
	case args.Username == "" && args.Password == "" && args.API == "":
		return LoadSettingsFile(SettingsFilePath(workDir, args.ConfigFile))
	case args.Username == "" || args.Password == "" || args.API == "":
		return nil, ErrMissingArguments
	}
	return args.settings(), nil
}

// SettingsFilePath resolves a settings file name against a working
// directory. An empty name selects DefaultSettingsFilename. A name
// containing a path separator is used verbatim; a bare name is joined
// to workDir.
func SettingsFilePath(workDir, name string) string {
	if name == "" {
		return filepath.Join(workDir, DefaultSettingsFilename)
	}
	if strings.ContainsRune(name, os.PathSeparator) {
		return name
	}
	return filepath.Join(workDir, name)
}

// LoadSettingsFile reads and validates a settings file.
//
// Failure modes, all typed: *NotFoundError when the path does not exist,
// *ParseError when the file is not well-formed JSON, *VersionError when
// the declared version differs from SettingsFileVersion. A partial
// record is never returned. APICompute and CABundle stay nil when the
// file omits them.
func LoadSettingsFile(path string) (*Settings, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, &NotFoundError{Path: path}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	if settings.SettingsFileVersion != SettingsFileVersion {
		return nil, &VersionError{Path: path, Found: settings.SettingsFileVersion, Want: SettingsFileVersion}
	}

	return &settings, nil
}

// SaveSettingsFile normalizes the supplied arguments into a settings
// record, stamps the current version, and writes it pretty-printed to
// the resolved settings path, overwriting any existing file. There is
// no merge with prior contents.
func SaveSettingsFile(args Args, workDir string) error {
	path := SettingsFilePath(workDir, args.ConfigFile)

	settings := args.settings()
	settings.SettingsFileVersion = SettingsFileVersion

	return WriteJSONFile(path, settings, true)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	pctoolbox "github.com/timekillerj/pc-toolbox"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Save Prisma Cloud credentials to the settings file",
	Long: `Validate and cache Prisma Cloud credentials in a settings file so
API commands can run without flags.

The API/UI base URL is normalized (scheme and trailing slash removed,
app -> api) before it is written. Any existing settings file at the
target path is overwritten.

Example:
  pc configure -u <access-key> -p <secret-key> --api app.prismacloud.io
  pc configure -u <access-key> -p <secret-key> --api app.eu.prismacloud.io --api_compute https://example.cloud.twistlock.com/eu-1-123456789`,
	RunE: runConfigure,
}

var configureGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the saved settings",
	Long: `Display the settings file contents with the secret key masked.

Example:
  pc configure get
  pc configure get --json`,
	RunE: runConfigureGet,
}

func init() {
	configureCmd.AddCommand(configureGetCmd)
}

// ConfigureResult for JSON output.
type ConfigureResult struct {
	ConfigFile string `json:"config_file"`
	APIBase    string `json:"api_base"`
	Username   string `json:"username"`
}

func runConfigure(cmd *cobra.Command, args []string) error {
	dbg := newDebugLogger()
	defer func() { _ = dbg.Close() }()

	toolboxArgs := loadArgs()
	if toolboxArgs.Username == "" || toolboxArgs.Password == "" || toolboxArgs.API == "" {
		return pctoolbox.ErrMissingArguments
	}

	dir := workDir()
	path := pctoolbox.SettingsFilePath(dir, toolboxArgs.ConfigFile)
	dbg.LogFileOp("write", path)

	if err := pctoolbox.SaveSettingsFile(toolboxArgs, dir); err != nil {
		dbg.LogError("configure", err)
		return err
	}

	if outputJSON {
		return outputAsJSON(cmd, ConfigureResult{
			ConfigFile: path,
			APIBase:    pctoolbox.NormalizeAPIBase(toolboxArgs.API),
			Username:   toolboxArgs.Username,
		})
	}

	out := cmd.OutOrStdout()
	printSuccess(out, "Settings saved.")
	fmt.Fprintf(out, "  File: %s\n", path)
	fmt.Fprintf(out, "  API Base: %s\n", pctoolbox.NormalizeAPIBase(toolboxArgs.API))
	printMuted(out, "Verify with: pc configure get")
	return nil
}

// SettingsView is the masked form of a settings record for display.
type SettingsView struct {
	SettingsFileVersion int     `json:"settings_file_version"`
	APIBase             string  `json:"apiBase"`
	Username            string  `json:"username"`
	Password            string  `json:"password"`
	APICompute          *string `json:"api_compute"`
	CABundle            *string `json:"ca_bundle"`
}

func runConfigureGet(cmd *cobra.Command, args []string) error {
	dbg := newDebugLogger()
	defer func() { _ = dbg.Close() }()

	path := pctoolbox.SettingsFilePath(workDir(), loadArgs().ConfigFile)
	dbg.LogFileOp("read", path)

	settings, err := pctoolbox.LoadSettingsFile(path)
	if err != nil {
		dbg.LogError("configure get", err)
		return err
	}

	view := SettingsView{
		SettingsFileVersion: settings.SettingsFileVersion,
		APIBase:             settings.APIBase,
		Username:            settings.Username,
		Password:            maskSecret(settings.Password),
		APICompute:          settings.APICompute,
		CABundle:            settings.CABundle,
	}

	if outputJSON {
		return outputAsJSON(cmd, view)
	}

	out := cmd.OutOrStdout()
	printInfo(out, "Settings file: %s", path)
	fmt.Fprintf(out, "  API Base:    %s\n", view.APIBase)
	fmt.Fprintf(out, "  Username:    %s\n", view.Username)
	fmt.Fprintf(out, "  Password:    %s\n", view.Password)
	fmt.Fprintf(out, "  Compute API: %s\n", stringOrDash(view.APICompute))
	fmt.Fprintf(out, "  CA Bundle:   %s\n", stringOrDash(view.CABundle))
	return nil
}

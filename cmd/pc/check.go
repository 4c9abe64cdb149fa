package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	pctoolbox "github.com/timekillerj/pc-toolbox"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Resolve settings the way an API command would",
	Long: `Resolve credentials exactly as an API command would (flags, then
PC_* environment variables, then the settings file) and report what was
found. Prompts for verification first; pass --yes to skip the prompt.

Example:
  pc check --yes
  pc check -u <access-key> -p <secret-key> --api app.prismacloud.io --yes`,
	RunE: runCheck,
}

// CheckResult for JSON output.
type CheckResult struct {
	Source     string  `json:"source"`
	APIBase    string  `json:"api_base"`
	Username   string  `json:"username"`
	Password   string  `json:"password"`
	APICompute *string `json:"api_compute"`
	CABundle   *string `json:"ca_bundle"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	dbg := newDebugLogger()
	defer func() { _ = dbg.Close() }()

	out := cmd.OutOrStdout()
	if err := pctoolbox.Confirm(cmd.InOrStdin(), out, cfgYes); err != nil {
		return err
	}

	toolboxArgs := loadArgs()
	source := "settings file " + pctoolbox.SettingsFilePath(workDir(), toolboxArgs.ConfigFile)
	if toolboxArgs.Username != "" || toolboxArgs.Password != "" || toolboxArgs.API != "" {
		source = "command-line/environment"
	}
	dbg.LogResolve(source)

	settings, err := pctoolbox.ResolveSettings(toolboxArgs, workDir())
	if err != nil {
		dbg.LogError("check", err)
		return err
	}

	result := CheckResult{
		Source:     source,
		APIBase:    settings.APIBase,
		Username:   settings.Username,
		Password:   maskSecret(settings.Password),
		APICompute: settings.APICompute,
		CABundle:   settings.CABundle,
	}

	if outputJSON {
		return outputAsJSON(cmd, result)
	}

	printSuccess(out, "Settings resolved from %s", result.Source)
	fmt.Fprintf(out, "  API Base:    %s\n", result.APIBase)
	fmt.Fprintf(out, "  Username:    %s\n", result.Username)
	fmt.Fprintf(out, "  Password:    %s\n", result.Password)
	fmt.Fprintf(out, "  Compute API: %s\n", stringOrDash(result.APICompute))
	fmt.Fprintf(out, "  CA Bundle:   %s\n", stringOrDash(result.CABundle))

	if result.CABundle != nil {
		if _, err := os.Stat(*result.CABundle); err != nil {
			printWarning(out, "CA bundle %s is not readable", *result.CABundle)
		}
	}
	return nil
}

package main

import (
	"os"

	"github.com/spf13/cobra"
	pctoolbox "github.com/timekillerj/pc-toolbox"
)

var (
	cfgUsername   string
	cfgPassword   string
	cfgAPI        string
	cfgAPICompute string
	cfgCABundle   string
	cfgConfigFile string
	cfgYes        bool
	cfgDebug      bool
	outputJSON    bool
)

var rootCmd = &cobra.Command{
	Use:   "pc",
	Short: "pc - Prisma Cloud settings and utility CLI",
	Long: `pc manages the credentials and configuration used to talk to a
Prisma Cloud tenant.

Credentials can be supplied on the command line, through PC_* environment
variables, or from a cached settings file written by 'pc configure'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgUsername, "username", "u", "", "Prisma Cloud API Access Key")
	rootCmd.PersistentFlags().StringVarP(&cfgPassword, "password", "p", "", "Prisma Cloud API Secret Key")
	rootCmd.PersistentFlags().StringVar(&cfgAPI, "api", "", "Prisma Cloud API/UI Base URL")
	rootCmd.PersistentFlags().StringVar(&cfgAPICompute, "api_compute", "", "Prisma Cloud Compute API Base URL (see Compute > Manage > System > Downloads: Path to Console)")
	rootCmd.PersistentFlags().StringVar(&cfgCABundle, "ca_bundle", "", "Custom CA (bundle) file")
	rootCmd.PersistentFlags().StringVar(&cfgConfigFile, "config_file", "", "Settings file (default: "+pctoolbox.DefaultSettingsFilename+")")
	rootCmd.PersistentFlags().BoolVarP(&cfgYes, "yes", "y", false, "Do not prompt for verification")
	rootCmd.PersistentFlags().BoolVar(&cfgDebug, "debug", false, "Log settings operations to stderr (or PC_DEBUG_LOG)")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output JSON instead of human-readable text")

	rootCmd.AddCommand(configureCmd)
	rootCmd.AddCommand(checkCmd)
}

// loadArgs merges command-line flags over environment variables.
// Flags always win; the settings file is consulted later, only when no
// credentials were supplied at all.
func loadArgs() pctoolbox.Args {
	flags := pctoolbox.Args{
		Username:   cfgUsername,
		Password:   cfgPassword,
		API:        cfgAPI,
		APICompute: cfgAPICompute,
		CABundle:   cfgCABundle,
		ConfigFile: cfgConfigFile,
	}
	return flags.Merge(pctoolbox.ArgsFromEnv())
}

// workDir is the directory bare settings file names resolve against.
func workDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}

// newDebugLogger builds the logger for one command invocation.
func newDebugLogger() *pctoolbox.DebugLogger {
	enabled := cfgDebug || os.Getenv("PC_DEBUG") != ""
	logger, err := pctoolbox.NewDebugLogger(enabled, os.Getenv("PC_DEBUG_LOG"))
	if err != nil {
		// Fall back to stderr rather than failing the command
		logger, _ = pctoolbox.NewDebugLogger(enabled, "")
	}
	return logger
}

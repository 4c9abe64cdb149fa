package pctoolbox

import "os"

// ArgsFromEnv reads credential arguments from environment variables.
//
//	PC_USERNAME      → Username
//	PC_PASSWORD      → Password
//	PC_API           → API
//	PC_API_COMPUTE   → APICompute
//	PC_CA_BUNDLE     → CABundle
//	PC_CONFIG_FILE   → ConfigFile
//
// Callers layer these under command-line flags: a flag that was set
// always wins over the corresponding variable.
func ArgsFromEnv() Args {
	return Args{
		Username:   os.Getenv("PC_USERNAME"),
		Password:   os.Getenv("PC_PASSWORD"),
		API:        os.Getenv("PC_API"),
		APICompute: os.Getenv("PC_API_COMPUTE"),
		CABundle:   os.Getenv("PC_CA_BUNDLE"),
		ConfigFile: os.Getenv("PC_CONFIG_FILE"),
	}
}

// Merge overlays a on base, field by field: a's non-empty fields win.
func (a Args) Merge(base Args) Args {
	if a.Username == "" {
		a.Username = base.Username
	}
	if a.Password == "" {
		a.Password = base.Password
	}
	if a.API == "" {
		a.API = base.API
	}
	if a.APICompute == "" {
		a.APICompute = base.APICompute
	}
	if a.CABundle == "" {
		a.CABundle = base.CABundle
	}
	if a.ConfigFile == "" {
		a.ConfigFile = base.ConfigFile
	}
	return a
}

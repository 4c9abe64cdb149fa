package pctoolbox

import "strings"

// NormalizeAPIBase normalizes a Prisma Cloud API/UI base URL to its
// hostname-only form: lower-cased, scheme and trailing slashes removed,
// with the historical "app" -> "api" and "redlock" -> "prismacloud"
// substitutions applied. The substitutions are plain substring replaces,
// not word-boundary aware, and can fire mid-token; that matches the
// behavior every existing settings file was written with.
//
// An empty input normalizes to the empty string.
func NormalizeAPIBase(api string) string {
	if api == "" {
		return ""
	}
	api = strings.ToLower(api)
	api = strings.ReplaceAll(api, "app", "api")
	api = strings.ReplaceAll(api, "redlock", "prismacloud")
	api = strings.ReplaceAll(api, "http://", "")
	api = strings.ReplaceAll(api, "https://", "")
	return strings.TrimRight(api, "/")
}

// NormalizeAPIComputeBase normalizes a Compute Console base URL the same
// way as NormalizeAPIBase but without the app/redlock substitutions.
func NormalizeAPIComputeBase(apiCompute string) string {
	if apiCompute == "" {
		return ""
	}
	apiCompute = strings.ToLower(apiCompute)
	apiCompute = strings.ReplaceAll(apiCompute, "http://", "")
	apiCompute = strings.ReplaceAll(apiCompute, "https://", "")
	return strings.TrimRight(apiCompute, "/")
}

// optional converts a possibly-empty string to the nullable form used in
// the settings record: nil when empty, never a pointer to "".
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

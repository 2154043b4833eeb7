package config

// File is the on-disk configuration file structure.
//
// Example:
//
//	defaults:
//	  limit: 1000
//	dumps:
//	  enwiki-latest-pages-articles.xml.bz2:
//	    skip_file_links: true
//	  jawiki.xml:
//	    disambiguation_suffix: " (曖昧さ回避)"
type File struct {
	// Defaults applies to every dump unless overridden per dump.
	Defaults DumpConfig `yaml:"defaults"`

	// Dumps maps a dump path or base file name to its overrides.
	Dumps map[string]DumpConfig `yaml:"dumps"`
}

// DumpConfig holds the per-dump extraction settings.
//
// Merge semantics: a zero value means "inherit", so false booleans and
// zero limits cannot mask an enabled global flag. Use flags for one-off
// runs and the file for durable per-dump policy.
type DumpConfig struct {
	// Limit caps the number of emitted records. Zero inherits.
	Limit int `yaml:"limit"`

	// Strict surfaces mid-stream read errors as fatal.
	Strict bool `yaml:"strict"`

	// SkipFileLinks passes over "File:" link targets.
	SkipFileLinks bool `yaml:"skip_file_links"`

	// DisambiguationSuffix overrides the excluded title suffix.
	// Empty inherits.
	DisambiguationSuffix string `yaml:"disambiguation_suffix"`
}

// mergeDumpConfig overlays override onto base, keeping base values
// where the override is zero.
func mergeDumpConfig(base, override DumpConfig) DumpConfig {
	result := base
	if override.Limit > 0 {
		result.Limit = override.Limit
	}
	if override.Strict {
		result.Strict = true
	}
	if override.SkipFileLinks {
		result.SkipFileLinks = true
	}
	if override.DisambiguationSuffix != "" {
		result.DisambiguationSuffix = override.DisambiguationSuffix
	}
	return result
}

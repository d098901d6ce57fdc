// Package config reads the TOML configuration of tagmend.
//
// A configuration file looks like this:
//
//	# Elements that never have a closing tag. Replaces the default list.
//	void = ["br", "hr", "img"]
//	# Elements added to the list above.
//	extra_void = ["x-icon"]
//	# Format of edit reports: "text", "json" or "yaml".
//	report = "text"
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// ReportFormats lists the supported values of Config.Report.
var ReportFormats = []string{"text", "json", "yaml"}

// Config is the configuration of tagmend.
type Config struct {
	Void      []string `toml:"void"`
	ExtraVoid []string `toml:"extra_void"`
	Report    string   `toml:"report"`

	voidSet map[string]bool
}

var defaultVoid = []string{
	"area", "base", "br", "col", "embed", "hr", "img", "input",
	"link", "meta", "param", "source", "track", "wbr",
}

// Default returns the default configuration, which treats HTML void elements
// as self-closing and uses text reports.
func Default() *Config {
	cfg := &Config{Void: append([]string(nil), defaultVoid...), Report: "text"}
	cfg.index()
	return cfg
}

// Load reads the configuration from the named file, with unspecified settings
// taking their default values. An empty name returns the default
// configuration.
func Load(fname string) (*Config, error) {
	cfg := Default()
	if fname == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(fname, cfg)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", fname, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("config %s: unknown keys: %s", fname, strings.Join(keys, ", "))
	}
	if err := CheckReport(cfg.Report); err != nil {
		return nil, fmt.Errorf("config %s: %w", fname, err)
	}
	cfg.index()
	return cfg, nil
}

// CheckReport returns an error if format is not one of ReportFormats.
func CheckReport(format string) error {
	for _, f := range ReportFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("unknown report format %q, must be one of %s",
		format, strings.Join(ReportFormats, ", "))
}

func (cfg *Config) index() {
	cfg.voidSet = make(map[string]bool, len(cfg.Void)+len(cfg.ExtraVoid))
	for _, name := range cfg.Void {
		cfg.voidSet[strings.ToLower(name)] = true
	}
	for _, name := range cfg.ExtraVoid {
		cfg.voidSet[strings.ToLower(name)] = true
	}
}

// IsVoid reports whether the named element never has a closing tag. It is
// suitable as the void argument of tag.Lex.
func (cfg *Config) IsVoid(name string) bool {
	return cfg.voidSet[name]
}

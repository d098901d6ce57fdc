package prog

import "flag"

// FlagSet wraps a [flag.FlagSet]. It also provides methods to register flags
// shared by multiple subprograms; each of them registers the flag on the
// first call and returns the same pointer on later calls.
type FlagSet struct {
	*flag.FlagSet
	json   *bool
	config *string
}

// JSON returns a pointer to the value of the -json flag.
func (fs *FlagSet) JSON() *bool {
	if fs.json == nil {
		var json bool
		fs.BoolVar(&json, "json", false,
			"show the output from -buildinfo or the edit report in JSON")
		fs.json = &json
	}
	return fs.json
}

// Config returns a pointer to the value of the -config flag.
func (fs *FlagSet) Config() *string {
	if fs.config == nil {
		var config string
		fs.StringVar(&config, "config", "", "path to a TOML configuration file")
		fs.config = &config
	}
	return fs.config
}

// Package srcflags locates the schema sources of a command.
package srcflags

import (
	"flag"
	"os"

	"github.com/brimdata/wcgen/compiler"
	"github.com/brimdata/wcgen/compiler/semantic"
	"github.com/goccy/go-yaml"
)

// Config is the YAML form of the flags.  Flags following -config on the
// command line override its values.
type Config struct {
	Source string `yaml:"source"`
	Ext    string `yaml:"ext"`
	Output string `yaml:"output"`
}

type Flags struct {
	Config
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	f.Source, f.Ext = ".", "scm"
	fs.Func("config", "path of YAML config file", f.LoadConfig)
	fs.StringVar(&f.Source, "I", f.Source, "directory searched for schema source files")
	fs.StringVar(&f.Ext, "ext", f.Ext, "extension of schema source files")
}

func (f *Flags) LoadConfig(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.UnmarshalWithOptions(b, &f.Config, yaml.DisallowUnknownField())
}

// Load parses and validates the schema sources.
func (f *Flags) Load() (*semantic.Environment, error) {
	return compiler.Load(f.Source, f.Ext)
}

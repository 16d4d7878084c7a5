package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/calebcase/multidouble/quad"
)

// Config describes reference tables to evaluate.
//
//	precision = 30
//	width = 0
//
//	[[table]]
//	function = "exp"
//	inputs = ["1.5", "0x1.e37bed2c3aa0bp+0,-0x1.e2d5f1238d4c0p-56"]
//
// Inputs of two argument functions separate the arguments with ';'.
type Config struct {
	Precision int     `toml:"precision" yaml:"precision"`
	Width     int     `toml:"width" yaml:"width"`
	Tables    []Table `toml:"table" yaml:"table"`
}

// Table is a function evaluated at a list of inputs.
type Table struct {
	Function string   `toml:"function" yaml:"function"`
	Inputs   []string `toml:"inputs" yaml:"inputs"`
}

// Spec returns the output format of the configuration.
func (c Config) Spec() quad.Spec {
	return quad.Spec{Width: c.Width, Precision: c.Precision}
}

func defaultConfig() Config {
	return Config{Precision: quad.DefaultPrecision}
}

// LoadConfig reads a configuration file. YAML is used for the .yaml and .yml
// extensions and TOML otherwise.
func LoadConfig(path string) (c Config, err error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return c, Error.Wrap(err)
	}

	return parseConfig(content, filepath.Ext(path))
}

func parseConfig(content []byte, ext string) (c Config, err error) {
	c = defaultConfig()

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &c)
	default:
		err = toml.Unmarshal(content, &c)
	}

	if err != nil {
		return c, Error.Wrap(err)
	}

	if c.Precision < 0 || c.Width < 0 {
		return c, Error.New("precision and width must not be negative")
	}

	for i, t := range c.Tables {
		if _, ok := unary[strings.ToLower(t.Function)]; ok {
			continue
		}

		if _, ok := binary[strings.ToLower(t.Function)]; ok {
			continue
		}

		return c, Error.New("table %d: unknown function %q", i, t.Function)
	}

	return c, nil
}

package instrument

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	"github.com/omniaura/solid-grab/injector"
)

// Config drives one instrumentation run. Whether to run at all (development
// versus production build) is the caller's decision; the service
// instruments whatever it is pointed at.
type Config struct {
	Root       string   `yaml:"root"`       // project directory to instrument
	OutDir     string   `yaml:"outDir"`     // output mirror tree, default "solid-grab-out" under root
	Extensions []string `yaml:"extensions"` // source extensions, default .jsx/.tsx
	Skip       []string `yaml:"skip"`       // directory names excluded from the walk
	Location   *bool    `yaml:"location"`   // inject data-solid-source, default true
	Component  *bool    `yaml:"component"`  // inject data-solid-component, default true
}

// Init fills in defaults for unset fields.
func (c *Config) Init() {
	if c.Root == "" {
		c.Root = "."
	}
	if c.OutDir == "" {
		c.OutDir = "solid-grab-out"
	}
	if len(c.Extensions) == 0 {
		c.Extensions = []string{".jsx", ".tsx"}
	}
	if len(c.Skip) == 0 {
		c.Skip = []string{"node_modules", "dist", ".git"}
	}
}

// Options maps the config toggles onto injector options.
func (c *Config) Options() injector.Options {
	opts := injector.DefaultOptions()
	if c.Location != nil {
		opts.InjectLocation = *c.Location
	}
	if c.Component != nil {
		opts.InjectComponent = *c.Component
	}
	return opts
}

// LoadConfig reads a YAML config file.
func LoadConfig(ctx context.Context, url string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("instrument: read config %s: %w", url, err)
	}
	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("instrument: parse config %s: %w", url, err)
	}
	config.Init()
	return config, nil
}

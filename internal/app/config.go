package app

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"os"

	"chipfire/internal/logging"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config represents the runtime settings of the explorer.
type Config struct {
	Sigma    int `yaml:"sigma"`
	MaxSigma int `yaml:"max_sigma"`

	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"`

	ShowAxes       bool    `yaml:"show_axes"`
	AxisLength     float64 `yaml:"axis_length"`
	NodeRadius     float64 `yaml:"node_radius"`
	CameraDistance float64 `yaml:"camera_distance"`
	FOV            float64 `yaml:"fov"`
	PickRadius     float64 `yaml:"pick_radius"`

	LogLevel    string `yaml:"log_level"`
	MetricsAddr string `yaml:"metrics_addr"`

	// ConfigPath names an optional YAML file overlaid on the defaults.
	ConfigPath string `yaml:"-"`
}

// NewConfig returns a Config populated from the embedded defaults.
func NewConfig() *Config {
	c := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, c); err != nil {
		panic(fmt.Sprintf("app: embedded defaults: %v", err))
	}
	return c
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML file overriding the defaults")
	fs.IntVar(&c.Sigma, "sigma", c.Sigma, "initial number of chips (plane parameter)")
	fs.IntVar(&c.MaxSigma, "max-sigma", c.MaxSigma, "largest sigma accepted, 0 for no limit")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.BoolVar(&c.ShowAxes, "axes", c.ShowAxes, "show the coordinate axes")
	fs.Float64Var(&c.CameraDistance, "distance", c.CameraDistance, "initial camera distance")
	fs.Float64Var(&c.FOV, "fov", c.FOV, "vertical field of view in degrees")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	fs.StringVar(&c.MetricsAddr, "metrics-addr", c.MetricsAddr, "serve Prometheus metrics on this address")
}

// LoadFile overlays the keys present in a YAML file.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Parse builds a Config from defaults, the optional -config file and args.
// Flags given on the command line win over the file.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	c := NewConfig()
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.ConfigPath != "" {
		explicit := map[string]string{}
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })
		if err := c.LoadFile(c.ConfigPath); err != nil {
			return nil, err
		}
		for name, value := range explicit {
			if err := fs.Set(name, value); err != nil {
				return nil, err
			}
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate rejects settings the explorer cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Sigma < 0 {
		errs = append(errs, fmt.Errorf("sigma must be non-negative, got %d", c.Sigma))
	}
	if c.MaxSigma < 0 {
		errs = append(errs, fmt.Errorf("max_sigma must be non-negative, got %d", c.MaxSigma))
	}
	if c.MaxSigma > 0 && c.Sigma > c.MaxSigma {
		errs = append(errs, fmt.Errorf("sigma %d exceeds max_sigma %d", c.Sigma, c.MaxSigma))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if c.NodeRadius <= 0 {
		errs = append(errs, fmt.Errorf("node_radius must be positive, got %g", c.NodeRadius))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

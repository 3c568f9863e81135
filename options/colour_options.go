package options

import (
	"fmt"
	"os"
	"runtime"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	defaultSource     = "EncodedSrgbU8"
	defaultTarget     = "Oklab"
	defaultLogLevel   = "info"
	defaultIterations = 1_000_000
)

// ColourOptions configures the command line tools. Zero fields take the
// defaults.
type ColourOptions struct {
	LogLevel string `yaml:"log_level"`
	Source   string `yaml:"source"`
	Target   string `yaml:"target"`

	// SpaceAsset is an optional YAML or TOML custom colour space descriptor.
	SpaceAsset string `yaml:"space_asset"`

	Profile    bool `yaml:"profile"`
	Iterations int  `yaml:"iterations"`

	// MaxGoroutines bounds the workers used for buffer conversion.
	MaxGoroutines int `yaml:"max_goroutines"`
}

func NewColourOptions(options *ColourOptions) *ColourOptions {

	opt := &ColourOptions{
		LogLevel:      defaultLogLevel,
		Source:        defaultSource,
		Target:        defaultTarget,
		Iterations:    defaultIterations,
		MaxGoroutines: runtime.NumCPU(),
	}
	if options != nil {
		if options.LogLevel != "" {
			opt.LogLevel = options.LogLevel
		}
		if options.Source != "" {
			opt.Source = options.Source
		}
		if options.Target != "" {
			opt.Target = options.Target
		}
		if options.Iterations > 0 {
			opt.Iterations = options.Iterations
		}
		if options.MaxGoroutines > 0 {
			opt.MaxGoroutines = options.MaxGoroutines
		}
		opt.SpaceAsset = options.SpaceAsset
		opt.Profile = options.Profile
	}
	return opt
}

// LoadOptions reads options from a YAML file and fills in the defaults.
func LoadOptions(path string) (*ColourOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var opt ColourOptions
	if err := yaml.Unmarshal(data, &opt); err != nil {
		return nil, fmt.Errorf("failed to parse options %s: %w", path, err)
	}
	return NewColourOptions(&opt), nil
}

// Level parses LogLevel.
func (o *ColourOptions) Level() (log.Level, error) {
	return log.ParseLevel(o.LogLevel)
}

// ApplyLogLevel sets the logrus level from LogLevel.
func (o *ColourOptions) ApplyLogLevel() error {
	level, err := o.Level()
	if err != nil {
		return err
	}
	log.SetLevel(level)
	return nil
}

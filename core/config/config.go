// Package config loads optional project-level settings for dokdo.
// A dokdo.yaml next to the data can pin the metadata identifier column
// and the FASTQ naming convention; everything has a working default and
// command-line flags win over the file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config filename looked up in the working directory
// when no --config flag is given.
const DefaultFile = "dokdo.yaml"

// Config holds all dokdo configuration.
type Config struct {
	Metadata MetadataConfig `yaml:"metadata"`
	Manifest ManifestConfig `yaml:"manifest"`
}

// MetadataConfig configures sample-metadata handling.
type MetadataConfig struct {
	// IDColumn is the name of the unique sample identifier column.
	IDColumn string `yaml:"id_column"`
}

// ManifestConfig configures the FASTQ filename convention.
type ManifestConfig struct {
	ForwardMarker string `yaml:"forward_marker"`
	ReverseMarker string `yaml:"reverse_marker"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Metadata: MetadataConfig{IDColumn: "sample-id"},
		Manifest: ManifestConfig{
			ForwardMarker: "_R1_001.fastq",
			ReverseMarker: "_R2_001.fastq",
		},
	}
}

// Load reads the config file at path, filling unset fields with
// defaults. An empty path means DefaultFile, and a missing DefaultFile
// is not an error; a missing explicit path is.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Metadata.IDColumn == "" {
		c.Metadata.IDColumn = def.Metadata.IDColumn
	}
	if c.Manifest.ForwardMarker == "" {
		c.Manifest.ForwardMarker = def.Manifest.ForwardMarker
	}
	if c.Manifest.ReverseMarker == "" {
		c.Manifest.ReverseMarker = def.Manifest.ReverseMarker
	}
}

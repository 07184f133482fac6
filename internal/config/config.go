// Package config reads the bundlepick yaml configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// Config represents ~/.config/bundlepick/config.yaml.
type Config struct {
	Bundler    Bundler `yaml:"bundler"`
	IgnoreFile string  `yaml:"ignore_file"`
	Model      string  `yaml:"model"`
	Pager      string  `yaml:"pager"`
	Ranger     string  `yaml:"ranger"`
}

// Bundler configures the external bundling tool invocation.
type Bundler struct {
	Command       string   `yaml:"command"`
	IncludeFlag   string   `yaml:"include_flag"`
	Delimiter     string   `yaml:"delimiter"`
	ClipboardFlag string   `yaml:"clipboard_flag,omitempty"`
	PromptFlag    string   `yaml:"prompt_flag"`
	ExtraArgs     []string `yaml:"extra_args,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Bundler: Bundler{
			Command:     "code2prompt",
			IncludeFlag: "--include",
			Delimiter:   ",",
			PromptFlag:  "--prompt",
		},
		IgnoreFile: ".bundleignore",
		Model:      "gpt-4o",
		Pager:      "bat",
		Ranger:     "ranger",
	}
}

// Parse parses config.yaml bytes, filling unset fields from Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	cfg.fillDefaults()
	return cfg, nil
}

// Marshal serializes a Config to YAML bytes.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// File returns the config file path under the user config dir.
func File() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "bundlepick", "config.yaml")
}

// LoadFile reads File(), returning Default() when it is absent or malformed.
// A broken config file never blocks a session.
func LoadFile() Config {
	data, err := os.ReadFile(File())
	if err != nil {
		return Default()
	}
	cfg, err := Parse(data)
	if err != nil {
		return Default()
	}
	return cfg
}

// fillDefaults restores required fields a partial yaml file left empty.
func (c *Config) fillDefaults() {
	def := Default()
	if c.Bundler.Command == "" {
		c.Bundler.Command = def.Bundler.Command
	}
	if c.Bundler.IncludeFlag == "" {
		c.Bundler.IncludeFlag = def.Bundler.IncludeFlag
	}
	if c.Bundler.Delimiter == "" {
		c.Bundler.Delimiter = def.Bundler.Delimiter
	}
	if c.Bundler.PromptFlag == "" {
		c.Bundler.PromptFlag = def.Bundler.PromptFlag
	}
	if c.IgnoreFile == "" {
		c.IgnoreFile = def.IgnoreFile
	}
	if c.Model == "" {
		c.Model = def.Model
	}
	if c.Pager == "" {
		c.Pager = def.Pager
	}
	if c.Ranger == "" {
		c.Ranger = def.Ranger
	}
}

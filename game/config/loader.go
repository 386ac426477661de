package config

import (
	"fmt"
	"os"
	"strings"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

// EnvPrefix marks environment variables that override file settings
const EnvPrefix = "TOYROBOT_"

const maxConfigFileSize = 1024 * 1024

// Load builds settings from defaults, the optional file at path, then the environment.
//
// Precedence (highest to lowest):
//  1. Environment variables (TOYROBOT_PLAYGROUND_WIDTH, TOYROBOT_COMMANDER_MAX_ROBOTS, ...)
//  2. The settings file, YAML or JSON
//  3. Default()
//
// An empty path or a missing file leaves the defaults in place.
func Load(path string) (*Settings, error) {
	var content []byte
	if path != "" {
		data, err := readFile(path)
		if err != nil && err != ErrConfigNotFound {
			return nil, err
		}
		content = data
	}
	return load(content)
}

// LoadFile is like Load but fails with ErrConfigNotFound when path does not exist
func LoadFile(path string) (*Settings, error) {
	content, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return load(content)
}

func readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInvalidConfig, path)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrInvalidConfig, path, maxConfigFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return data, nil
}

func load(content []byte) (*Settings, error) {
	k := koanf.New(".")

	defaults, err := yaml.Marshal(Default())
	if err != nil {
		return nil, fmt.Errorf("failed to render defaults: %w", err)
	}
	if err := k.Load(rawbytes.Provider(defaults), kyaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if len(content) > 0 {
		if err := k.Load(rawbytes.Provider(content), kyaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// envKey maps TOYROBOT_SECTION_FIELD_NAME to section.field_name
func envKey(s string) string {
	lower := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	parts := strings.SplitN(lower, "_", 2)
	if len(parts) == 1 {
		return lower
	}
	return parts[0] + "." + parts[1]
}

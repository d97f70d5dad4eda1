package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Version is the version of the tool, set at build time.
var Version string

// Entry is a single key-value pair of a state file. Both fields hold
// either a plain string or a 0x-prefixed hex string.
type Entry struct {
	Key   string `yaml:"Key"`
	Value string `yaml:"Value"`
}

// Config is a top level struct representing the state file with all
// key-value pairs to build the trie from.
type Config struct {
	LogLevel string  `yaml:"LogLevel"`
	Entries  []Entry `yaml:"Entries"`
}

// Load attempts to load the state file from the given path.
func Load(path string) (Config, error) {
	configData, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read state file: %w", err)
	}

	config := Config{
		LogLevel: "info",
	}
	if err := yaml.Unmarshal(configData, &config); err != nil {
		return Config{}, fmt.Errorf("problem unmarshaling state file: %w", err)
	}
	return config, nil
}

// KeyBytes returns the raw bytes of the entry's key.
func (e Entry) KeyBytes() ([]byte, error) {
	return DecodeBytes(e.Key)
}

// ValueBytes returns the raw bytes of the entry's value.
func (e Entry) ValueBytes() ([]byte, error) {
	return DecodeBytes(e.Value)
}

// DecodeBytes interprets s as a 0x-prefixed hex string if it carries the
// prefix and as raw UTF-8 bytes otherwise.
func DecodeBytes(s string) ([]byte, error) {
	if strings.HasPrefix(s, "0x") {
		b, err := hex.DecodeString(s[2:])
		if err != nil {
			return nil, fmt.Errorf("invalid hex string %q: %w", s, err)
		}
		return b, nil
	}
	return []byte(s), nil
}

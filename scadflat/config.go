package scadflat

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Config drives a flattening run. It matches the JSON config format of the
// generator projects this tool serves:
//
//	{
//	  "input_file": "gridfinity-iphone-charger.scad",
//	  "output_file": "flat/gridfinity-iphone-charger.scad",
//	  "modifiers": {"DEBUG": "debug_on.scad"}
//	}
type Config struct {
	InputFile  string            `json:"input_file"`
	OutputFile string            `json:"output_file"`
	Modifiers  map[string]string `json:"modifiers"`
}

// ParseConfig decodes and validates a JSON config document.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("scadflat: parsing config: %w", err)
	}
	if cfg.InputFile == "" || cfg.OutputFile == "" {
		return Config{}, errors.New("scadflat: config must set input_file and output_file")
	}
	return cfg, nil
}

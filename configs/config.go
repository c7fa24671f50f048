// Package configs provides library defaults loaded from embedded YAML files.
// All hardcoded values live in defaults.yaml.
package configs

import (
	_ "embed"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Defaults holds all library default values (loaded from defaults.yaml at startup).
var Defaults LibDefaults

func init() {
	if err := yaml.Unmarshal(defaultsYAML, &Defaults); err != nil {
		panic("go-labmanager: invalid defaults.yaml: " + err.Error())
	}
}

// LibDefaults holds all configurable library defaults.
type LibDefaults struct {
	LabManager LabManagerDefaults `yaml:"labmanager"`
	Timeouts   TimeoutDefaults    `yaml:"timeouts"`
}

// LabManagerDefaults holds Lab Manager endpoint defaults.
type LabManagerDefaults struct {
	Port         int    `yaml:"port"`
	PublicPath   string `yaml:"public_path"`
	InternalPath string `yaml:"internal_path"`
	Namespace    string `yaml:"namespace"`
}

// TimeoutDefaults holds all timeout values.
type TimeoutDefaults struct {
	RequestSeconds int `yaml:"request_seconds"`
}

// Request returns the default per-call request timeout.
func (t TimeoutDefaults) Request() time.Duration {
	return time.Duration(t.RequestSeconds) * time.Second
}

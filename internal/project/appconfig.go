package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/kdriggs/binpack2d/internal/model"
)

// configDirEnv lets an operator redirect persisted config without touching
// the filesystem layout, the same os.Getenv-override idiom this module's
// pack uses for tool-level behavior switches.
const configDirEnv = "BINPACK2D_CONFIG_DIR"

// DefaultConfigDir returns the directory persisted defaults/history live
// under: BINPACK2D_CONFIG_DIR if set, otherwise the OS's per-user config
// directory (os.UserConfigDir, XDG-aware on Linux) with a "binpack2d"
// subdirectory.
func DefaultConfigDir() string {
	if dir := os.Getenv(configDirEnv); dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "binpack2d")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig persists an AppConfig to the given path as JSON, creating
// any missing parent directories first.
func SaveAppConfig(path string, config model.AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads an AppConfig from path, falling back to
// DefaultAppConfig when the file does not exist. Any driver parameter that
// decodes as unset or out of its valid range (see model.RunParams.Validate)
// is patched back to its documented default rather than left at a value
// that would reject every future solve. The upper bound on tabu_list_size
// depends on the item count, so only Validate checks it.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, err
	}
	var config model.AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, err
	}
	fillRunParamDefaults(&config.Defaults)
	return config, nil
}

// fillRunParamDefaults patches any field that cannot hold the zero value it
// would decode to from an older or hand-edited config file, or whose value
// lies outside the range Validate accepts, back onto the package default, so
// a partially-specified config.json never silently produces a RunParams
// that fails Validate.
func fillRunParamDefaults(p *model.RunParams) {
	d := model.DefaultRunParams()
	if p.Algorithm != model.AlgorithmGA && p.Algorithm != model.AlgorithmTabu {
		p.Algorithm = d.Algorithm
	}
	if p.CrossoverRate < 0 || p.CrossoverRate > 1 {
		p.CrossoverRate = d.CrossoverRate
	}
	if p.MutationRate < 0 || p.MutationRate > 1 {
		p.MutationRate = d.MutationRate
	}
	if p.Kappa < 1 {
		p.Kappa = d.Kappa
	}
	if p.Delta < 1 {
		p.Delta = d.Delta
	}
	if p.PopulationSize <= 0 {
		p.PopulationSize = d.PopulationSize
	}
	if p.Generations <= 0 {
		p.Generations = d.Generations
	}
	if p.MutationOperator == "" {
		p.MutationOperator = d.MutationOperator
	}
	if p.Iterations <= 0 {
		p.Iterations = d.Iterations
	}
	if p.TabuListSize <= 0 {
		p.TabuListSize = d.TabuListSize
	}
}

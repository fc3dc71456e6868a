package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load discovers a config file relative to the working directory, merges
// it with defaults, applies .env and environment overrides, validates the
// result, and returns the final config. A non-empty path skips discovery.
func Load(path string) (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return load(cwd, path)
}

// LoadFrom loads config using dir for file and .env discovery. This is the
// testable entry point; Load calls it with os.Getwd().
func LoadFrom(dir string) (*Config, error) {
	return load(dir, "")
}

func load(dir, explicit string) (*Config, error) {
	cfg := DefaultConfig()

	path := explicit
	if path == "" {
		path = discoverConfigPath(dir)
	}

	if path != "" {
		override, err := loadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		merge(&cfg, override)
	}

	env, err := newEnv(dir)
	if err != nil {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	applyEnvOverrides(&cfg, env)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// discoverConfigPath returns the first existing file of the discovery
// chain, or "" for defaults-only mode.
func discoverConfigPath(dir string) string {
	candidates := []string{
		filepath.Join(dir, "medintel.yaml"),
		filepath.Join(dir, "medintel.yml"),
		filepath.Join(dir, "medintel.toml"),
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(home, ".config", "medintel", "config.yaml"),
			filepath.Join(home, ".config", "medintel", "config.toml"),
		)
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// loadFromFile decodes a YAML or TOML file, chosen by extension.
func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing TOML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
	}
	return &cfg, nil
}

// merge overlays override onto base. Scalars override when non-zero,
// slices replace when non-nil, *bool fields override when non-nil.
func merge(base *Config, override *Config) {
	// Backend
	if override.Backend.URL != "" {
		base.Backend.URL = override.Backend.URL
	}
	if override.Backend.Timeout != 0 {
		base.Backend.Timeout = override.Backend.Timeout
	}
	if override.Backend.HealthCheck != nil {
		base.Backend.HealthCheck = override.Backend.HealthCheck
	}

	// Auth
	if override.Auth.PatientID != 0 {
		base.Auth.PatientID = override.Auth.PatientID
	}
	if override.Auth.DoctorID != 0 {
		base.Auth.DoctorID = override.Auth.DoctorID
	}
	if override.Auth.TokenEnv != "" {
		base.Auth.TokenEnv = override.Auth.TokenEnv
	}

	if override.Diagnosis.Symptoms != nil {
		base.Diagnosis.Symptoms = override.Diagnosis.Symptoms
	}

	// UI
	if override.UI.DefaultPanel != "" {
		base.UI.DefaultPanel = override.UI.DefaultPanel
	}
	if override.UI.ShowDisclaimer != nil {
		base.UI.ShowDisclaimer = override.UI.ShowDisclaimer
	}

	if override.Update.Repo != "" {
		base.Update.Repo = override.Update.Repo
	}
}

// env resolves variables from the process first, then from a .env file in
// the project directory. The process environment is never modified.
type env struct {
	dotenv map[string]string
}

func newEnv(dir string) (env, error) {
	vals, err := godotenv.Read(filepath.Join(dir, ".env"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return env{}, nil
		}
		return env{}, err
	}
	return env{dotenv: vals}, nil
}

func (e env) get(key string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return e.dotenv[key]
}

// applyEnvOverrides applies MEDINTEL_* variables on top of the config and
// resolves the access token.
func applyEnvOverrides(cfg *Config, e env) {
	if v := e.get("MEDINTEL_BACKEND_URL"); v != "" {
		cfg.Backend.URL = v
	}
	if v := e.get("MEDINTEL_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Backend.Timeout = n
		} else {
			fmt.Fprintf(os.Stderr, "warning: MEDINTEL_TIMEOUT=%q is not a valid integer, ignoring\n", v)
		}
	}
	if v := e.get("MEDINTEL_PATIENT_ID"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Auth.PatientID = n
		} else {
			fmt.Fprintf(os.Stderr, "warning: MEDINTEL_PATIENT_ID=%q is not a valid integer, ignoring\n", v)
		}
	}
	if v := e.get("MEDINTEL_DOCTOR_ID"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Auth.DoctorID = n
		} else {
			fmt.Fprintf(os.Stderr, "warning: MEDINTEL_DOCTOR_ID=%q is not a valid integer, ignoring\n", v)
		}
	}
	if v := e.get("MEDINTEL_DEFAULT_PANEL"); v != "" {
		cfg.UI.DefaultPanel = v
	}
	if cfg.Auth.TokenEnv != "" {
		cfg.Auth.Token = strings.TrimSpace(e.get(cfg.Auth.TokenEnv))
	}
}

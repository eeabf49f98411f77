package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultDBFilename is the root database holding all local recordings.
const DefaultDBFilename = "openadapt.db"

// DefaultModelName is the completion model loaded when none is configured.
// Larger variants are slower; configure model_name to override.
const DefaultModelName = "gpt2"

// DefaultModelMaxLength bounds prompt length (in characters) before
// tokenization; longer prompts are truncated.
const DefaultModelMaxLength = 1024

type Config struct {
	RootDir        string // holds the root database and the env file
	RecordingsDir  string // exported/received recordings land here
	DBFilename     string // active database filename, DB_FNAME overrides
	WormholePath   string // transfer tool executable
	ModelName      string
	ModelMaxLength int
	CompletionURL  string // OpenAI-compatible completions endpoint
	CompletionKey  string
}

type fileConfig struct {
	RootDir        string `toml:"root_dir"`
	RecordingsDir  string `toml:"recordings_dir"`
	DBFilename     string `toml:"db_filename"`
	WormholePath   string `toml:"wormhole_path"`
	ModelName      string `toml:"model_name"`
	ModelMaxLength int    `toml:"model_max_length"`
	CompletionURL  string `toml:"completion_url"`
	CompletionKey  string `toml:"completion_api_key"`
}

func Load() (*Config, error) {
	root := defaultRootDir()
	cfg := &Config{
		RootDir:        root,
		RecordingsDir:  filepath.Join(root, "recordings"),
		DBFilename:     DefaultDBFilename,
		WormholePath:   "wormhole",
		ModelName:      DefaultModelName,
		ModelMaxLength: DefaultModelMaxLength,
	}

	if configPath := configFilePath(); configPath != "" {
		var fc fileConfig
		if _, err := toml.DecodeFile(configPath, &fc); err == nil {
			if fc.RootDir != "" {
				cfg.RootDir = expandTilde(fc.RootDir)
				cfg.RecordingsDir = filepath.Join(cfg.RootDir, "recordings")
			}
			if fc.RecordingsDir != "" {
				cfg.RecordingsDir = expandTilde(fc.RecordingsDir)
			}
			if fc.DBFilename != "" {
				cfg.DBFilename = fc.DBFilename
			}
			if fc.WormholePath != "" {
				cfg.WormholePath = fc.WormholePath
			}
			if fc.ModelName != "" {
				cfg.ModelName = fc.ModelName
			}
			if fc.ModelMaxLength > 0 {
				cfg.ModelMaxLength = fc.ModelMaxLength
			}
			if fc.CompletionURL != "" {
				cfg.CompletionURL = fc.CompletionURL
			}
			cfg.CompletionKey = fc.CompletionKey
		}
	}

	applyEnvOverrides(cfg)

	// Ensure directories exist
	if err := os.MkdirAll(cfg.RootDir, 0o755); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.RecordingsDir, 0o755); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("OPENADAPT_ROOT_DIR"); v != "" {
		cfg.RootDir = expandTilde(v)
		cfg.RecordingsDir = filepath.Join(cfg.RootDir, "recordings")
	}
	if v := os.Getenv("OPENADAPT_RECORDINGS_DIR"); v != "" {
		cfg.RecordingsDir = expandTilde(v)
	}
	if v := os.Getenv("DB_FNAME"); v != "" {
		cfg.DBFilename = v
	}
	if v := os.Getenv("OPENADAPT_WORMHOLE_PATH"); v != "" {
		cfg.WormholePath = v
	}
	if v := os.Getenv("OPENADAPT_MODEL_NAME"); v != "" {
		cfg.ModelName = v
	}
	if v := os.Getenv("OPENADAPT_COMPLETION_URL"); v != "" {
		cfg.CompletionURL = v
	}
	if v := os.Getenv("OPENADAPT_COMPLETION_API_KEY"); v != "" {
		cfg.CompletionKey = v
	}
}

// DBPath returns the path of the currently active database.
func (c *Config) DBPath() string {
	return filepath.Join(c.RootDir, c.DBFilename)
}

// envFilePath returns the persisted-environment file next to the root
// database. DB_FNAME written here survives across invocations.
func (c *Config) envFilePath() string {
	return filepath.Join(c.RootDir, ".env")
}

// PersistEnv records key=value in the env file, replacing any existing
// value. An empty value removes the key.
func (c *Config) PersistEnv(key, value string) error {
	entries := map[string]string{}

	if data, err := os.ReadFile(c.envFilePath()); err == nil {
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			k, v, ok := strings.Cut(line, "=")
			if !ok {
				continue
			}
			entries[k] = v
		}
	}

	if value == "" {
		delete(entries, key)
	} else {
		entries[key] = value
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s=%s\n", k, entries[k])
	}

	if err := os.WriteFile(c.envFilePath(), []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("writing env file: %w", err)
	}
	return nil
}

func configFilePath() string {
	var configDir string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		configDir = filepath.Join(xdg, "openadapt")
	} else if home, err := os.UserHomeDir(); err == nil {
		configDir = filepath.Join(home, ".config", "openadapt")
	} else {
		return ""
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

func defaultRootDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".openadapt")
	}
	return filepath.Join(".", ".openadapt")
}

func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

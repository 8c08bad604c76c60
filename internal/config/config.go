package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// PHONEBOOK_LOG_LEVEL=debug.
const EnvPrefix = "PHONEBOOK"

// Config holds application configuration.
type Config struct {
	UI       UIConfig
	Contacts ContactsConfig
	Log      LogConfig
	Seed     []SeedContact
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title  string
	Accent string
}

// ContactsConfig holds registry settings.
type ContactsConfig struct {
	IDStrategy string `mapstructure:"id_strategy"`
}

// LogConfig holds logger settings. An empty File disables logging.
type LogConfig struct {
	Level string
	File  string
}

// SeedContact is a contact added to the registry at start-up.
type SeedContact struct {
	Name   string
	Number string
}

// DefaultPath is where Load looks when neither an explicit path nor
// PHONEBOOK_CONFIG is given.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "phonebook", "config.toml")
}

func defaultLogFile() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "state", "phonebook", "phonebook.log")
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		UI:       UIConfig{Title: "Phonebook", Accent: "#2874A6"},
		Contacts: ContactsConfig{IDStrategy: "uuid"},
		Log:      LogConfig{Level: "info", File: defaultLogFile()},
	}
}

// resolvePath picks the config file: explicit path, then PHONEBOOK_CONFIG,
// then the default location.
func resolvePath(path string) string {
	if path != "" {
		return path
	}
	if env := os.Getenv(EnvPrefix + "_CONFIG"); env != "" {
		return env
	}
	return DefaultPath()
}

// Load reads configuration from file and env. A missing file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("ui.title", def.UI.Title)
	v.SetDefault("ui.accent", def.UI.Accent)
	v.SetDefault("contacts.id_strategy", def.Contacts.IDStrategy)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.file", def.Log.File)

	v.SetConfigType("toml")
	v.SetConfigFile(resolvePath(path))

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Log.File = expandHome(c.Log.File)
	return c, nil
}

func expandHome(p string) string {
	if p == "~" {
		return os.Getenv("HOME")
	}
	if strings.HasPrefix(p, "~/") {
		return filepath.Join(os.Getenv("HOME"), p[2:])
	}
	return p
}

// Save writes cfg as TOML to path (or the resolved default), creating the
// config directory if needed. It refuses to overwrite an existing file
// unless force is set.
func Save(path string, cfg Config, force bool) (string, error) {
	path = resolvePath(path)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, fmt.Errorf("config %s already exists", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return path, fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.title", cfg.UI.Title)
	v.Set("ui.accent", cfg.UI.Accent)
	v.Set("contacts.id_strategy", cfg.Contacts.IDStrategy)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)
	if len(cfg.Seed) > 0 {
		seed := make([]map[string]any, 0, len(cfg.Seed))
		for _, s := range cfg.Seed {
			seed = append(seed, map[string]any{"name": s.Name, "number": s.Number})
		}
		v.Set("seed", seed)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return path, fmt.Errorf("write config: %w", err)
	}
	return path, nil
}

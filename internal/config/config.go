// ABOUTME: Client configuration: API base URL and local data directory.
// ABOUTME: Loaded via viper from a JSON config file with WP_ env overrides.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DefaultAPIURL is used when neither config file nor environment set one.
const DefaultAPIURL = "http://localhost:8000"

// Config stores client configuration.
type Config struct {
	// APIURL is the base URL of the WorkoutPlan backend.
	APIURL string `json:"api_url" mapstructure:"api_url"`

	// DataDir is the root directory for local data. The session store lives
	// at <data_dir>/session. Supports ~ expansion; defaults to the standard
	// XDG data directory.
	DataDir string `json:"data_dir,omitempty" mapstructure:"data_dir"`
}

// SessionDir returns the directory holding the session key/value store.
func (c *Config) SessionDir() string {
	return filepath.Join(ExpandPath(c.DataDir), "session")
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "workoutplan", "config.json")
}

// DataDir returns the default data directory.
func DataDir() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, _ := os.UserHomeDir()
		dataDir = filepath.Join(homeDir, ".local", "share")
	}
	return filepath.Join(dataDir, "workoutplan")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads config from the config file and environment. Environment
// variables use the WP_ prefix: WP_API_URL, WP_DATA_DIR.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("api_url", DefaultAPIURL)
	v.SetDefault("data_dir", DataDir())

	v.SetEnvPrefix("WP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := v.BindEnv("api_url"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("data_dir"); err != nil {
		return nil, err
	}

	v.SetConfigFile(GetConfigPath())
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/solforge/solforge/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys understood by the CLI.
const (
	KeyIDEPath          = "ide.path"
	KeyIDEPromptRetries = "ide.prompt_retries"
	KeyFramework        = "framework"
	KeyTimeout          = "timeout"
	KeyStrictReferences = "references.strict"
	KeyCatalogFile      = "catalog.file"
	KeyVerbosity        = "verbosity"
)

// Keys returns every key Set accepts.
func Keys() []string {
	return []string{
		KeyIDEPath, KeyIDEPromptRetries, KeyFramework, KeyTimeout,
		KeyStrictReferences, KeyCatalogFile, KeyVerbosity,
	}
}

// Built-in defaults, applied before the config file and environment.
const (
	DefaultPromptRetries = 1
	DefaultTimeout       = 10 * time.Minute
	DefaultVerbosity     = 1
)

// Dir returns the path to the config directory (~/.solforge/).
// SOLFORGE_CONFIG_DIR overrides it.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("config_dir")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyIDEPromptRetries, DefaultPromptRetries)
	viper.SetDefault(KeyTimeout, DefaultTimeout)
	viper.SetDefault(KeyStrictReferences, true)
	viper.SetDefault(KeyVerbosity, DefaultVerbosity)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// IDEPath returns the configured IDE executable, or "" when unset.
func IDEPath() string { return viper.GetString(KeyIDEPath) }

// Framework returns the configured default target framework, or "".
func Framework() string { return viper.GetString(KeyFramework) }

// CatalogFile returns the path of a catalog override file, or "".
func CatalogFile() string { return viper.GetString(KeyCatalogFile) }

// PromptRetries returns how many alternate IDE paths the prober may ask for.
func PromptRetries() int { return viper.GetInt(KeyIDEPromptRetries) }

// Timeout returns the per-invocation timeout. Zero disables it.
func Timeout() time.Duration { return viper.GetDuration(KeyTimeout) }

// StrictReferences reports whether reference wiring failures abort the run.
func StrictReferences() bool { return viper.GetBool(KeyStrictReferences) }

// Verbosity returns the default log verbosity.
func Verbosity() int { return viper.GetInt(KeyVerbosity) }

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !slices.Contains(Keys(), key) {
		return fmt.Errorf("unknown key %q (known keys: %s)", key, strings.Join(Keys(), ", "))
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

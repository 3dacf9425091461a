package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/fieldops/rollcall/pkg/constants"
	"github.com/fieldops/rollcall/pkg/errors"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Output  string

	// Config file
	ConfigFile string

	// Live-system connection
	APIKey  string
	BaseURL string

	// Matching configuration
	Threshold float64
	PageSize  int
	UserLists []int64

	// Logging configuration
	LogLevel  string
	LogFormat string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (handled by cobra)
//  2. Environment variables (ROLLCALL_ prefix)
//  3. .env files
//  4. Config file (~/.rollcall.yaml or ./.rollcall.yaml)
//  5. Defaults
//
// An explicit configFile path replaces the standard search locations and
// must exist; pass "" to use the search.
func LoadConfig(configFile string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	// A fresh Viper instance per load; the app reloads config when an
	// explicit --config is parsed, and the config file choice must not
	// leak from one load into the next.
	v := viper.New()

	// Set up Viper for environment variables
	v.SetEnvPrefix(constants.DefaultEnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// Defaults keep the matcher usable with an empty config file
	v.SetDefault("threshold", constants.DefaultMatchThreshold)
	v.SetDefault("page_size", constants.DefaultPageSize)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapIO("read", configFile, err)
		}
	} else {
		// Search for config in standard locations
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(constants.DefaultConfigName)

		// Read config file (ignore error if not found)
		_ = v.ReadInConfig()
	}

	// Build config from viper
	config := &Config{
		// Global flags (may be overridden by cobra flags later)
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no-color"),
		Output:  v.GetString("output"),

		// Config file
		ConfigFile: v.ConfigFileUsed(),

		// Live-system connection
		APIKey:  v.GetString("api_key"),
		BaseURL: v.GetString("base_url"),

		// Matching configuration
		Threshold: v.GetFloat64("threshold"),
		PageSize:  v.GetInt("page_size"),
		UserLists: toInt64s(v.GetIntSlice("user_list_ids")),

		// Logging configuration
		LogLevel:  getEnvOrDefault("LOG_LEVEL", ""),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, output, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if output != "" {
		c.Output = output
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
func loadEnvFiles() {
	// Try to load .env files in order of precedence
	// .env.local overrides .env
	envFiles := []string{
		".env",
		".env.local",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// toInt64s widens viper's int slice to the ID type the API uses.
func toInt64s(values []int) []int64 {
	if len(values) == 0 {
		return nil
	}
	out := make([]int64, len(values))
	for i, v := range values {
		out[i] = int64(v)
	}
	return out
}

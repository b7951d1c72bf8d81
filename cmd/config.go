package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/webwinghq/webwing/internal/logger"
	"github.com/webwinghq/webwing/models"
	"github.com/webwinghq/webwing/parallel"
	"github.com/webwinghq/webwing/types"
)

const (
	configName = ".webwing"
	envPrefix  = "WEBWING"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// InitConfig reads in config file and ENV variables if set.
func InitConfig() {
	// Load .env file first if present. Missing files are fine.
	_ = godotenv.Load()

	// Environment variable handling must be set up BEFORE reading the
	// config file so env vars can influence loading.
	viper.SetEnvPrefix(envPrefix) // e.g. WEBWING_VERBOSE
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// The credential is also accepted under the name the upstream SDKs
	// use, so one exported variable serves every client.
	_ = viper.BindEnv("parallel.apiKey", "WEBWING_PARALLEL_APIKEY", "PARALLEL_API_KEY")

	cfgFileFlag := viper.GetString("config")
	if cfgFileFlag != "" {
		viper.SetConfigFile(cfgFileFlag)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(".")        // ./.webwing.yaml
		viper.AddConfigPath(home)       // $HOME/.webwing.yaml
		viper.SetConfigName(configName)
	}

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if cfgFileFlag != "" {
				fmt.Fprintln(os.Stderr, "Error: Specified config file not found:", cfgFileFlag)
			} else if viper.GetBool("verbose") {
				fmt.Fprintln(os.Stderr, "No config file found. Using defaults and environment variables.")
			}
		} else {
			fmt.Fprintln(os.Stderr, "Error reading config file:", viper.ConfigFileUsed(), "-", err)
		}
	}

	// Set default values
	viper.SetDefault("parallel.apiKey", "")
	viper.SetDefault("parallel.baseURL", parallel.DefaultBaseURL)
	viper.SetDefault("parallel.timeoutSeconds", 30)
	viper.SetDefault("parallel.pollIntervalSeconds", 2)
	viper.SetDefault("parallel.waitTimeoutSeconds", 300)

	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.enableCORS", true)

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")

	// After all sources are configured, unmarshal into GlobalAppConfig
	if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error unmarshaling config: %s\n", err)
		os.Exit(1)
	}

	if err := models.ValidateStruct(GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration validation error: %s\n", err)
		os.Exit(1)
	}
}

// GetConfig returns a pointer to the global types.AppConfig instance.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}

// newParallelClient builds a remote client from the active
// configuration. Callers get a *types.ConfigurationError when the
// credential is missing.
func newParallelClient() (*parallel.Client, error) {
	cfg := GetConfig()
	opts := []parallel.Option{}
	if cfg.Parallel.BaseURL != "" {
		opts = append(opts, parallel.WithBaseURL(cfg.Parallel.BaseURL))
	}
	if cfg.Parallel.TimeoutSeconds > 0 {
		opts = append(opts, parallel.WithTimeout(time.Duration(cfg.Parallel.TimeoutSeconds)*time.Second))
	}
	return parallel.NewClient(cfg.Parallel.APIKey, opts...)
}

// waitOptionsFromConfig derives the polling budget for blocking waits.
func waitOptionsFromConfig() parallel.WaitOptions {
	cfg := GetConfig()
	opts := parallel.WaitOptions{}
	if cfg.Parallel.PollIntervalSeconds > 0 {
		opts.PollInterval = time.Duration(cfg.Parallel.PollIntervalSeconds) * time.Second
	}
	if cfg.Parallel.WaitTimeoutSeconds > 0 {
		opts.Timeout = time.Duration(cfg.Parallel.WaitTimeoutSeconds) * time.Second
	}
	return opts
}

// newLogger builds the structured logger from the active configuration.
func newLogger() *logger.Logger {
	cfg := GetConfig()
	level := cfg.Log.Level
	if cfg.Verbose {
		level = "debug"
	}
	return logger.New(logger.Config{Level: level, Format: cfg.Log.Format})
}

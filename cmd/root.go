package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "gradalyze"
)

type Config struct {
	Database *DatabaseConfig `mapstructure:"database"`
	Queue    *QueueConfig    `mapstructure:"queue"`
	Storage  *StorageConfig  `mapstructure:"storage"`
	AI       *AIConfig       `mapstructure:"ai"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type QueueConfig struct {
	URL     string `mapstructure:"url"`
	Workers int    `mapstructure:"workers"`
}

type StorageConfig struct {
	AccountID           string `mapstructure:"account-id"`
	Bucket              string `mapstructure:"bucket"`
	AccessKeyID         string `mapstructure:"access-key-id"`
	SecretAccessKey     string `mapstructure:"secret-access-key"`
	SecretAccessKeyFile string `mapstructure:"secret-access-key-file"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "gradalyze analyzes student transcripts into learning archetypes and career recommendations",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	envBindings := map[string]string{
		"database.url":                   "DATABASE_URL",
		"queue.url":                      "RABBITMQ_URL",
		"storage.account-id":             "R2_ACCOUNT_ID",
		"storage.bucket":                 "R2_BUCKET",
		"storage.access-key-id":          "R2_ACCESS_KEY_ID",
		"storage.secret-access-key-file": "R2_SECRET_ACCESS_KEY_FILE",
		"ai.gemini.api-key-file":         "GEMINI_API_KEY_FILE",
	}
	for key, env := range envBindings {
		if err := viper.BindEnv(key, env); err != nil {
			log.Fatalf("binding %s environment variable: %v", env, err)
		}
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is gradalyze.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Only the worker and persistence paths need a config file.
	if runCmd.CalledAs() == "" && analyzeCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		// analyze works configless from a local file; the worker cannot.
		if runCmd.CalledAs() != "" {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

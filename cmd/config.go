package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/streamforge/streamforge/internal/config"
)

const (
	configName = "streamforge"
	envPrefix  = "STREAMFORGE"
)

// InitConfig reads in config file and ENV variables if set.
func InitConfig() {
	// Load .env file first if present. Missing .env is fine.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix) // e.g., STREAMFORGE_PORT
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	config.SetDefaults(viper.GetViper())

	cfgFileFlag := viper.GetString("config")
	if cfgFileFlag != "" {
		viper.SetConfigFile(cfgFileFlag)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.SetConfigName(configName)
	}

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if cfgFileFlag != "" {
				fmt.Fprintln(os.Stderr, "Error: specified config file not found:", cfgFileFlag)
				os.Exit(1)
			}
			// No config file found by search paths, which is fine.
		} else {
			fmt.Fprintln(os.Stderr, "Error reading config file:", viper.ConfigFileUsed(), "-", err)
			os.Exit(1)
		}
	}

	// Well-known provider env vars work without the STREAMFORGE_ prefix.
	if viper.GetString("planner.apiKey") == "" {
		switch viper.GetString("planner.provider") {
		case "openai":
			viper.Set("planner.apiKey", os.Getenv("OPENAI_API_KEY"))
		case "anthropic":
			viper.Set("planner.apiKey", os.Getenv("ANTHROPIC_API_KEY"))
		}
	}
}

// LoadSettings unmarshals the merged configuration.
func LoadSettings() (*config.Settings, error) {
	return config.Load(viper.GetViper())
}

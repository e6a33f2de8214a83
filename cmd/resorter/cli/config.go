package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	envFiles   = []string{".env", ".env.local"}
	configDirs = []string{".", "./config", "/etc/resorter", "$HOME/.resorter"}
)

func initConfig(path string) error {
	// .env files in the working directory are loaded first
	loadEnvFiles(".")

	if path != "" {
		viper.SetConfigFile(path)
		loadEnvFiles(filepath.Dir(path))
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		for _, dir := range configDirs {
			viper.AddConfigPath(dir)
		}
		loadEnvFiles(configDirs...)
	}

	// RESORTER_METADATA_TYPE maps to metadata.type
	viper.SetEnvPrefix("RESORTER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// loadEnvFiles loads every .env file found in dirs, missing files are ignored
func loadEnvFiles(dirs ...string) {
	for _, dir := range dirs {
		for _, name := range envFiles {
			godotenv.Load(filepath.Join(dir, name))
		}
	}
}

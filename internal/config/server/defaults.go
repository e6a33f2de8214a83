package server

import (
	"github.com/mwantia/resorter/pkg/classify"
	"github.com/spf13/viper"
)

func GetServerDefault() BaseServerConfig {
	return BaseServerConfig{
		ShutdownTimeout: "10s",

		Log: LogServerConfig{
			Level:      "INFO",
			TimeFormat: "2006-01-02 15:04:05",
			File:       "",
			NoColor:    false,
			JSON:       false,
			NoTerminal: false,
			SQL:        false,
			Rotation: LogServerRotationConfig{
				MaxSize:    128,
				MaxBackups: 5,
				MaxAge:     16,
				Compress:   false,
			},
		},

		Metadata: MetadataServerConfig{
			Type: MetadataTypeSQLite,
			SQLite: MetadataSQLiteConfig{
				Path: "resumes.db",
			},
			Postgres: MetadataPostgresConfig{
				Host:         "localhost",
				Port:         5432,
				Name:         "resorter",
				User:         "resorter",
				SSLMode:      "disable",
				MaxOpenConns: 10,
			},
		},

		Intake: IntakeServerConfig{
			Dir:       "resumes",
			SortedDir: "resumes/sorted",
		},

		Classify: ClassifyServerConfig{
			Threshold: classify.DefaultThreshold,
			Keywords:  classify.DefaultKeywords,
		},

		HTTP: HTTPServerConfig{
			Address: "127.0.0.1:8080",
		},
	}
}

func setDefaults() {
	defaults := GetServerDefault()

	viper.SetDefault("shutdown_timeout", defaults.ShutdownTimeout)

	viper.SetDefault("log.level", defaults.Log.Level)
	viper.SetDefault("log.time_format", defaults.Log.TimeFormat)
	viper.SetDefault("log.file", defaults.Log.File)
	viper.SetDefault("log.no_color", defaults.Log.NoColor)
	viper.SetDefault("log.json", defaults.Log.JSON)
	viper.SetDefault("log.no_terminal", defaults.Log.NoTerminal)
	viper.SetDefault("log.sql", defaults.Log.SQL)
	viper.SetDefault("log.rotation.max_size", defaults.Log.Rotation.MaxSize)
	viper.SetDefault("log.rotation.max_backups", defaults.Log.Rotation.MaxBackups)
	viper.SetDefault("log.rotation.max_age", defaults.Log.Rotation.MaxAge)
	viper.SetDefault("log.rotation.compress", defaults.Log.Rotation.Compress)

	viper.SetDefault("metadata.type", defaults.Metadata.Type)
	viper.SetDefault("metadata.sqlite.path", defaults.Metadata.SQLite.Path)
	viper.SetDefault("metadata.postgres.host", defaults.Metadata.Postgres.Host)
	viper.SetDefault("metadata.postgres.port", defaults.Metadata.Postgres.Port)
	viper.SetDefault("metadata.postgres.name", defaults.Metadata.Postgres.Name)
	viper.SetDefault("metadata.postgres.user", defaults.Metadata.Postgres.User)
	viper.SetDefault("metadata.postgres.password", defaults.Metadata.Postgres.Password)
	viper.SetDefault("metadata.postgres.sslmode", defaults.Metadata.Postgres.SSLMode)
	viper.SetDefault("metadata.postgres.max_open_conns", defaults.Metadata.Postgres.MaxOpenConns)

	viper.SetDefault("intake.dir", defaults.Intake.Dir)
	viper.SetDefault("intake.sorted_dir", defaults.Intake.SortedDir)

	viper.SetDefault("extract.reference_year", defaults.Extract.ReferenceYear)

	viper.SetDefault("classify.threshold", defaults.Classify.Threshold)
	viper.SetDefault("classify.keywords", defaults.Classify.Keywords)

	viper.SetDefault("http.address", defaults.HTTP.Address)
}

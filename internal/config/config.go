package config

// Config is the root CLI configuration, read from environment variables only.
type Config struct {
	API APIConfig
	Log LogConfig
}

// APIConfig holds access settings for the words service.
type APIConfig struct {
	AccessToken string `env:"WORDS_TOKEN" env-required:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL"  env-default:"error"`
	Format string `env:"LOG_FORMAT" env-default:"text"`
}

package configs

import (
	_ "embed"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ApplicationYAML is the default properties file, used when PROPERTIES_FILE_PATH is not set.
//
//go:embed application.yml
var ApplicationYAML []byte

// MessagesYAML is the default message catalog, used when MESSAGES_FILE_PATH is not set.
//
//go:embed messages.yml
var MessagesYAML []byte

type EnvConfig struct {
	ApplicationName string
	WeatherAPIKey   string
}

var Env *EnvConfig

func init() {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "weather-app"),
		WeatherAPIKey:   viper.GetString("WEATHER_API_KEY"),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}

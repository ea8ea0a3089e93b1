package resource

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"

	"weather-app/configs"
)

var (
	properties = viper.New()
	envPattern = regexp.MustCompile(`^\$\{([^:}]+)(?::([^}]*))?}$`)
)

// init loads application properties, from PROPERTIES_FILE_PATH when set, otherwise from the embedded defaults
func init() {
	var err error
	if path, ok := os.LookupEnv("PROPERTIES_FILE_PATH"); ok {
		err = Init(path)
	} else {
		err = Load(configs.ApplicationYAML)
	}
	if err != nil {
		log.Fatalf("Fail to read properties: %v", err)
	}
}

// Init replaces the loaded properties with the YAML file at filepath.
func Init(filepath string) error {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read %s: %w", filepath, err)
	}
	apply(v)
	return nil
}

// Load replaces the loaded properties with the given YAML document.
func Load(content []byte) error {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return fmt.Errorf("parse properties: %w", err)
	}
	apply(v)
	return nil
}

// Set overrides a single property, mostly useful in tests.
func Set(key string, value any) {
	properties.Set(key, value)
}

func apply(v *viper.Viper) {
	resolved := viper.New()
	for _, key := range v.AllKeys() {
		value := v.Get(key)
		if s, ok := value.(string); ok {
			value = resolveEnvVariable(s)
		}
		resolved.Set(key, value)
	}
	properties = resolved
}

// resolveEnvVariable expands a ${NAME:default} placeholder, other values are returned untouched
func resolveEnvVariable(value string) any {
	matches := envPattern.FindStringSubmatch(value)
	if matches == nil {
		return value
	}

	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue
	}
	return matches[2]
}

func Get(key string) any {
	return properties.Get(key)
}

func GetString(key string) string {
	return properties.GetString(key)
}

func GetBool(key string) bool {
	return properties.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return properties.GetDuration(key)
}

func GetInt(key string) int {
	return properties.GetInt(key)
}

func GetFloat64(key string) float64 {
	return properties.GetFloat64(key)
}

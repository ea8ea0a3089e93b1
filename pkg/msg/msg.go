package msg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"weather-app/configs"
)

var messages map[string]string

// init loads messages from MESSAGES_FILE_PATH when set, otherwise from the embedded catalog
func init() {
	var err error
	if path, ok := os.LookupEnv("MESSAGES_FILE_PATH"); ok {
		err = Init(path)
	} else {
		err = Load(configs.MessagesYAML)
	}
	if err != nil {
		log.Fatalf("Fail to read messages: %v", err)
	}
}

// Init replaces the catalog with the YAML file at filepath.
func Init(filepath string) error {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read %s: %w", filepath, err)
	}
	messages = flatten(v)
	return nil
}

// Load replaces the catalog with the given YAML document.
func Load(content []byte) error {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return fmt.Errorf("parse messages: %w", err)
	}
	messages = flatten(v)
	return nil
}

func flatten(v *viper.Viper) map[string]string {
	result := make(map[string]string)
	for _, key := range v.AllKeys() {
		value, ok := v.Get(key).(string)
		if !ok {
			log.Printf("Ignoring key '%s' with unsupported type.", key)
			continue
		}
		result[key] = value
	}
	return result
}

// GetMessage returns the message for key with {n} placeholders replaced by args
func GetMessage(key string, args ...interface{}) string {
	msg, exists := messages[key]
	if !exists {
		return fmt.Sprintf("Message not found: %s", key)
	}

	if len(args) == 0 {
		return msg
	}

	// one pass, so placeholders inside an argument are left as they are
	pairs := make([]string, 0, 2*len(args))
	for i, arg := range args {
		pairs = append(pairs, fmt.Sprintf("{%d}", i), argToString(arg))
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

func argToString(arg interface{}) string {
	if arg == nil {
		return ""
	}
	if isPrimitive(arg) {
		return primitiveToString(arg)
	}
	if s, ok := arg.(fmt.Stringer); ok {
		return s.String()
	}
	if err, ok := arg.(error); ok {
		return err.Error()
	}
	jsonBytes, err := json.Marshal(arg)
	if err != nil {
		return fmt.Sprintf("%v", arg)
	}
	return string(jsonBytes)
}

func isPrimitive(value interface{}) bool {
	switch reflect.TypeOf(value).Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.String:
		return true
	default:
		return false
	}
}

// primitiveToString formats numbers the shortest way, so 51.52 stays "51.52"
func primitiveToString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", value)
	}
}

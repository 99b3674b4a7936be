package config

import (
	"fmt"
	"reflect"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration.
type Config struct {
	EnvVars   EnvVars           `json:"env"`
	Summaries *SummaryTemplates `json:"-"`
}

// EnvVars holds environment variables required by the application.
// Fields tagged `optional:"true"` are skipped by CheckConfigEnvFields.
type EnvVars struct {
	Port             string `env:"PORT" envDefault:"8080"`
	RecipeAPIBaseURL string `env:"RECIPE_API_BASE_URL"`
	RecipeAPIKey     string `env:"RECIPE_API_KEY" optional:"true"`
	IDHeader         string `env:"ID_HEADER"`
	DefaultLanguage  string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
}

// LoadConfig parses environment variables into the Config struct.
func LoadConfig() (*Config, error) {
	var config Config
	if err := env.Parse(&config.EnvVars); err != nil {
		return nil, err
	}
	return &config, nil
}

// CheckConfigEnvFields validates that all required EnvVars fields are set.
func (c *Config) CheckConfigEnvFields() error {
	return checkFieldsRecursive(reflect.ValueOf(c.EnvVars))
}

func checkFieldsRecursive(v reflect.Value) error {
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := v.Type().Field(i)
		if fieldType.Tag.Get("optional") == "true" {
			continue
		}
		if isZeroValue(field) {
			return fmt.Errorf("$%s must be set", fieldType.Name)
		}
		if field.Kind() == reflect.Struct {
			if err := checkFieldsRecursive(field); err != nil {
				return err
			}
		}
	}
	return nil
}

func isZeroValue(v reflect.Value) bool {
	return v.Interface() == reflect.Zero(v.Type()).Interface()
}

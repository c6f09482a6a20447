package logging

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate
var once sync.Once

func validateConfig(cfg *Config) error {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("logging configuration is invalid: %w", err)
	}

	return nil
}

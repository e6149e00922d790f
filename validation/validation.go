package validation

import (
	"log"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

const ClockLayout = "15:04"

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns the shared validator with the custom rules registered.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		if err := validate.RegisterValidation("hhmm", IsClock); err != nil {
			log.Panicln("Error registering hhmm validation: ", err)
		}
	})
	return validate
}

// IsClock accepts a 24h "HH:MM" wall-clock time.
func IsClock(fl validator.FieldLevel) bool {
	_, err := ParseClock(fl.Field().String())
	return err == nil
}

func ParseClock(s string) (time.Time, error) {
	return time.Parse(ClockLayout, s)
}

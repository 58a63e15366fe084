package handler

import (
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding tags to Gin's validator. It
// panics if they cannot be installed, so a misconfigured engine fails at
// startup rather than on every request:
//
//	isodate  a calendar date in YYYY-MM-DD form
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic(fmt.Sprintf("gin validator engine is %T, want *validator.Validate", binding.Validator.Engine()))
		}
		if err := v.RegisterValidation("isodate", isoDate); err != nil {
			panic(fmt.Sprintf("register isodate validator: %v", err))
		}
	})
}

func isoDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.DateOnly, fl.Field().String())
	return err == nil
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, s, time.UTC)
}

package dto

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/daytrackapp/daytrack-backend/internal/core/domain"
)

// tradeDate accepts only plain YYYY-MM-DD calendar dates. Timestamps are
// rejected on purpose: a date with a time component would reintroduce the
// timezone drift the engine's string comparison exists to prevent.
func tradeDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) != len(domain.DateLayout) {
		return false
	}
	_, err := time.Parse(domain.DateLayout, value)
	return err == nil
}

// RegisterCustomValidators attaches the custom binding validators to gin's
// validator engine. Called once from main before routes are served.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("tradedate", tradeDate)
	}
}

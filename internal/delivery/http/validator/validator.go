// Package validator adapts go-playground/validator to echo's Validator
// contract so handlers can call c.Validate on bound request bodies.
package validator

import (
	"net/http"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator wraps a validator instance for echo.
type CustomValidator struct {
	validate *playground.Validate
}

// New creates the echo validator.
func New() *CustomValidator {
	return &CustomValidator{validate: playground.New()}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}

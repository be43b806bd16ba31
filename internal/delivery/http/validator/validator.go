// Package validator adapts go-playground/validator to echo.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator
type CustomValidator struct {
	validator *validator.Validate
}

// New creates a validator for request bodies bound by echo
func New() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate runs struct tag validation and reports failures as 400
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}

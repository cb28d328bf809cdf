package validators

import (
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sanmarcos/conecta/backend/internal/seed"
)

// CustomValidator plugs go-playground/validator into echo
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a validator with the forum's custom tags:
// trimmed_min=N, category and faculty
func NewValidator() *CustomValidator {
	v := validator.New()

	categories := make(map[string]struct{})
	for _, c := range seed.Categories() {
		categories[string(c.ID)] = struct{}{}
	}
	faculties := make(map[string]struct{})
	for _, f := range seed.Faculties() {
		faculties[string(f.ID)] = struct{}{}
	}

	// registration only fails on empty tags or nil funcs
	_ = v.RegisterValidation("trimmed_min", trimmedMin)
	_ = v.RegisterValidation("category", memberOf(categories))
	_ = v.RegisterValidation("faculty", memberOf(faculties))

	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// trimmedMin counts runes after trimming surrounding whitespace
func trimmedMin(fl validator.FieldLevel) bool {
	min, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= min
}

func memberOf(set map[string]struct{}) validator.Func {
	return func(fl validator.FieldLevel) bool {
		_, ok := set[fl.Field().String()]
		return ok
	}
}


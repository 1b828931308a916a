package prediction

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/yanqian/astropredict-web/pkg/errors"
)

// Validation categories shown to the user.
const (
	CategoryMissingField       = "missing_field"
	CategoryInvalidCoordinates = "invalid_coordinates"
)

// Genders accepted by the prediction backend.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

const (
	msgMissingField       = "Please fill all required fields"
	msgInvalidCoordinates = "Invalid coordinates. Latitude: -90 to 90, Longitude: -180 to 180"
	msgMissingSigns       = "Please select both zodiac signs"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationError blocks a submission before any backend call.
type ValidationError struct {
	Category string
	Field    string
	Message  string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Category
	}
	return e.Category + ": " + e.Field
}

func newValidationError(category, field string) error {
	msg := msgMissingField
	if category == CategoryInvalidCoordinates {
		msg = msgInvalidCoordinates
	}
	return apperrors.Wrap("invalid_input", msg, &ValidationError{Category: category, Field: field, Message: msg})
}

// ValidationCategory extracts the category of a validation failure, or "".
func ValidationCategory(err error) string {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Category
	}
	return ""
}

// ParseForm converts raw form state into a validated BirthInput.
func ParseForm(form Form) (BirthInput, error) {
	in := BirthInput{
		Name:      strings.TrimSpace(form.Name),
		BirthDate: strings.TrimSpace(form.BirthDate),
		BirthTime: strings.TrimSpace(form.BirthTime),
		Gender:    canonicalGender(form.Gender),
	}

	lat, latErr := parseCoordinate(form.Latitude, "latitude")
	lon, lonErr := parseCoordinate(form.Longitude, "longitude")
	in.Latitude = lat
	in.Longitude = lon

	// Unparsed coordinates are zero here, so only required-field errors can surface first.
	inputErr := ValidateInput(in)
	if ValidationCategory(inputErr) == CategoryMissingField {
		return BirthInput{}, inputErr
	}
	coordErrs := []error{latErr, lonErr}
	for _, err := range coordErrs {
		if ValidationCategory(err) == CategoryMissingField {
			return BirthInput{}, err
		}
	}
	for _, err := range coordErrs {
		if err != nil {
			return BirthInput{}, err
		}
	}
	if inputErr != nil {
		return BirthInput{}, inputErr
	}
	return in, nil
}

// canonicalGender maps any casing of a known gender to the backend spelling.
func canonicalGender(raw string) string {
	raw = strings.TrimSpace(raw)
	for _, g := range []string{GenderMale, GenderFemale, GenderOther} {
		if strings.EqualFold(raw, g) {
			return g
		}
	}
	return raw
}

func parseCoordinate(raw, field string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, newValidationError(CategoryMissingField, field)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, newValidationError(CategoryInvalidCoordinates, field)
	}
	return v, nil
}

// ValidateInput checks presence and coordinate ranges.
// Missing fields are reported before coordinate problems.
func ValidateInput(in BirthInput) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.Wrap("invalid_input", msgMissingField, err)
	}
	var coordinateField string
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return newValidationError(CategoryMissingField, fe.Field())
		}
		if coordinateField == "" {
			coordinateField = fe.Field()
		}
	}
	return newValidationError(CategoryInvalidCoordinates, coordinateField)
}

func validateSigns(form CompatibilityForm) (CompatibilityForm, error) {
	out := CompatibilityForm{
		Sign1: strings.TrimSpace(form.Sign1),
		Sign2: strings.TrimSpace(form.Sign2),
	}
	if out.Sign1 == "" || out.Sign2 == "" {
		return out, apperrors.Wrap("invalid_input", msgMissingSigns, &ValidationError{Category: CategoryMissingField, Message: msgMissingSigns})
	}
	return out, nil
}

package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/answerking/answerking-api/pkg/httpx"
)

// MaxNumber is the upper bound for prices, stock and calories.
const MaxNumber = 2147483647

var (
	menuNameRe = regexp.MustCompile(`^[a-zA-Z !]+$`)
	menuTextRe = regexp.MustCompile(`^[a-zA-Z .!,#]+$`)
	addressRe  = regexp.MustCompile(`^[a-zA-Z0-9 ,-]+$`)
	spaceRunRe = regexp.MustCompile(` {2,}`)

	maxMoney = decimal.NewFromInt(MaxNumber)
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]

		// ignore unexported or explicitly ignored
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Money fields are validated on their canonical string form.
	validate.RegisterCustomTypeFunc(func(v reflect.Value) any {
		if d, ok := v.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	mustRegister("menuname", matches(menuNameRe))
	mustRegister("menutext", matches(menuTextRe))
	mustRegister("address", matches(addressRe))
	mustRegister("money", isMoney)
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Errorf("register %s validation: %w", tag, err))
	}
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// isMoney accepts decimals in [0, MaxNumber] with at most two fractional digits.
func isMoney(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return !d.IsNegative() && d.LessThanOrEqual(maxMoney) && d.Equal(d.Truncate(2))
}

// CompressSpaces trims surrounding whitespace and collapses runs of spaces
// into one. Tabs and newlines inside s are kept for the character rules to reject.
func CompressSpaces(s string) string {
	return spaceRunRe.ReplaceAllString(strings.TrimSpace(s), " ")
}

// Validate runs struct-level validation using go-playground/validator tags.
func Validate(s any) error {
	return validate.Struct(s)
}

// FormatValidationErrors converts validator.ValidationErrors into a map of
// field name → human-readable message.
func FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return errs
	}
	for _, e := range ve {
		errs[fieldPath(e)] = formatFieldError(e)
	}
	return errs
}

// fieldPath drops the top-level struct name: "CreateOrderRequest.order_items[0].id" → "order_items[0].id".
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return fmt.Sprintf("Minimum length is %s", e.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", e.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", e.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", e.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", e.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", e.Param())
	case "unique":
		return "Must not contain duplicates"
	case "menuname":
		return "Must contain only letters, spaces and !"
	case "menutext":
		return "Must contain only letters, spaces and .!,#"
	case "address":
		return "Must contain only letters, digits, spaces and ,-"
	case "money":
		return fmt.Sprintf("Must be a decimal between 0 and %d with at most 2 decimal places", MaxNumber)
	default:
		return fmt.Sprintf("Validation failed on '%s'", e.Tag())
	}
}

// failureDetails names the operation that was rejected, keyed by HTTP method.
func failureDetails(method string) string {
	switch method {
	case http.MethodPost:
		return "Object could not be created"
	case http.MethodPut, http.MethodPatch:
		return "Object could not be updated"
	default:
		return "Object could not be processed"
	}
}

// ValidateRequest decodes the JSON request body into T, validates it, and
// writes an error envelope if either step fails.
// Returns (parsedStruct, true) on success or (nil, false) on failure.
//
//   - malformed JSON       → 400 "Failed data validation"
//   - body over the limit  → 413
//   - field rule violation → 400 "Request failed" plus per-field messages
func ValidateRequest[T any](w http.ResponseWriter, r *http.Request) (*T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpx.JSONError(w, http.StatusRequestEntityTooLarge, httpx.MessageRequestFailed, "Request body too large")
			return nil, false
		}
		httpx.JSONError(w, http.StatusBadRequest, httpx.MessageValidationFailed, "Invalid JSON in body. "+jsonProblem(err))
		return nil, false
	}
	if err := Validate(&req); err != nil {
		httpx.JSONFieldErrors(w, http.StatusBadRequest, httpx.MessageRequestFailed,
			failureDetails(r.Method), FormatValidationErrors(err))
		return nil, false
	}
	return &req, true
}

func jsonProblem(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("Field %q must be %s", typeErr.Field, typeErr.Type)
	}
	return "Expecting value"
}

package validation

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	stockSymbolPattern = regexp.MustCompile(`^\s*[A-Za-z0-9][A-Za-z0-9.\-^=]{0,19}\s*$`)
	ownerIDPattern     = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.@\-]{0,99}$`)
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	// decimal fields are validated as float64
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	_ = v.RegisterValidation("money_amount", validateMoneyAmount)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("percentage", validatePercentage)
	_ = v.RegisterValidation("stock_symbol", validateStockSymbol)
	_ = v.RegisterValidation("owner_id", validateOwnerID)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a request struct
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// Var validates a single value against a tag
func (v *Validator) Var(field interface{}, tag string) error {
	return v.validate.Var(field, tag)
}

// FormatErrors turns a validation error into one "field: rule" detail per
// failed field. Other errors are returned as a single detail.
func FormatErrors(err error) []string {
	var fieldErrors validator.ValidationErrors
	if !stderrors.As(err, &fieldErrors) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		if fe.Param() != "" {
			details = append(details, fmt.Sprintf("%s: failed %s=%s", field, fe.Tag(), fe.Param()))
			continue
		}
		details = append(details, fmt.Sprintf("%s: failed %s", field, fe.Tag()))
	}
	return details
}

func decimalValue(field reflect.Value) interface{} {
	d, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}
	f, _ := d.Float64()
	return f
}

// validateMoneyAmount validates that an amount is positive and has at most 2 decimal places
func validateMoneyAmount(fl validator.FieldLevel) bool {
	var amount float64
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		amount = fl.Field().Float()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		amount = float64(fl.Field().Int())
	default:
		return false
	}

	if amount <= 0 {
		return false
	}

	amountStr := fmt.Sprintf("%.10f", amount)
	parts := strings.Split(amountStr, ".")
	if len(parts) > 1 {
		fraction := strings.TrimRight(parts[1], "0")
		if len(fraction) > 2 {
			return false
		}
	}

	return true
}

// validatePositiveAmount validates that an amount is greater than 0
func validatePositiveAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() > 0
	default:
		return false
	}
}

// validatePercentage accepts values in [0, 100]
func validatePercentage(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		p := fl.Field().Int()
		return p >= 0 && p <= 100
	case reflect.Float32, reflect.Float64:
		p := fl.Field().Float()
		return p >= 0 && p <= 100
	default:
		return false
	}
}

// validateStockSymbol accepts ticker symbols like TSLA, BRK.B or ^GSPC
func validateStockSymbol(fl validator.FieldLevel) bool {
	symbol := fl.Field().String()
	if strings.TrimSpace(symbol) == "" {
		return false
	}
	return stockSymbolPattern.MatchString(symbol)
}

// validateOwnerID validates the owner identifier sent by clients
func validateOwnerID(fl validator.FieldLevel) bool {
	return ownerIDPattern.MatchString(fl.Field().String())
}

// Package retirement holds the deterministic planning arithmetic: portfolio
// growth, safe withdrawal, Social Security claiming adjustments, readiness
// scoring, rule-based recommendations and Roth conversion comparison.
//
// Everything in this package is pure. Callers validate input with Validate
// before projecting; Project itself never fails for validated input.
package retirement

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ScenarioInput is the flat record a projection is computed from. Every
// money field is capped at MaxAmount so projections stay finite and fit the
// whole-dollar columns.
type ScenarioInput struct {
	CurrentAge              int          `json:"currentAge" validate:"gte=18,lte=100"`
	RetirementAge           int          `json:"retirementAge" validate:"gtfield=CurrentAge,lte=100"`
	LifeExpectancy          int          `json:"lifeExpectancy,omitempty" validate:"omitempty,gtfield=RetirementAge,lte=120"` // 0 means DefaultTerminalAge
	CurrentSavings          float64      `json:"currentSavings" validate:"gte=0,lte=1000000000000"`
	MonthlyExpenses         float64      `json:"monthlyExpenses" validate:"gte=0,lte=1000000000000"`
	SocialSecurityAge       int          `json:"socialSecurityAge" validate:"gte=62,lte=70"`
	EstimatedSocialSecurity float64      `json:"estimatedSocialSecurity" validate:"gte=0,lte=1000000000000"` // monthly, at full retirement age
	Spouse                  *SpouseInput `json:"spouse,omitempty" validate:"omitempty"`
}

// SpouseInput mirrors the primary Social Security fields for a spouse.
// Age and RetirementAge are carried for display and prompts only.
type SpouseInput struct {
	Age               int     `json:"age,omitempty" validate:"omitempty,gte=18,lte=100"`
	RetirementAge     int     `json:"retirementAge,omitempty" validate:"omitempty,lte=100"`
	SocialSecurityAge int     `json:"socialSecurityAge" validate:"gte=62,lte=70"`
	SocialSecurity    float64 `json:"socialSecurity" validate:"gte=0,lte=1000000000000"`
}

// RothInput describes a single Roth conversion to compare.
// CurrentAge, TraditionalBalance and ConversionYear are recorded but do not
// enter the comparison.
type RothInput struct {
	CurrentAge           int     `json:"currentAge" validate:"gte=18,lte=100"`
	TraditionalBalance   float64 `json:"traditionalIraBalance" validate:"gte=0,lte=1000000000000"`
	CurrentTaxBracket    float64 `json:"currentTaxBracket" validate:"gte=0,lte=100"`    // percent
	RetirementTaxBracket float64 `json:"retirementTaxBracket" validate:"gte=0,lte=100"` // percent
	ConversionAmount     float64 `json:"conversionAmount" validate:"gt=0,lte=1000000000000"`
	ConversionYear       int     `json:"conversionYear,omitempty" validate:"omitempty,gte=1900,lte=2200"`
}

// FieldError reports one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is returned by the Validate methods.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, fe := range v {
		parts[i] = fe.Field + " " + fe.Message
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate checks the scenario invariants: ages in range, retirement after
// the current age, claiming ages within 62..70, money within 0..MaxAmount.
func (in ScenarioInput) Validate() error {
	if err := check(in); err != nil {
		return err
	}
	// An omitted life expectancy must still leave years in retirement
	if in.TerminalAge() <= in.RetirementAge {
		return ValidationErrors{{Field: "lifeExpectancy", Message: "must be greater than retirementAge"}}
	}
	return nil
}

// Validate checks bracket percentages and a positive conversion amount.
func (in RothInput) Validate() error {
	return check(in)
}

func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	out := make(ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fieldPath(fe.Namespace()), Message: describe(fe)})
	}
	return out
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gtfield":
		return "must be greater than " + jsonName(fe.Param())
	case "required":
		return "is required"
	default:
		return "is invalid"
	}
}

// jsonName converts a Go field name such as CurrentAge to currentAge.
func jsonName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

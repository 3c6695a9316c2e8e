// Package validation registers the custom validator tags shared by both HTTP stacks.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	DateLayout = "2006-01-02"
	SlotLayout = "15:04"
)

var (
	phoneChars  = regexp.MustCompile(`^\+?[\d\s\-().]+$`)
	phoneDigits = regexp.MustCompile(`\d`)

	ginOnce sync.Once
	ginErr  error
)

// Register adds the phone, isodate and timeslot tags to v and reports fields by their JSON name
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	for tag, fn := range map[string]validator.Func{
		"phone":    validatePhone,
		"isodate":  validateDate,
		"timeslot": validateSlot,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

// New returns a validator carrying the custom tags, for stacks that do not go through gin binding
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := Register(v); err != nil {
		panic(err)
	}
	return v
}

// RegisterGin installs the custom tags on gin's default validator and makes JSON binding reject unknown fields.
// Safe to call more than once.
func RegisterGin() error {
	ginOnce.Do(func() {
		binding.EnableDecoderDisallowUnknownFields = true
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			ginErr = fmt.Errorf("unexpected gin validator engine %T", binding.Validator.Engine())
			return
		}
		ginErr = Register(v)
	})
	return ginErr
}

// IsPhone accepts digits with common separators as long as at least nine digits are present
func IsPhone(s string) bool {
	return phoneChars.MatchString(s) && len(phoneDigits.FindAllString(s, -1)) >= 9
}

// NormalizeDate accepts YYYY-MM-DD or an RFC3339 timestamp and returns the YYYY-MM-DD day
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t.Format(DateLayout), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q", s)
	}
	return t.Format(DateLayout), nil
}

// NormalizeSlot returns the HH:MM form of a 24 hour time slot
func NormalizeSlot(s string) (string, error) {
	t, err := time.Parse(SlotLayout, strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("invalid time slot %q", s)
	}
	return t.Format(SlotLayout), nil
}

func validatePhone(fl validator.FieldLevel) bool {
	return IsPhone(fl.Field().String())
}

func validateDate(fl validator.FieldLevel) bool {
	_, err := NormalizeDate(fl.Field().String())
	return err == nil
}

func validateSlot(fl validator.FieldLevel) bool {
	_, err := NormalizeSlot(fl.Field().String())
	return err == nil
}

// Message turns a binding error into a short human readable sentence
func Message(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request body: " + err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fieldMessage(fe))
	}
	return strings.Join(parts, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	name := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "email":
		return name + " must be a valid email address"
	case "phone":
		return name + " must be a valid phone number"
	case "isodate":
		return name + " must be a date (YYYY-MM-DD)"
	case "timeslot":
		return name + " must be a time (HH:MM)"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, fe.Param())
	case "gt", "gte", "min":
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "lte", "max":
		return fmt.Sprintf("%s must be at most %s", name, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", name, fe.Tag())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

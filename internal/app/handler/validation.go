package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"printshop/internal/app/pricing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the pricing selector tags to gin's validator and
// makes it report JSON field names.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	rules := map[string]validator.Func{
		"paper_grade": func(fl validator.FieldLevel) bool {
			_, err := pricing.ParsePaperGrade(fl.Field().String())
			return err == nil
		},
		"binding_type": func(fl validator.FieldLevel) bool {
			_, err := pricing.ParseBindingType(fl.Field().String())
			return err == nil
		},
		"cover_type": func(fl validator.FieldLevel) bool {
			_, err := pricing.ParseCoverType(fl.Field().String())
			return err == nil
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

// bindingMessages turns a bind error into one readable message per field.
func bindingMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"Invalid request body"}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "email":
			msgs = append(msgs, "Please enter a valid email address")
		case "oneof", "paper_grade", "binding_type", "cover_type":
			msgs = append(msgs, fmt.Sprintf("%s has an unsupported value %q", fe.Field(), fe.Value()))
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s cannot be negative", fe.Field()))
		case "min", "max":
			msgs = append(msgs, fmt.Sprintf("%s must be %s %s characters", fe.Field(), map[string]string{"min": "at least", "max": "at most"}[fe.Tag()], fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return msgs
}

package validate

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var v = newValidator()

func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// дедлайн не может быть в прошлом
	validate.RegisterValidation("future_date", func(fl validator.FieldLevel) bool {
		date, ok := fl.Field().Interface().(time.Time)
		if !ok {
			return false
		}
		today := time.Now().Truncate(24 * time.Hour)
		return date.After(today)
	})

	return validate
}

// FieldErrors - ошибки валидации формы по имени поля
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, reason := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", field, reason))
	}
	return "ошибка валидации: " + strings.Join(parts, "; ")
}

func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fields := FieldErrors{}
	for _, fe := range validationErrs {
		fields[fe.Field()] = reasonFor(fe)
	}
	return fields
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "поле обязательно"
	case "min":
		return fmt.Sprintf("минимум %s символов", fe.Param())
	case "max":
		return fmt.Sprintf("максимум %s символов", fe.Param())
	case "oneof":
		return fmt.Sprintf("допустимые значения: %s", fe.Param())
	case "future_date":
		return "дата должна быть в будущем"
	case "gt":
		return fmt.Sprintf("значение должно быть больше %s", fe.Param())
	case "hexcolor":
		return "неверный формат цвета"
	default:
		return fmt.Sprintf("неверное значение (%s)", fe.Tag())
	}
}

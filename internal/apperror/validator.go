package apperror

import "github.com/go-playground/validator/v10"

// FromValidator converts validator.ValidationErrors into a ValidationError
// with json-style field names. Other errors pass through untouched.
func FromValidator(err error) error {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[lowerFirst(fe.Field())] = "failed " + fe.Tag() + " check"
	}
	return &ValidationError{Details: details}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]|0x20) + s[1:]
}

package projectinput

import (
	"errors"
	"fmt"
	"strings"
)

// AlertMessage is the fixed text shown to the user when a submission is
// rejected.
const AlertMessage = "Invalid input, please try again!"

var ErrInvalidInput = errors.New("invalid input")

// ValidationError lists the fields that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// Has reports whether field is among the invalid fields.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f == field {
			return true
		}
	}
	return false
}

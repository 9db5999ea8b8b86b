package projectinput

import (
	"math"
	"strconv"
	"strings"

	"github.com/emiliopalmerini/projectboard/internal/domain"
)

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPeople      = "people"

	descriptionMinLength = 5
	peopleMin            = 1
)

// Form holds the raw values of the three input fields.
type Form struct {
	Title       string
	Description string
	People      string
}

// Validatables builds the constraint set for each field, keyed by field name.
func (f Form) Validatables() map[string]domain.Validatable {
	return map[string]domain.Validatable{
		FieldTitle: {
			Value:    f.Title,
			Required: true,
		},
		FieldDescription: {
			Value:     f.Description,
			Required:  true,
			MinLength: domain.IntPtr(descriptionMinLength),
		},
		FieldPeople: {
			Value:    peopleValue(f.People),
			Required: true,
			Min:      domain.FloatPtr(peopleMin),
		},
	}
}

// peopleValue coerces the people field to a number. Blank input stays text so
// the required check rejects it; anything that is not a whole number becomes
// NaN, which fails every numeric bound.
func peopleValue(raw string) any {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return math.NaN()
	}
	return n
}

// Validate accepts the form only when every field is valid.
func (f Form) Validate() error {
	checks := f.Validatables()
	var invalid []string
	for _, field := range []string{FieldTitle, FieldDescription, FieldPeople} {
		if !domain.Validate(checks[field]) {
			invalid = append(invalid, field)
		}
	}
	if len(invalid) > 0 {
		return &ValidationError{Fields: invalid}
	}
	return nil
}

// PeopleCount returns the parsed team size. Only meaningful after Validate.
func (f Form) PeopleCount() int {
	n, _ := strconv.Atoi(strings.TrimSpace(f.People))
	return n
}

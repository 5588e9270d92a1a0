package form

import (
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"
)

const (
	NameMinLength = 2
	NameMaxLength = 12
)

var lettersOnly = regexp.MustCompile(`^[a-zA-Z]+$`)

// PersonName validates a trainer name: required, 2 to 12 ASCII letters.
// label names the field in the required message, e.g. "First name".
func PersonName(label string) func(string) error {
	return func(value string) error {
		n := utf8.RuneCountInString(value)
		switch {
		case value == "":
			return fmt.Errorf("%s is required", label)
		case n < NameMinLength:
			return fmt.Errorf("Minimum %d characters", NameMinLength)
		case n > NameMaxLength:
			return fmt.Errorf("Maximum %d characters", NameMaxLength)
		case !lettersOnly.MatchString(value):
			return errors.New("Only letters are allowed")
		}
		return nil
	}
}

// TeamSize validates that count reports exactly size members. The field
// value is ignored; the selection lives outside the form.
func TeamSize(size int, count func() int) func(string) error {
	return func(string) error {
		if count() != size {
			return fmt.Errorf("You must select exactly %d Pokémon", size)
		}
		return nil
	}
}

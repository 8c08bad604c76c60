package tui

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// Letters (Latin or Cyrillic) separated by single apostrophes, dashes
	// or spaces.
	namePattern = regexp.MustCompile(`^[a-zA-Zа-яА-Я]+(([' -][a-zA-Zа-яА-Я ])?[a-zA-Zа-яА-Я]*)*$`)

	// Digits with optional leading "+", spaces, dashes, dots and
	// parentheses. At least one digit.
	numberPattern = regexp.MustCompile(`^\+?[\d\s().-]*\d[\d\s().-]*$`)

	errNameRequired   = errors.New("Name is required.")
	errNumberRequired = errors.New("Number is required.")
	errNameFormat     = errors.New("Name may contain only letters, apostrophe, dash and spaces.")
	errNumberFormat   = errors.New("Phone number must be digits and can contain spaces, dashes, parentheses and can start with +")
)

// validateDraft trims the two form fields and checks their format. The
// registry itself only insists on non-empty values.
func validateDraft(name, number string) (string, string, error) {
	name, number = strings.TrimSpace(name), strings.TrimSpace(number)
	switch {
	case name == "":
		return name, number, errNameRequired
	case !namePattern.MatchString(name):
		return name, number, errNameFormat
	case number == "":
		return name, number, errNumberRequired
	case !numberPattern.MatchString(number):
		return name, number, errNumberFormat
	}
	return name, number, nil
}

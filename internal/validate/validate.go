// Package validate holds the independent field rules applied before any
// write. Rules never stop at the first failure; every violation is collected.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Errors is the list of violations found for one form.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

func (e *Errors) Add(field, msg string) {
	*e = append(*e, FieldError{Field: field, Message: msg})
}

// Err returns nil when no violation was collected.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Has reports whether field has at least one violation.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

var (
	strictEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	looseEmail  = regexp.MustCompile(`\S+@\S+\.\S+`)
)

func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// LengthBetween counts characters, not bytes.
func LengthBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}

func IsEmail(s string) bool {
	return strictEmail.MatchString(s)
}

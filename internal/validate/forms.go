package validate

import (
	"strings"
	"unicode/utf8"
)

const minPasswordLen = 8

// Project checks the project form. Values are trimmed before measuring.
func Project(name, description string) Errors {
	var errs Errors
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)

	switch n := utf8.RuneCountInString(name); {
	case n == 0:
		errs.Add("name", "project name is required")
	case n > 60:
		errs.Add("name", "project name must be at most 60 characters")
	case n < 20:
		errs.Add("name", "project name must be at least 20 characters")
	}

	switch n := utf8.RuneCountInString(description); {
	case n > 120:
		errs.Add("description", "project description must be at most 120 characters")
	case n < 30:
		errs.Add("description", "project description must be at least 30 characters")
	}
	return errs
}

// Member checks the add-member form.
func Member(email, role string) Errors {
	var errs Errors
	if IsEmpty(email) {
		errs.Add("email", "email is required")
	} else if !IsEmail(strings.TrimSpace(email)) {
		errs.Add("email", "email is invalid")
	}
	if IsEmpty(role) {
		errs.Add("role", "role is required")
	}
	return errs
}

// Registration checks the sign-up form. Email uniqueness is checked by the
// caller, which owns the user list.
func Registration(fullName, email, password, confirm string) Errors {
	var errs Errors
	if IsEmpty(fullName) {
		errs.Add("name", "full name is required")
	}
	checkLoginEmail(&errs, email)
	if password == "" {
		errs.Add("password", "password is required")
	} else if utf8.RuneCountInString(password) < minPasswordLen {
		errs.Add("password", "password must be at least 8 characters")
	}
	if confirm == "" {
		errs.Add("confirm", "please confirm the password")
	} else if confirm != password {
		errs.Add("confirm", "passwords do not match")
	}
	return errs
}

// Login checks the sign-in form shape. Credential checks happen in auth.
func Login(email, password string) Errors {
	var errs Errors
	checkLoginEmail(&errs, email)
	if password == "" {
		errs.Add("password", "password is required")
	} else if utf8.RuneCountInString(password) < minPasswordLen {
		errs.Add("password", "password must be at least 8 characters")
	}
	return errs
}

func checkLoginEmail(errs *Errors, email string) {
	if IsEmpty(email) {
		errs.Add("email", "email is required")
	} else if !looseEmail.MatchString(email) {
		errs.Add("email", "email is invalid")
	}
}

// Package validation implements the field-level request validation rules.
//
// Rules accumulate: every failing field is reported, and storage is never
// touched while any rule fails.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	nameMaxLen     = 30
	emailMaxLen    = 30
	titleMinLen    = 5
	titleMaxLen    = 100
	contentMinLen  = 10
	passwordMinLen = 8
	minLowercase   = 1
	minUppercase   = 1
	minDigits      = 1
	minSymbols     = 1
)

var (
	// validate backs the email format rule with the same engine gin's
	// binding tags use.
	validate = validator.New()

	// titleRegex allow-lists letters, digits, spaces and basic punctuation.
	titleRegex = regexp.MustCompile(`^[a-zA-Z0-9 .,:;!?'"()\-]+$`)
)

// FieldError describes a single failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NormalizeEmail trims surrounding whitespace and lowercases an address so
// lookups and the unique index agree on a canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup validates a signup request. The email is expected to be normalized
// by the caller before persisting.
func Signup(name, email, password, confirmPassword string) []FieldError {
	var errs []FieldError

	name = strings.TrimSpace(name)
	switch {
	case name == "":
		errs = append(errs, FieldError{"name", "Name is required"})
	case utf8.RuneCountInString(name) > nameMaxLen:
		errs = append(errs, FieldError{"name", fmt.Sprintf("Name length must be between 1 and %d characters", nameMaxLen)})
	}

	errs = append(errs, emailErrors(email)...)

	password = strings.TrimSpace(password)
	if password == "" {
		errs = append(errs, FieldError{"password", "Password is required"})
	} else if !isStrongPassword(password) {
		errs = append(errs, FieldError{"password", "Password must be at least 8 characters and contain a lowercase letter, an uppercase letter, a number, and a symbol"})
	}

	confirmPassword = strings.TrimSpace(confirmPassword)
	switch {
	case confirmPassword == "":
		errs = append(errs, FieldError{"confirmPassword", "Must confirm password"})
	case confirmPassword != password:
		errs = append(errs, FieldError{"confirmPassword", "Passwords do not match"})
	}

	return errs
}

// Login validates a login request.
func Login(email, password string) []FieldError {
	var errs []FieldError

	errs = append(errs, emailErrors(email)...)

	if strings.TrimSpace(password) == "" {
		errs = append(errs, FieldError{"password", "Password is required"})
	}

	return errs
}

// PostCreate validates a post creation request.
func PostCreate(title, content string) []FieldError {
	var errs []FieldError
	errs = append(errs, titleErrors(title)...)
	errs = append(errs, contentErrors(content)...)
	return errs
}

// PostUpdate validates a partial post update. Only fields present in the
// request are checked; absent fields remain unchanged and are not validated.
func PostUpdate(title, content *string) []FieldError {
	var errs []FieldError
	if title != nil {
		errs = append(errs, titleErrors(*title)...)
	}
	if content != nil {
		errs = append(errs, contentErrors(*content)...)
	}
	return errs
}

// CommentContent validates the content of a comment.
func CommentContent(content string) []FieldError {
	return contentErrors(content)
}

func emailErrors(email string) []FieldError {
	email = NormalizeEmail(email)
	switch {
	case email == "":
		return []FieldError{{"email", "Email is required"}}
	case utf8.RuneCountInString(email) > emailMaxLen:
		return []FieldError{{"email", fmt.Sprintf("Email length must be between 1 and %d characters", emailMaxLen)}}
	case validate.Var(email, "email") != nil:
		return []FieldError{{"email", "Must be in email format"}}
	}
	return nil
}

func titleErrors(title string) []FieldError {
	title = strings.TrimSpace(title)
	switch {
	case title == "":
		return []FieldError{{"title", "Title is required"}}
	case utf8.RuneCountInString(title) < titleMinLen || utf8.RuneCountInString(title) > titleMaxLen:
		return []FieldError{{"title", fmt.Sprintf("Title length must be between %d and %d characters", titleMinLen, titleMaxLen)}}
	case !titleRegex.MatchString(title):
		return []FieldError{{"title", "Title contains invalid characters"}}
	}
	return nil
}

func contentErrors(content string) []FieldError {
	content = strings.TrimSpace(content)
	switch {
	case content == "":
		return []FieldError{{"content", "Content is required"}}
	case utf8.RuneCountInString(content) < contentMinLen:
		return []FieldError{{"content", fmt.Sprintf("Content must be at least %d characters", contentMinLen)}}
	}
	return nil
}

// isStrongPassword enforces the strong-password policy: minimum length 8 and
// at least one lowercase letter, uppercase letter, digit, and symbol.
func isStrongPassword(password string) bool {
	if utf8.RuneCountInString(password) < passwordMinLen {
		return false
	}

	var lower, upper, digits, symbols int
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower++
		case unicode.IsUpper(r):
			upper++
		case unicode.IsDigit(r):
			digits++
		case unicode.IsSymbol(r) || unicode.IsPunct(r):
			symbols++
		}
	}

	return lower >= minLowercase && upper >= minUppercase && digits >= minDigits && symbols >= minSymbols
}

package validators

import (
	"context"
	"fmt"
	"strings"
)

const (
	// FieldName targets the display name on registration.
	FieldName = "name"

	// FieldEmail targets the login identifier.
	FieldEmail = "email"

	// FieldPassword targets an existing password; only presence is checked
	// so accounts created under older rules can still sign in.
	FieldPassword = "password"

	// FieldNewPassword targets a password being set, which must meet the
	// current strength rule.
	FieldNewPassword = "new_password"
)

// MinPasswordLength is the strength rule applied to newly set passwords.
const MinPasswordLength = 6

// Credentials is the validation input for sign-in and registration forms.
type Credentials struct {
	Name     string
	Email    string
	Password string
}

// CredentialsValidator checks sign-in and registration input.
type CredentialsValidator struct{}

func NewCredentialsValidator() *CredentialsValidator {
	return &CredentialsValidator{}
}

// Validate implements [Validator] for [Credentials] values. With no field
// names given it applies the registration rules: name, email and the
// strength rule for the new password.
func (v *CredentialsValidator) Validate(ctx context.Context, value any, fields ...string) error {
	creds, ok := value.(Credentials)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}

	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldNewPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if strings.TrimSpace(creds.Name) == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if !looksLikeEmail(creds.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		case FieldNewPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
			if len(creds.Password) < MinPasswordLength {
				return ErrShortPassword
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

// looksLikeEmail is a sanity check, not RFC 5322: one @, something on both
// sides, a dot in the domain.
func looksLikeEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return false
	}

	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1 && !strings.ContainsAny(email, " \t")
}

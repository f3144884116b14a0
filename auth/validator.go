package auth

import (
	"fmt"
	"permissioned-registry/domain"
	"permissioned-registry/errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// IdentityRequest is an externally supplied address before canonicalization.
type IdentityRequest struct {
	Address string `validate:"required,min=3,max=64,identity"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("identity", isIdentityCharset); err != nil {
		panic("auth: identity validation registration failed: " + err.Error())
	}
	return v
}

// ValidateIdentity turns raw into its canonical identity: surrounding
// whitespace is trimmed and letters are lowercased, so "Alice" and " alice"
// name the same caller. The canonical form must be 3 to 64 characters of
// lowercase letters, digits, '.', '_' or '-'.
func ValidateIdentity(raw string) (domain.Identity, error) {
	canonical := strings.ToLower(strings.TrimSpace(raw))
	if err := validate.Struct(IdentityRequest{Address: canonical}); err != nil {
		return "", fmt.Errorf("%w: %q: %v", errors.ErrInvalidIdentity, raw, err)
	}
	return domain.Identity(canonical), nil
}

func isIdentityCharset(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '.', r == '_', r == '-':
		default:
			return false
		}
	}
	return true
}

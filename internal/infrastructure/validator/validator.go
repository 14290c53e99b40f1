package validator

import (
	"fmt"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/henok-tadesse/socialnet/internal/domain/entity"
	usecasecontract "github.com/henok-tadesse/socialnet/internal/usecase/contract"
)

// AppValidator implements the usecasecontract.IValidator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator that implements the IValidator interface.
func NewValidator() usecasecontract.IValidator {
	v := validator.New()
	return &AppValidator{validate: v}
}

// ValidateEmail checks if the email format is valid.
func (av *AppValidator) ValidateEmail(email string) error {
	return av.validate.Var(email, "required,email")
}

// ValidatePasswordStrength checks if the password meets the strength requirements.
func (av *AppValidator) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if !containsUppercase(password) {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}
	if !containsLowercase(password) {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}
	if !containsNumber(password) {
		return fmt.Errorf("password must contain at least one number")
	}
	return nil
}

// RegisterCustomValidators registers custom validation functions with the Gin validator.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("reactionkind", reactionKindFL)
	}
}

// reactionKindFL validates that a bound field is a requestable reaction kind.
func reactionKindFL(fl validator.FieldLevel) bool {
	return entity.ReactionKind(fl.Field().String()).IsValid()
}

// containsUppercase checks if the string contains at least one uppercase letter.
func containsUppercase(s string) bool {
	for _, char := range s {
		if unicode.IsUpper(char) {
			return true
		}
	}
	return false
}

// containsLowercase checks if the string contains at least one lowercase letter.
func containsLowercase(s string) bool {
	for _, char := range s {
		if unicode.IsLower(char) {
			return true
		}
	}
	return false
}

// containsNumber checks if the string contains at least one number.
func containsNumber(s string) bool {
	for _, char := range s {
		if unicode.IsNumber(char) {
			return true
		}
	}
	return false
}

package usecasecontract

// IValidator defines the input validation operations usecases rely on.
type IValidator interface {
	ValidateEmail(email string) error
	ValidatePasswordStrength(password string) error
}

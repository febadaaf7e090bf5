package user

import "fmt"

// EmailTakenError signals that an account already exists for the email.
type EmailTakenError struct {
	Email string
}

func (e EmailTakenError) Error() string {
	return fmt.Sprintf("an account with email %s already exists", e.Email)
}

// InvalidCredentialsError signals a failed email/password check. The message
// is deliberately identical for unknown accounts and wrong passwords.
type InvalidCredentialsError struct{}

func (e InvalidCredentialsError) Error() string {
	return "invalid email or password"
}

package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidCredentials  = 4010
	CodeMissingToken        = 4011
	CodeMalformedToken      = 4012
	CodeInvalidToken        = 4013
	CodeTokenExpired        = 4014
	CodeDuplicateEmail      = 4091
	CodeDuplicateUsername   = 4092
	CodeAlreadyInFamily     = 4093
	CodeAlreadyMember       = 4094
	CodeSoleAdmin           = 4095
	CodeNotAdmin            = 4030
	CodeInvitationNotFound  = 4041
	CodeNotInFamily         = 4042
	CodeNotAMember          = 4043
	CodeUserNotFound        = 4044
	CodeTransactionNotFound = 4045
	CodeInvalidAmount       = 4001
	CodeInvalidPayer        = 4002
	CodeValidation          = 4000
	CodeConstraintViolation = 4005

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidCredentials is returned for any failed login attempt; the
	// caller never learns whether the identifier or the password was wrong
	ErrInvalidCredentials = errors.New("invalid username/email or password")

	// ErrMissingToken is returned when the Authorization header is absent
	ErrMissingToken = errors.New("authorization token is missing")

	// ErrMalformedToken is returned when the Authorization header is not in Bearer form
	ErrMalformedToken = errors.New("authorization header must be in 'Bearer <token>' form")

	// ErrInvalidToken is returned when token verification fails
	ErrInvalidToken = errors.New("invalid authorization token")

	// ErrTokenExpired is returned when the token validity window has passed
	ErrTokenExpired = errors.New("authorization token has expired")

	// ErrDuplicateEmail is returned when registering an email that is already taken
	ErrDuplicateEmail = errors.New("email is already registered")

	// ErrDuplicateUsername is returned when registering a username that is already taken
	ErrDuplicateUsername = errors.New("username is already taken")

	// ErrAlreadyInFamily is returned when the user already holds an active membership
	ErrAlreadyInFamily = errors.New("user already belongs to a family")

	// ErrAlreadyMember is returned when joining a family the user is already an active member of
	ErrAlreadyMember = errors.New("user is already a member of this family")

	// ErrSoleAdmin is returned when the only active admin tries to leave
	ErrSoleAdmin = errors.New("the only admin cannot leave the family; delete it instead")

	// ErrNotAdmin is returned when an admin-only action is attempted by a regular member
	ErrNotAdmin = errors.New("only a family admin may perform this action")

	// ErrInvitationNotFound is returned when no family has the given invitation code
	ErrInvitationNotFound = errors.New("invitation code is invalid")

	// ErrNotInFamily is returned when the user has no active membership
	ErrNotInFamily = errors.New("user has not joined a family")

	// ErrNotAMember is returned when the user is not an active member of the requested family
	ErrNotAMember = errors.New("user is not a member of this family")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrFamilyNotFound is returned when the requested family doesn't exist
	ErrFamilyNotFound = errors.New("family not found")

	// ErrMembershipNotFound is returned when a membership row doesn't exist
	ErrMembershipNotFound = errors.New("membership not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't
	// exist or is not owned by the requester
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidAmount is returned when the amount is negative or carries more
	// than two decimal places
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidPayer is returned when the payer is not an active member of the bill's family
	ErrInvalidPayer = errors.New("payer is not an active member of the family")

	// ErrValidation is returned when the request payload fails validation
	ErrValidation = errors.New("validation failed")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrMissingToken):
		return CodeMissingToken
	case errors.Is(err, ErrMalformedToken):
		return CodeMalformedToken
	case errors.Is(err, ErrTokenExpired):
		return CodeTokenExpired
	case errors.Is(err, ErrInvalidToken):
		return CodeInvalidToken
	case errors.Is(err, ErrDuplicateEmail):
		return CodeDuplicateEmail
	case errors.Is(err, ErrDuplicateUsername):
		return CodeDuplicateUsername
	case errors.Is(err, ErrAlreadyInFamily):
		return CodeAlreadyInFamily
	case errors.Is(err, ErrAlreadyMember):
		return CodeAlreadyMember
	case errors.Is(err, ErrSoleAdmin):
		return CodeSoleAdmin
	case errors.Is(err, ErrNotAdmin):
		return CodeNotAdmin
	case errors.Is(err, ErrInvitationNotFound):
		return CodeInvitationNotFound
	case errors.Is(err, ErrNotInFamily):
		return CodeNotInFamily
	case errors.Is(err, ErrNotAMember):
		return CodeNotAMember
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidPayer):
		return CodeInvalidPayer
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps a domain error to the HTTP status class it surfaces as
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrMissingToken),
		errors.Is(err, ErrMalformedToken),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotAdmin):
		return http.StatusForbidden
	case errors.Is(err, ErrDuplicateEmail),
		errors.Is(err, ErrDuplicateUsername),
		errors.Is(err, ErrAlreadyInFamily),
		errors.Is(err, ErrAlreadyMember),
		errors.Is(err, ErrSoleAdmin):
		return http.StatusConflict
	case errors.Is(err, ErrInvitationNotFound),
		errors.Is(err, ErrNotInFamily),
		errors.Is(err, ErrNotAMember),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrFamilyNotFound),
		errors.Is(err, ErrMembershipNotFound),
		errors.Is(err, ErrTransactionNotFound),
		errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrInvalidPayer),
		errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ValidationError reports every violated field of a request payload
type ValidationError struct {
	Fields map[string]string
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d invalid field(s)", len(e.Fields))
}

// Is checks if the target error is an ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "validation_error",
		"error_code": CodeValidation,
	}
	for name, reason := range e.Fields {
		fields["field_"+name] = reason
	}
	return fields
}

// NewValidationError creates a validation error listing all violated fields
func NewValidationError(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrFamilyNotFound) ||
		errors.Is(err, ErrMembershipNotFound) ||
		errors.Is(err, ErrInvitationNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsConflictError checks if the error surfaces as a 409 conflict
func IsConflictError(err error) bool {
	return HTTPStatus(err) == http.StatusConflict
}

// IsAuthError checks if the error is an authentication failure
func IsAuthError(err error) bool {
	return HTTPStatus(err) == http.StatusUnauthorized
}

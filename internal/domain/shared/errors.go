package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target carries the same code, so errors.Is matches
// domain errors created with a custom message against the sentinels below.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates an error for input that violates a constraint.
func NewValidationError(message string) *DomainError {
	return NewDomainError(CodeValidation, message)
}

// NewNotFoundError creates a not-found error with a resource specific message.
func NewNotFoundError(message string) *DomainError {
	return NewDomainError(CodeNotFound, message)
}

// Error codes
const (
	CodeNotFound       = "NOT_FOUND"
	CodeValidation     = "VALIDATION_ERROR"
	CodeAlreadyExists  = "ALREADY_EXISTS"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeTenantRequired = "TENANT_REQUIRED"
)

// Common domain errors
var (
	ErrNotFound       = NewDomainError(CodeNotFound, "Resource not found")
	ErrValidation     = NewDomainError(CodeValidation, "Invalid input provided")
	ErrAlreadyExists  = NewDomainError(CodeAlreadyExists, "Resource already exists")
	ErrUnauthorized   = NewDomainError(CodeUnauthorized, "Not authorized to perform this action")
	ErrTenantRequired = NewDomainError(CodeTenantRequired, "Tenant context is required")
)

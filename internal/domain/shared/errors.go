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

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound           = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists      = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput       = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrUnauthorized       = NewDomainError("UNAUTHORIZED", "Authentication required")
	ErrForbidden          = NewDomainError("FORBIDDEN", "Access denied")
	ErrInvalidState       = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrInsufficientStock  = NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock")
	ErrEmptyCart          = NewDomainError("EMPTY_CART", "Cart is empty")
	ErrDuplicateEmail     = NewDomainError("DUPLICATE_EMAIL", "Email already registered")
	ErrDuplicateUsername  = NewDomainError("DUPLICATE_USERNAME", "Username already taken")
	ErrInvalidCredentials = NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	ErrAccountDeactivated = NewDomainError("ACCOUNT_DEACTIVATED", "Account is deactivated")
)

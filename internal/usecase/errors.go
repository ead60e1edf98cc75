package usecase

// Códigos usados pelos usecases. O handler HTTP mapeia DomainError para 4xx
// e TechnicalError para 500; nada aqui derruba o processo.
const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeInvalidStatus   = "INVALID_STATUS"
	CodeDatabaseError   = "DATABASE_ERROR"
	CodePartialFailure  = "PARTIAL_FAILURE"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

package httperr

import "errors"

// Kinds a BusinessError can carry. Match them with errors.Is.
var (
	ErrValidation      = errors.New("validation_error")
	ErrUniqueViolation = errors.New("unique_violation")
	ErrNotFound        = errors.New("not_found")
)

type BusinessError struct {
	Code string
	Kind error
}

func (e BusinessError) Error() string {
	return e.Code
}

func (e BusinessError) Unwrap() error {
	return e.Kind
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func Validation(code string) error {
	return BusinessError{Code: code, Kind: ErrValidation}
}

func Unique(code string) error {
	return BusinessError{Code: code, Kind: ErrUniqueViolation}
}

func Missing(code string) error {
	return BusinessError{Code: code, Kind: ErrNotFound}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

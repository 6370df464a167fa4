package httperr

import "errors"

// Kind classifies a recoverable business error.
type Kind string

const (
	KindValidation        Kind = "validation"
	KindNotFound          Kind = "not_found"
	KindOutOfHours        Kind = "out_of_hours"
	KindPastDate          Kind = "past_date"
	KindConflict          Kind = "conflict"
	KindInvalidTransition Kind = "invalid_transition"
	KindOwnership         Kind = "ownership"
)

type BusinessError struct {
	Kind Kind
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func Validation(code string) error {
	return BusinessError{Kind: KindValidation, Code: code}
}

func NotFound(code string) error {
	return BusinessError{Kind: KindNotFound, Code: code}
}

func OutOfHours(code string) error {
	return BusinessError{Kind: KindOutOfHours, Code: code}
}

func PastDate(code string) error {
	return BusinessError{Kind: KindPastDate, Code: code}
}

func Conflict(code string) error {
	return BusinessError{Kind: KindConflict, Code: code}
}

func InvalidTransition(code string) error {
	return BusinessError{Kind: KindInvalidTransition, Code: code}
}

func Ownership(code string) error {
	return BusinessError{Kind: KindOwnership, Code: code}
}

// IsKind reports whether err is a BusinessError of the given kind.
func IsKind(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

package httperr

import "errors"

// BusinessError is invalid client input detected before touching the store.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// NotFoundError means a referenced entity does not exist.
type NotFoundError struct {
	Code string
}

func (e NotFoundError) Error() string {
	return e.Code
}

func ErrNotFound(code string) error {
	return NotFoundError{Code: code}
}

func IsNotFound(err error, code string) bool {
	var nf NotFoundError
	if errors.As(err, &nf) {
		return code == "" || nf.Code == code
	}
	return false
}

type ForbiddenError struct {
	Code string
}

func (e ForbiddenError) Error() string {
	return e.Code
}

func ErrForbidden(code string) error {
	return ForbiddenError{Code: code}
}

func IsForbidden(err error, code string) bool {
	var fb ForbiddenError
	if errors.As(err, &fb) {
		return code == "" || fb.Code == code
	}
	return false
}

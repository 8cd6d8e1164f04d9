package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Business error codes used across the scheduling core.
const (
	CodeCapacityExceeded  = "capacity_exceeded"
	CodeZoneRejected      = "zone_rejected"
	CodePastDate          = "past_date"
	CodeTooSoon           = "too_soon"
	CodeInvalidTransition = "invalid_transition"
	CodeAddressUnresolved = "address_unresolved"
	CodeNotFound          = "not_found"
)

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

func IsAnyBusiness(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}

// IsUniqueViolation reports a Postgres 23505 from the pgx driver.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

package appointment

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("appointment not found")
	ErrNotAvailable  = errors.New("appointment not available")
	ErrInvalidStatus = errors.New("status must be approved or rejected")
	ErrAlreadyFinal  = errors.New("appointment has already been approved or rejected")
)

// OutOfHoursError reports a requested time outside the doctor's working
// hours, carrying the formatted window for the client message.
type OutOfHoursError struct {
	From string
	To   string
}

func (e *OutOfHoursError) Error() string {
	return fmt.Sprintf("please select a time within the doctor's working hours %s to %s", e.From, e.To)
}

// BadRequestError marks a request validation failure, so handlers answer 400
// with the message instead of treating it as a storage failure.
type BadRequestError struct {
	Msg string
}

func (e *BadRequestError) Error() string { return e.Msg }

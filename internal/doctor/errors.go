package doctor

import "errors"

var (
	ErrNotFound       = errors.New("doctor not found")
	ErrAlreadyApplied = errors.New("doctor already applied, please contact the clinic admin")
	ErrInvalidStatus  = errors.New("status must be approved or blocked")
)

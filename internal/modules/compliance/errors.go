package compliance

import "errors"

var (
	ErrNotFound         = errors.New("record not found")
	ErrVesselNotFound   = errors.New("referenced vessel does not exist")
	ErrSeafarerNotFound = errors.New("referenced seafarer does not exist")
	ErrBadDate          = errors.New("invalid date, want YYYY-MM-DD")
	ErrBadWorkHours     = errors.New("work hours must be between 0 and 24")
)

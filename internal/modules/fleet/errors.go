package fleet

import "errors"

var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateIMO      = errors.New("imo number already registered")
	ErrInvalidVesselType = errors.New("invalid vessel type")
	ErrInvalidRank       = errors.New("invalid rank")
	ErrVesselNotFound    = errors.New("referenced vessel does not exist")
)

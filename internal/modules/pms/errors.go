package pms

import "errors"

var (
	ErrNotFound          = errors.New("record not found")
	ErrVesselNotFound    = errors.New("referenced vessel does not exist")
	ErrEquipmentNotFound = errors.New("referenced equipment does not exist")
	ErrBadDate           = errors.New("invalid date, want YYYY-MM-DD")
)

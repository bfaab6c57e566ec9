package domain

import "errors"

var (
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrKidNotFound      = errors.New("kid profile not found")
)

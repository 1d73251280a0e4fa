package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
)

var (
	ErrOwnerNotFound = errors.New("habit owner doesn't exist")
	ErrUserHasHabit  = errors.New("user already has habit with such title")
	ErrHabitNotFound = errors.New("habit doesn't exist")
	ErrWrongOwner    = errors.New("habit belongs to another user")
)

var (
	ErrCheckExist          = errors.New("habit already checked on this date")
	ErrCheckNotFound       = errors.New("habit isn't checked on this date")
	ErrCheckDateNotAllowed = errors.New("checking habit in the future is not allowed")
	ErrInvalidDate         = errors.New("invalid date, expected YYYY-MM-DD")
)

var (
	ErrSourceNotFound      = errors.New("activity source doesn't exist")
	ErrSourceExists        = errors.New("such activity source already exists")
	ErrUnsupportedProvider = errors.New("unsupported activity provider")
	ErrValidation          = errors.New("validation error")
	ErrActivityDisabled    = errors.New("activity aggregation is switched off")
)

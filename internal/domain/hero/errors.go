package hero

import "errors"

var (
	ErrInvalidAmount         = errors.New("water amount must be positive")
	ErrAlreadySleeping       = errors.New("already sleeping")
	ErrNotSleeping           = errors.New("not sleeping")
	ErrTaskNotFound          = errors.New("task not found")
	ErrTaskAlreadyCompleted  = errors.New("task already completed today")
	ErrRewardNotFound        = errors.New("reward not found")
	ErrInsufficientFunds     = errors.New("not enough coins")
	ErrInvalidWeight         = errors.New("weight out of range")
	ErrInvalidActivityFactor = errors.New("unknown activity factor")
	ErrInvalidHabit          = errors.New("habit needs a name and positive xp")
	ErrHabitNotFound         = errors.New("habit not found")
	ErrUnknownAction         = errors.New("unknown action type")
)

// Classification helpers for the transport layer. Grouping follows the
// taxonomy: validation, state conflict, not found, insufficient resource.

func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidWeight) ||
		errors.Is(err, ErrInvalidActivityFactor) ||
		errors.Is(err, ErrInvalidHabit) ||
		errors.Is(err, ErrUnknownAction)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadySleeping) ||
		errors.Is(err, ErrNotSleeping) ||
		errors.Is(err, ErrTaskAlreadyCompleted)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrTaskNotFound) ||
		errors.Is(err, ErrRewardNotFound) ||
		errors.Is(err, ErrHabitNotFound)
}

func IsInsufficient(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

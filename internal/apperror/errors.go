package apperror

import "errors"

var (
	ErrValidation     = errors.New("validation failed")
	ErrRoleConflict   = errors.New("role with this id already exists")
	ErrRoleNotFound   = errors.New("role not found")
	ErrOverAllocation = errors.New("total minutes exceed 1440")

	ErrEmptyUserID   = errors.New("user id cannot be empty")
	ErrDayFormat     = errors.New("day must be formatted as YYYY-MM-DD")
	ErrDuplicateSeed = errors.New("seed contains duplicate role id")

	ErrCannotReadStore  = errors.New("cannot read store")
	ErrCannotWriteStore = errors.New("cannot write store")
	ErrCannotCreateT    = errors.New("cannot create table")

	ErrDuringRowsIteration = errors.New("error during rows iteration")

	ErrFailedBTransaction = errors.New("failed to begin transaction")
	ErrFailedCTransaction = errors.New("failed to commit transaction")
)

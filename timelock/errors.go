package timelock

import "errors"

var (
	ErrLockAlreadyExists = errors.New("LockAlreadyExists")
	ErrLockNotFound      = errors.New("LockNotFound")
	ErrReleaseTimeZero   = errors.New("ReleaseTimeZero")
	ErrReleaseTooEarly   = errors.New("ReleaseTooEarly")
	ErrNothingToRelease  = errors.New("NothingToRelease")
)

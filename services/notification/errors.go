package notification

import "errors"

// ErrUserNotFound is returned when the target user does not exist.
var ErrUserNotFound = errors.New("user not found")

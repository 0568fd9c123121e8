package domain

import "errors"

// ErrNoHistory is returned when every history source is empty or unreadable.
var ErrNoHistory = errors.New("no history found")

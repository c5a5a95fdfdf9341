package database

import "errors"

// ErrSlotNotFound indicates that nothing has been stored under the key yet
var ErrSlotNotFound = errors.New("slot not found")

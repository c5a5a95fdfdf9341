package session

import "errors"

// ErrStoreClosed is returned by Dispatch after Close
var ErrStoreClosed = errors.New("session store is closed")

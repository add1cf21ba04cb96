package trip

import "errors"

var (
	ErrTripNotFound = errors.New("trip not found")
)

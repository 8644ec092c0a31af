package phone

import "errors"

var (
	ErrInvalidNumber  = errors.New("invalid phone number")
	ErrNotMobile      = errors.New("not a mobile number")
	ErrUnknownCarrier = errors.New("unknown mobile carrier")
)

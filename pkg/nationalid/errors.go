package nationalid

import "errors"

var (
	ErrInvalidFormat      = errors.New("national id must contain digits only")
	ErrInvalidLength      = errors.New("national id must be 14 digits")
	ErrInvalidCentury     = errors.New("invalid century digit")
	ErrInvalidBirthDate   = errors.New("invalid birth date")
	ErrFutureBirthDate    = errors.New("birth date is in the future")
	ErrUnknownGovernorate = errors.New("unknown governorate code")
)

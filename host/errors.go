package host

import "github.com/pkg/errors"

var (
	// ErrUserCanceled is returned when the user explicitly declines an
	// operation, like the one-time binary patch. It stops game
	// activation without being reported as a failure.
	ErrUserCanceled = errors.New("operation canceled by user")

	// ErrDataInvalid signals third-party data that parses but doesn't
	// satisfy requirements, like a mod manifest without a Name field.
	ErrDataInvalid = errors.New("data does not satisfy requirements")
)

func IsUserCanceled(err error) bool {
	return errors.Cause(err) == ErrUserCanceled
}

func IsDataInvalid(err error) bool {
	return errors.Cause(err) == ErrDataInvalid
}

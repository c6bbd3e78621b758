package column

import (
	"errors"
	"fmt"
)

var (
	ErrInit = errors.New("column iterator initialization failed")
	ErrRead = errors.New("column read failed")
)

// InitError classifies err as an initialization failure.
func InitError(err error) error {
	if err == nil || errors.Is(err, ErrInit) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInit, err)
}

// ReadError classifies err as a read failure.
func ReadError(err error) error {
	if err == nil || errors.Is(err, ErrRead) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrRead, err)
}

// Fault is the panic value for a broken internal invariant.  A Fault
// signals a bug, not bad data, and is never retried.
type Fault struct {
	msg string
}

func (f *Fault) Error() string {
	return "internal consistency fault: " + f.msg
}

func Faultf(format string, args ...any) *Fault {
	return &Fault{msg: fmt.Sprintf(format, args...)}
}

// Check panics with a Fault if cond is false.
func Check(cond bool, format string, args ...any) {
	if !cond {
		panic(Faultf(format, args...))
	}
}

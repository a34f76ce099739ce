package varint

import "github.com/pkg/errors"

// ErrInsufficientInput is returned when the input ends before the varint does.
var ErrInsufficientInput = errors.New("varint: insufficient input")

func insufficient(n int) error {
	return errors.Wrapf(ErrInsufficientInput, "only %d bytes available", n)
}

/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package dynprops

import (
	"errors"
	"fmt"
)

func enrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

var ErrSubjectMismatchError = errors.New("subject mismatch")

func ErrSubjectMismatch(msg string, args ...any) error {
	return enrichError(ErrSubjectMismatchError, msg, args...)
}

var ErrCyclicInitError = errors.New("cyclic initialization")

func ErrCyclicInit(msg string, args ...any) error {
	return enrichError(ErrCyclicInitError, msg, args...)
}

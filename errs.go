package pjson

import "github.com/mcncl/pjson/internal/errors"

// AppError is the error type returned by decoding and conversion, and the
// panic value of a misused IndexMut.
type AppError = errors.AppError

var (
	ErrEmptyInput      = errors.ErrEmptyInput
	ErrInvalidJSON     = errors.ErrInvalidJSON
	ErrMultipleJSON    = errors.ErrMultipleJSON
	ErrFileNotFound    = errors.ErrFileNotFound
	ErrFileEmpty       = errors.ErrFileEmpty
	ErrMaxDepth        = errors.ErrMaxDepth
	ErrDuplicateKey    = errors.ErrDuplicateKey
	ErrUnsupportedType = errors.ErrUnsupportedType
	ErrNonFiniteNumber = errors.ErrNonFiniteNumber
	ErrIndexOutOfRange = errors.ErrIndexOutOfRange
	ErrTypeMismatch    = errors.ErrTypeMismatch
	ErrEntryConsumed   = errors.ErrEntryConsumed
	ErrInvalidConfig   = errors.ErrInvalidConfig
)

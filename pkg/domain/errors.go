package domain

import "errors"

// ErrNotANumber is returned when an answer is neither a literal number nor a known number word.
var ErrNotANumber = errors.New("not a number")

// ErrEmptyInput is returned when a required free-text answer is blank.
var ErrEmptyInput = errors.New("empty input")

// ErrOutOfRange is returned when a parsed value falls outside its field's bounds.
var ErrOutOfRange = errors.New("value out of range")

// ErrNoBrandRecognized is returned when no known brand occurs in an answer.
var ErrNoBrandRecognized = errors.New("no brand recognized")

// ErrTooManyBrandsForTruckCount is returned when more brands are named than trucks were declared.
var ErrTooManyBrandsForTruckCount = errors.New("more brands than trucks")

// ErrInconsistentTotals is returned when brand or model counts no longer add up.
var ErrInconsistentTotals = errors.New("inconsistent totals")

// ErrDuplicateModelName is returned when a model was already recorded for the same brand.
var ErrDuplicateModelName = errors.New("duplicate model name")

// ErrUnknownCorrectionTarget is returned when "correct <brand>" names a brand that is not in the fleet.
var ErrUnknownCorrectionTarget = errors.New("unknown correction target")

// ErrUnrecognizedAnswer is returned when a yes/no question gets neither.
var ErrUnrecognizedAnswer = errors.New("unrecognized answer")

// ErrRecordFrozen is returned when a finished record is mutated.
var ErrRecordFrozen = errors.New("record is frozen")

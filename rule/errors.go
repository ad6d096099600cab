package rule

import "errors"

// ErrUnknownField is returned when an authored rule mapping has a key
// outside the closed set the matched variant knows about (§4.7's
// deny_unknown_fields convention).
var ErrUnknownField = errors.New("unknown field")

// ErrAmbiguousVariant is returned when an authored rule mapping carries
// keys from more than one of the six rule variants at once.
var ErrAmbiguousVariant = errors.New("ambiguous rule variant")

// ErrNoVariant is returned when an authored rule mapping matches none of
// the six rule variants.
var ErrNoVariant = errors.New("no recognised rule variant")

// ErrUnknownCommand is returned when an action's reducer keyword isn't one
// of the closed set (§4.5).
var ErrUnknownCommand = errors.New("unknown command")

// ErrUnknownOperator is returned when an action comparator isn't one of
// the closed set.
var ErrUnknownOperator = errors.New("unknown operator")

// ErrUnknownWhat is returned when a given-block's "what" keyword isn't one
// of the closed set (§4.5).
var ErrUnknownWhat = errors.New("unknown what")

// ErrMalformedAction is returned when a "do" string doesn't parse as
// "<command> <operator> <rhs>".
var ErrMalformedAction = errors.New("malformed action")

// ErrGivenAreasMustOutputAreas is returned when a given-block sources from
// the student's declared areas but its "what" isn't areas_of_study (§4.5,
// §7's validation-error list).
var ErrGivenAreasMustOutputAreas = errors.New("a given-block over areas must reduce by areas_of_study")

/*
Package filter implements the value and filter mini-language used to
describe "which courses match" a clause.

A clause attribute's authored value can be a bare scalar, a string carrying
a leading comparator (!, <, <=, >, >=), a string combining atoms with the
literal " & " or " | " delimiters, a sequence (treated as an Or of its
elements), or the explicit {operator, value} object form (the only way to
author ∈/∉).

Evaluation never errors: a type mismatch between an attribute and a
predicate simply evaluates to false, except that a missing attribute
reverses the usual default for ≠ and ∉ (see TaggedValue.Eval).
*/
package filter

// Package engine holds the recursive rule evaluator: the transcript query
// (§4.3), the AuditState it's threaded through, reservation bookkeeping
// (§3's invariants), and RuleResult production (§4.4).
package engine

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/area-audit/auditor/course"
)

// Reservation is evidence that a specific transcript course was consumed
// by a specific rule, matching specific parts (§3). It is the only
// cross-rule shared mutable evidence in an audit.
type Reservation struct {
	Course course.Instance
	Rule   course.Rule
	Match  course.MatchedParts
}

// hash returns a stable structural hash of the reservation triple, used
// to key ReservedPairings per the design note in §9 ("a hash-set keyed on
// a stable hash of these three components is appropriate").
func (r Reservation) hash() uint64 {
	var b strings.Builder
	// Collapse whitespace so instances that Equal treats as the same course
	// land in the same bucket.
	b.WriteString(strings.Join(strings.Fields(r.Course.String()), " "))
	b.WriteByte(0)
	rk := r.Rule.Key()
	b.WriteString(rk.Course)
	b.WriteByte('|')
	b.WriteString(strconv.FormatBool(rk.HasSection))
	b.WriteByte('|')
	b.WriteString(rk.Section)
	b.WriteByte('|')
	b.WriteString(strconv.FormatBool(rk.HasYear))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(int(rk.Year)))
	b.WriteByte('|')
	b.WriteString(strconv.FormatBool(rk.HasSemester))
	b.WriteByte('|')
	b.WriteString(string(rk.Semester))
	b.WriteByte('|')
	b.WriteString(strconv.FormatBool(rk.HasLab))
	b.WriteByte('|')
	b.WriteString(strconv.FormatBool(rk.Lab))
	b.WriteByte(0)
	b.WriteString(strconv.FormatBool(r.Match.CourseMatched))
	b.WriteString(strconv.FormatBool(r.Match.SectionMatched))
	b.WriteString(strconv.FormatBool(r.Match.YearMatched))
	b.WriteString(strconv.FormatBool(r.Match.SemesterMatched))
	b.WriteString(strconv.FormatBool(r.Match.LabMatched))
	return xxhash.Sum64String(b.String())
}

// Equal reports structural equality between two reservations: same
// course, same rule (by Key), same match witness.
func (r Reservation) Equal(other Reservation) bool {
	return r.Course.Equal(other.Course) &&
		r.Rule.Key() == other.Rule.Key() &&
		r.Match == other.Match
}

// ReservedPairings is a set of Reservations, with duplicates collapsing by
// structural equality (§3). Value semantics: every mutating method
// returns a new set rather than mutating its receiver, so it can be
// threaded by value through the recursive evaluator (§5's "clone-on-update").
type ReservedPairings struct {
	byHash map[uint64][]Reservation
	len    int
}

// NewReservedPairings returns an empty set.
func NewReservedPairings() ReservedPairings {
	return ReservedPairings{byHash: map[uint64][]Reservation{}}
}

// Contains reports whether r is already in the set.
func (s ReservedPairings) Contains(r Reservation) bool {
	for _, existing := range s.byHash[r.hash()] {
		if existing.Equal(r) {
			return true
		}
	}
	return false
}

// Add returns a new set with r inserted (a no-op copy if r was already
// present).
func (s ReservedPairings) Add(r Reservation) ReservedPairings {
	if s.Contains(r) {
		return s
	}
	out := s.clone()
	h := r.hash()
	out.byHash[h] = append(out.byHash[h], r)
	out.len++
	return out
}

// ContainsCourse reports whether any reservation in the set was made
// against c, regardless of which rule or match produced it — the "course
// projection" §4.5 refers to when excluding already-consumed courses from
// an all-courses given-block population.
func (s ReservedPairings) ContainsCourse(c course.Instance) bool {
	for _, bucket := range s.byHash {
		for _, r := range bucket {
			if r.Course.Equal(c) {
				return true
			}
		}
	}
	return false
}

// Union returns the union of s and other.
func (s ReservedPairings) Union(other ReservedPairings) ReservedPairings {
	out := s.clone()
	for h, bucket := range other.byHash {
		for _, r := range bucket {
			if !out.Contains(r) {
				out.byHash[h] = append(out.byHash[h], r)
				out.len++
			}
		}
	}
	return out
}

// Len reports the number of distinct reservations in the set.
func (s ReservedPairings) Len() int { return s.len }

// All returns every reservation in the set, in unspecified order.
func (s ReservedPairings) All() []Reservation {
	out := make([]Reservation, 0, s.len)
	for _, bucket := range s.byHash {
		out = append(out, bucket...)
	}
	return out
}

func (s ReservedPairings) clone() ReservedPairings {
	out := ReservedPairings{byHash: make(map[uint64][]Reservation, len(s.byHash)), len: s.len}
	for h, bucket := range s.byHash {
		cp := make([]Reservation, len(bucket))
		copy(cp, bucket)
		out.byHash[h] = cp
	}
	return out
}

// FromReservations builds a set from a slice, collapsing duplicates.
func FromReservations(rs []Reservation) ReservedPairings {
	out := NewReservedPairings()
	for _, r := range rs {
		out = out.Add(r)
	}
	return out
}

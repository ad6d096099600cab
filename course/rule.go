package course

// Rule is a pattern that matches a single transcript Instance by course
// identifier and whichever optional attributes are present (§3's
// CourseRule). This module carries the richer of the two schemas the
// original implementation evolved in parallel (see DESIGN.md): Semester
// rather than Term, Year as uint16, and CanMatchUsed present.
type Rule struct {
	Course       string
	Section      *string
	Year         *uint16
	Semester     *Semester
	Lab          *bool
	CanMatchUsed bool
}

// MatchedParts records which of Rule's present sub-predicates matched a
// given Instance (§3's MatchedCourseParts). It's the match-witness carried
// into a Reservation so that two rules matching the same course for
// different reasons produce distinct reservations.
type MatchedParts struct {
	CourseMatched   bool
	SectionMatched  bool
	YearMatched     bool
	SemesterMatched bool
	LabMatched      bool
}

// Any reports whether at least the course sub-predicate matched — the
// overall pass/fail signal for Matches.
func (m MatchedParts) Any() bool { return m.CourseMatched }

// Matches evaluates r against inst, ANDing together every predicate r
// actually specifies (§4.2). On success the returned MatchedParts records
// which predicates were present and matched; if any present predicate
// fails, Matches returns the zero MatchedParts, so Any reports false.
func (r Rule) Matches(inst Instance) MatchedParts {
	var m MatchedParts

	if normalizeCourse(r.Course) != normalizeCourse(inst.Course) {
		return m
	}
	m.CourseMatched = true

	if r.Section != nil {
		m.SectionMatched = *r.Section == inst.Section
		if !m.SectionMatched {
			return MatchedParts{}
		}
	}
	if r.Year != nil {
		m.YearMatched = *r.Year == inst.Year
		if !m.YearMatched {
			return MatchedParts{}
		}
	}
	if r.Semester != nil {
		m.SemesterMatched = *r.Semester == inst.Semester
		if !m.SemesterMatched {
			return MatchedParts{}
		}
	}
	if r.Lab != nil {
		m.LabMatched = *r.Lab == inst.Lab
		if !m.LabMatched {
			return MatchedParts{}
		}
	}

	return m
}

// Key returns a value comparable with ==, suitable for use as (part of) a
// reservation's hash key. Rule itself can't be compared with == because
// of its pointer fields, so this flattens it into a plain struct.
func (r Rule) Key() RuleKey {
	k := RuleKey{Course: normalizeCourse(r.Course), CanMatchUsed: r.CanMatchUsed}
	if r.Section != nil {
		k.Section, k.HasSection = *r.Section, true
	}
	if r.Year != nil {
		k.Year, k.HasYear = *r.Year, true
	}
	if r.Semester != nil {
		k.Semester, k.HasSemester = *r.Semester, true
	}
	if r.Lab != nil {
		k.Lab, k.HasLab = *r.Lab, true
	}
	return k
}

// RuleKey is the comparable projection of a Rule used for reservation
// identity and map keys.
type RuleKey struct {
	Course       string
	HasSection   bool
	Section      string
	HasYear      bool
	Year         uint16
	HasSemester  bool
	Semester     Semester
	HasLab       bool
	Lab          bool
	CanMatchUsed bool
}

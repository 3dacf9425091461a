package match

import (
	"cmp"
	"slices"
	"strings"

	"github.com/fieldops/rollcall/pkg/people"
)

// Confidence levels assigned by each matching rule.
const (
	// ConfidenceEmail is assigned when normalized emails are equal.
	ConfidenceEmail = 1.0

	// ConfidencePhone is assigned when normalized phone numbers are equal.
	ConfidencePhone = 1.0

	// ConfidenceNameZip is assigned when both names and the postal code agree.
	ConfidenceNameZip = 0.9

	// ConfidenceName is assigned when only first and last names agree.
	ConfidenceName = 0.7
)

// Match pairs a live user with the confidence of the association.
type Match struct {
	UserID     int64   `json:"user_id" yaml:"user_id"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// candidateSet accumulates per-user confidences for one exported person.
// The order slice records first-seen order; Go maps don't iterate in
// insertion order, and ranking ties must break toward the rule that fired
// first.
type candidateSet struct {
	scores map[int64]float64
	order  []int64
}

func newCandidateSet() *candidateSet {
	return &candidateSet{scores: make(map[int64]float64)}
}

// raise records a candidate at the given confidence, keeping the highest
// confidence seen so far. A later, weaker rule never lowers a candidate.
func (c *candidateSet) raise(userID int64, confidence float64) {
	current, seen := c.scores[userID]
	if !seen {
		c.order = append(c.order, userID)
	}
	if !seen || confidence > current {
		c.scores[userID] = confidence
	}
}

// Match reconciles every exported person against the live users and returns
// person ID -> qualifying matches ranked by confidence descending. People
// with no candidate at or above the threshold are absent from the result.
func (m *Matcher) Match(persons []people.Person, users []people.User) map[int64][]Match {
	idx := newIndex(users)

	results := make(map[int64][]Match)
	for i := range persons {
		if matches := m.matchPerson(&persons[i], idx); len(matches) > 0 {
			results[persons[i].ID] = matches
		}
	}
	return results
}

// Best returns the single strongest match for every exported person. Every
// person ID from the input appears in the result; nil marks a person with
// no qualifying match.
func (m *Matcher) Best(persons []people.Person, users []people.User) map[int64]*Match {
	all := m.Match(persons, users)

	results := make(map[int64]*Match, len(persons))
	for i := range persons {
		results[persons[i].ID] = nil
	}
	for personID, matches := range all {
		best := matches[0]
		results[personID] = &best
	}
	return results
}

// matchPerson scores one exported person against the index. Rules fire in
// email, phone, name order so that first-seen tie-breaking favors the
// stronger probes.
func (m *Matcher) matchPerson(p *people.Person, idx *index) []Match {
	set := newCandidateSet()

	if email, ok := NormalizeEmail(p.Email); ok {
		for _, u := range idx.byEmail[email] {
			set.raise(u.ID, ConfidenceEmail)
		}
	}

	if phone, ok := NormalizePhone(p.PhoneNumber); ok {
		for _, u := range idx.byPhone[phone] {
			set.raise(u.ID, ConfidencePhone)
		}
	}

	first := NormalizeName(p.FirstName)
	last := NormalizeName(p.LastName)
	if first != "" && last != "" {
		zip := strings.TrimSpace(p.PostalCode)
		for _, entry := range idx.byName[nameKey{first: first, last: last}] {
			confidence := ConfidenceName
			if zip != "" && entry.zip != "" && zip == entry.zip {
				confidence = ConfidenceNameZip
			}
			set.raise(entry.user.ID, confidence)
		}
	}

	matches := make([]Match, 0, len(set.order))
	for _, userID := range set.order {
		if confidence := set.scores[userID]; confidence >= m.threshold {
			matches = append(matches, Match{UserID: userID, Confidence: confidence})
		}
	}
	if len(matches) == 0 {
		return nil
	}

	// Stable sort keeps first-seen order among equal confidences.
	slices.SortStableFunc(matches, func(a, b Match) int {
		return cmp.Compare(b.Confidence, a.Confidence)
	})
	return matches
}

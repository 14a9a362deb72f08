// Package membership holds the pure decision logic of the membership request
// lifecycle: employment-status parsing, section validation, business shape
// normalization, visibility mapping, deduplication and the request-to-member
// conversion. Nothing in this package touches storage or the network.
package membership

import (
	"strings"

	"memberdir-backend/internal/domain"
)

// StatusSet is the parsed, deduplicated employment status set in submission
// order. Unknown tags are preserved; they simply carry no section rules.
type StatusSet []domain.EmploymentTag

// ParseStatusSet splits the comma-joined status field, trimming whitespace and
// dropping empty segments. "other" is mutually exclusive with every other tag.
func ParseStatusSet(raw string) (StatusSet, error) {
	var set StatusSet
	for _, part := range strings.Split(raw, ",") {
		tag := domain.EmploymentTag(strings.TrimSpace(part))
		if tag == "" || set.Contains(tag) {
			continue
		}
		set = append(set, tag)
	}
	if set.Contains(domain.TagOther) && len(set) > 1 {
		return nil, errOtherExclusive
	}
	return set, nil
}

func (s StatusSet) Contains(tag domain.EmploymentTag) bool {
	for _, t := range s {
		if t == tag {
			return true
		}
	}
	return false
}

func (s StatusSet) Empty() bool {
	return len(s) == 0
}

package membership

import (
	"fmt"
	"time"

	"memberdir-backend/internal/domain"
)

// DedupDecision is the outcome of inspecting an identity's request lineage
// before accepting a new submission.
type DedupDecision int

const (
	// DecisionCreate allows a new request to be persisted.
	DecisionCreate DedupDecision = iota
	// DecisionReturnExisting treats the submission as a double-submit and
	// returns the recent prior record instead of creating a second row.
	DecisionReturnExisting
	// DecisionConflict acknowledges that an active (pending or approved)
	// request already blocks this identity. Not an error.
	DecisionConflict
)

// Deduplicate decides what to do with a new submission given every existing
// request for the identity, regardless of lifecycle state. A request seen
// within the window is an idempotent re-POST; outside the window only a
// needs-update lineage may be superseded by a fresh submission.
func Deduplicate(existing []domain.MembershipRequest, now time.Time, window time.Duration) (DedupDecision, *domain.MembershipRequest) {
	latest := Latest(existing)
	if latest == nil {
		return DecisionCreate, nil
	}
	if now.Sub(latest.CreatedOn) <= window {
		return DecisionReturnExisting, latest
	}
	if latest.State != domain.StateNeedsUpdate {
		return DecisionConflict, latest
	}
	return DecisionCreate, nil
}

// Latest returns the most recently created request, or nil.
func Latest(requests []domain.MembershipRequest) *domain.MembershipRequest {
	var latest *domain.MembershipRequest
	for i := range requests {
		if latest == nil || requests[i].CreatedOn.After(latest.CreatedOn) {
			latest = &requests[i]
		}
	}
	return latest
}

// SubmissionKey derives the per-submission idempotency key. A unique index on
// this value makes concurrent duplicate inserts fail instead of producing two
// live rows.
func SubmissionKey(identity string, createdOn time.Time) string {
	return fmt.Sprintf("%s:%d", identity, createdOn.Unix())
}

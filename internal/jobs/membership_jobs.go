package jobs

import (
	"context"
	"time"

	"memberdir-backend/internal/domain"
	"memberdir-backend/internal/logger"
)

// SendPendingDigest mails the review inbox a summary of requests still
// waiting for an admin decision.
func (jr *JobRunner) SendPendingDigest() {
	jr.runWithRecovery("SendPendingDigest", func() {
		ctx := context.Background()

		adminEmail := jr.config.SendGrid.AdminEmail
		if adminEmail == "" {
			logger.Warn("No admin email configured, skipping pending digest")
			return
		}

		pending, err := jr.store.Requests.ListByState(ctx, domain.StatePending)
		if err != nil {
			logger.Error("Failed to list pending requests", "error", err)
			return
		}
		if len(pending) == 0 {
			logger.Info("No pending requests, skipping digest")
			return
		}

		if err := jr.email.SendPendingDigest(ctx, adminEmail, pending); err != nil {
			logger.Error("Failed to send pending digest",
				"admin_email", adminEmail,
				"count", len(pending),
				"error", err)
			return
		}

		logger.Info("Pending digest sent", "count", len(pending))
	})
}

// PurgeStaleRequests deletes requests that were returned for update and never
// resubmitted within the retention period.
func (jr *JobRunner) PurgeStaleRequests() {
	jr.runWithRecovery("PurgeStaleRequests", func() {
		ctx := context.Background()

		retention := time.Duration(jr.config.Retention.NeedsUpdateDays) * 24 * time.Hour
		cutoff := time.Now().UTC().Add(-retention)

		deleted, err := jr.store.Requests.DeleteByStateBefore(ctx, domain.StateNeedsUpdate, cutoff)
		if err != nil {
			logger.Error("Failed to purge stale requests", "error", err)
			return
		}

		logger.Info("Stale requests purged",
			"count", deleted,
			"cutoff", cutoff.Format(time.RFC3339))
	})
}

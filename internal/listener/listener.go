// Package listener wires the workflow's event consumers: an audit trail for
// every raise and a notification hand-off to the mailer queue.
package listener

import (
	"context"
	"fmt"
	"log/slog"

	"pressdesk.app/unassigned/common/id"
	"pressdesk.app/unassigned/internal/event"
	"pressdesk.app/unassigned/internal/model"
	"pressdesk.app/unassigned/internal/queue"
	"pressdesk.app/unassigned/internal/store"
)

// Register attaches the default listeners. Order matters: the audit entry is
// written before the queue hand-off, so a failed enqueue still leaves a
// trail.
func Register(d *event.Dispatcher, audit store.AuditStore, producer queue.Producer) {
	d.Register(event.ArticleAssigned, auditListener(audit))
	d.Register(event.ArticleAssignedAcknowledge, auditListener(audit))
	d.Register(event.ArticleAssignedAcknowledge, enqueueListener(producer))
}

func auditListener(audit store.AuditStore) event.Listener {
	return func(ctx context.Context, e event.AssignmentEvent) error {
		entry := &model.AuditEntry{
			ID:        id.New(),
			ArticleID: e.Assignment.ArticleID,
			EditorID:  &e.Assignment.EditorID,
			ActorID:   e.ActorID,
			Action:    auditAction(e),
		}
		if e.Message != nil {
			entry.Detail = e.Message
		}

		if err := audit.Append(ctx, entry); err != nil {
			return fmt.Errorf("appending audit entry: %w", err)
		}
		return nil
	}
}

func auditAction(e event.AssignmentEvent) string {
	if !e.Acknowledgement {
		return "editor_assigned"
	}
	if e.Skip {
		return "notification_skipped"
	}
	return "editor_notified"
}

// enqueueListener hands composed notifications to the mailer. Skipped
// acknowledgements never reach the queue; there is nothing to deliver.
func enqueueListener(producer queue.Producer) event.Listener {
	return func(ctx context.Context, e event.AssignmentEvent) error {
		if e.Skip {
			slog.DebugContext(ctx, "notification skipped, nothing to enqueue",
				"assignment_id", e.Assignment.ID,
			)
			return nil
		}

		return producer.Enqueue(ctx, queue.NotificationMessage{
			AssignmentID: e.Assignment.ID,
			ArticleID:    e.Assignment.ArticleID,
			EditorID:     e.Assignment.EditorID,
			Message:      e.Message,
			Skip:         e.Skip,
		})
	}
}

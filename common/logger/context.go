package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within
// a context. Fields flow through context enrichment so the editorial context
// (article_id, editor_id, ...) shows up on every log statement without being
// threaded by hand.
type LogFields struct {
	JournalID    *int64
	ArticleID    *int64
	EditorID     *int64
	AssignmentID *int64
	EventName    *string // workflow event name (e.g. "article_assigned")
	Component    string  // component name (e.g. "unassigned.workflow")
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking
// precedence. Context timeouts and cancellation are preserved.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.JournalID != nil {
		result.JournalID = next.JournalID
	}
	if next.ArticleID != nil {
		result.ArticleID = next.ArticleID
	}
	if next.EditorID != nil {
		result.EditorID = next.EditorID
	}
	if next.AssignmentID != nil {
		result.AssignmentID = next.AssignmentID
	}
	if next.EventName != nil {
		result.EventName = next.EventName
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline.
func Ptr[T any](v T) *T {
	return &v
}

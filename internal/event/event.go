package event

import "pressdesk.app/unassigned/internal/model"

// Names of the workflow lifecycle events this service raises.
const (
	ArticleAssigned            = "article_assigned"
	ArticleAssignedAcknowledge = "article_assigned_acknowledge"
)

// AssignmentEvent is the payload broadcast on assignment and on
// acknowledgement. It is not persisted; it exists only for the duration of a
// Raise call.
//
// Skip is authoritative for listener branching: on the initial assignment
// raise it is always true (no message exists yet), on acknowledgement it
// tells listeners whether a message was composed or the sender declined to.
// Acknowledgement distinguishes the post-notification raise from the initial
// one; listeners must not infer anything stronger from it.
type AssignmentEvent struct {
	Article         *model.Article
	Assignment      *model.EditorAssignment
	Message         *string
	ActorID         *int64
	Skip            bool
	Acknowledgement bool
}

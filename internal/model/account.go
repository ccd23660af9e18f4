package model

import "time"

// Role slugs as granted per journal. Senior editors may assign, unassign and
// notify; plain editors and section editors are assignable and may read the
// unassigned queue.
const (
	RoleEditor        = "editor"
	RoleSectionEditor = "section-editor"
	RoleSeniorEditor  = "senior-editor"
)

type Account struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	WorkOSID  *string   `json:"workos_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

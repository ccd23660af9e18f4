// Package notify renders the proposed notification body shown to the senior
// editor before sending. The workflow treats the renderer as opaque; callers
// may replace the rendered text entirely before submitting.
package notify

import (
	"fmt"
	"strings"
	"text/template"

	"pressdesk.app/unassigned/internal/model"
)

var messageTmpl = template.Must(template.New("assignment").Parse(
	`Dear {{ .Editor.Name }},

You have been assigned as {{ .RoleLabel }} of "{{ .Article.Title }}".
Please log in to the editorial dashboard to begin handling this submission.

Kind regards,
The editorial team
`))

type messageData struct {
	Article   *model.Article
	Editor    *model.Account
	RoleLabel string
}

// Content produces the default notification text for an assignment.
func Content(article *model.Article, editor *model.Account, assignment *model.EditorAssignment) (string, error) {
	label := "editor"
	if assignment.AssignmentType == model.AssignmentTypeSectionEditor {
		label = "section editor"
	}

	var b strings.Builder
	if err := messageTmpl.Execute(&b, messageData{
		Article:   article,
		Editor:    editor,
		RoleLabel: label,
	}); err != nil {
		return "", fmt.Errorf("rendering notification message: %w", err)
	}
	return b.String(), nil
}

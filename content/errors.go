package content

import (
	"strings"
)

// Constraint names the rule a field violated.
type Constraint string

const (
	ConstraintRequired Constraint = "required"
	ConstraintType     Constraint = "type"
	ConstraintEnum     Constraint = "enum"
	ConstraintDate     Constraint = "date"
)

// Issue is a single field-level validation failure.
type Issue struct {
	Field      string
	Constraint Constraint
	Message    string
}

func (i Issue) String() string {
	return i.Field + ": " + i.Message
}

// SchemaValidationError reports why a document's metadata does not satisfy the
// blog schema. File is empty when the metadata was decoded without a source.
type SchemaValidationError struct {
	File   string
	Issues []Issue
}

func (e *SchemaValidationError) Error() string {
	var b strings.Builder
	b.WriteString("invalid frontmatter")
	if e.File != "" {
		b.WriteString(" in ")
		b.WriteString(e.File)
	}
	b.WriteString(": ")
	for i, is := range e.Issues {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(is.String())
	}
	return b.String()
}

// Field returns the first issue for field, if any.
func (e *SchemaValidationError) Field(field string) (Issue, bool) {
	for _, is := range e.Issues {
		if is.Field == field {
			return is, true
		}
	}
	return Issue{}, false
}

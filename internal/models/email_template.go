package models

// EmailTemplate is a named reusable subject/body pairing. Rows are seeded
// by migration and never mutated at runtime; the generator picks one by
// name, templates are not joined to jobs.
type EmailTemplate struct {
	Name              string `json:"name"`
	SubjectTemplate   string `json:"subject_template"`
	BodyKind          string `json:"body_kind"`
	RelocationFocused bool   `json:"relocation_focused"`
}

package domain

import "strings"

const maxTextLen = 200

// Todo is a single to-do entry.
//
// IDs are assigned once at creation by the owning store and are never
// reused or mutated. Text is immutable after creation; Completed is the
// only field that changes over a todo's lifetime.
type Todo struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// ValidateText checks a candidate todo text. Empty and whitespace-only
// text is rejected; callers at the UI boundary are expected to run this
// before ever reaching a store.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	if len(text) > maxTextLen {
		return ErrTextTooLong
	}
	return nil
}

package client

import "unicode/utf8"

const (
	// DraftMaxLines caps an entry at three gratitude statements.
	DraftMaxLines = 3
	// DraftMinLines keeps at least one editable line in the draft.
	DraftMinLines = 1
	// DraftMaxLineRunes caps each statement at 100 characters.
	DraftMaxLineRunes = 100
)

// Draft is an in-progress entry: between one and three bounded lines.
// The zero value is not usable; start with NewDraft or DraftFrom.
type Draft struct {
	lines []string
}

// NewDraft starts with a single empty line.
func NewDraft() *Draft {
	return &Draft{lines: []string{""}}
}

// DraftFrom seeds a draft with existing content, for editing. Content
// outside the line bounds is clamped to them.
func DraftFrom(content []string) *Draft {
	lines := make([]string, 0, DraftMaxLines)
	for _, l := range content {
		if len(lines) == DraftMaxLines {
			break
		}
		lines = append(lines, l)
	}
	if len(lines) == 0 {
		lines = append(lines, "")
	}
	return &Draft{lines: lines}
}

// Len returns the current number of lines.
func (d *Draft) Len() int { return len(d.lines) }

// Lines returns a copy of the draft content.
func (d *Draft) Lines() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

// AddLine appends an empty line, refusing beyond the three-line cap.
func (d *Draft) AddLine() bool {
	if len(d.lines) >= DraftMaxLines {
		return false
	}
	d.lines = append(d.lines, "")
	return true
}

// RemoveLine deletes the line at index i, refusing to drop below one line.
func (d *Draft) RemoveLine(i int) bool {
	if len(d.lines) <= DraftMinLines || i < 0 || i >= len(d.lines) {
		return false
	}
	d.lines = append(d.lines[:i], d.lines[i+1:]...)
	return true
}

// SetLine replaces the text of line i. Text over 100 runes is rejected
// outright, not truncated.
func (d *Draft) SetLine(i int, text string) bool {
	if i < 0 || i >= len(d.lines) {
		return false
	}
	if utf8.RuneCountInString(text) > DraftMaxLineRunes {
		return false
	}
	d.lines[i] = text
	return true
}

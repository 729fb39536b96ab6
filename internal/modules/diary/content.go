package diary

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	// MaxLines caps a diary entry at three gratitude statements.
	MaxLines = 3
	// MaxLineRunes caps each statement at 100 characters.
	MaxLineRunes = 100
)

var (
	errEmptyContent = errors.New("감사한 일을 한 가지 이상 적어주세요.")
	errTooManyLines = errors.New("감사한 일은 하루에 세 가지까지 기록할 수 있어요.")
	errLineTooLong  = errors.New("각 항목은 100자까지 적을 수 있어요.")
)

// NormalizeContent trims every line, drops empties preserving order, and
// validates the 1–3 line and 100-character bounds.
func NormalizeContent(lines []string) ([]string, error) {
	normalized := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if utf8.RuneCountInString(trimmed) > MaxLineRunes {
			return nil, errLineTooLong
		}
		normalized = append(normalized, trimmed)
	}

	if len(normalized) == 0 {
		return nil, errEmptyContent
	}
	if len(normalized) > MaxLines {
		return nil, errTooManyLines
	}
	return normalized, nil
}

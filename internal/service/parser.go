package service

import (
	"path/filepath"
	"strings"

	"github.com/teamdebug/quizard/internal/domain"
)

// extractText pulls plain text out of an uploaded file. Only text formats
// are supported; binary document formats are rejected rather than
// half-parsed.
func extractText(fileName string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".txt", ".text", ".md":
		return cleanText(string(data)), nil
	default:
		return "", domain.ErrUnsupportedFileType
	}
}

func cleanText(text string) string {
	// Strip a UTF-8 BOM if present.
	text = strings.TrimPrefix(text, "\ufeff")
	return strings.TrimSpace(text)
}

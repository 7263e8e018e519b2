// Package extract turns uploaded documents into plain text for quiz
// generation. The rest of the system only ever sees the string result.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FromFile extracts the text content of the document at path.
// PDF files are parsed page by page; any other file is read as UTF-8 text.
// An extraction that yields no text at all is an error, since it cannot
// seed a quiz.
func FromFile(path string) (string, error) {
	var text string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		text, err = fromPDF(path)
	default:
		text, err = fromTextFile(path)
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text could be extracted from %s", filepath.Base(path))
	}
	return text, nil
}

func fromTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	return string(data), nil
}

package extract

import (
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
	"github.com/pkg/errors"
)

var (
	ErrUnsupportedType = errors.New("unsupported document type")
	ErrEmptyDocument   = errors.New("document contains no text")
)

var supportedExtensions = map[string]bool{
	".docx": true,
	".doc":  true,
	".odt":  true,
	".rtf":  true,
	".pdf":  true,
	".txt":  true,
}

// Supported reports whether ReadText knows how to convert the file
func Supported(path string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(path))]
}

// ReadText returns the paragraph text of a document joined with newlines and lowercased.
func ReadText(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExtensions[ext] {
		return "", errors.Wrapf(ErrUnsupportedType, "read %s", filepath.Base(path))
	}

	var body string
	switch ext {
	case ".txt":
		content, err := os.ReadFile(path)
		if err != nil {
			return "", errors.Wrapf(err, "read text file %s", filepath.Base(path))
		}
		body = string(content)
	default:
		res, err := docconv.ConvertPath(path)
		if err != nil {
			return "", errors.Wrapf(err, "convert %s", filepath.Base(path))
		}
		body = res.Body
	}

	text := joinParagraphs(body)
	if text == "" {
		return "", errors.Wrapf(ErrEmptyDocument, "read %s", filepath.Base(path))
	}

	return Normalize(text), nil
}

func joinParagraphs(body string) string {
	body = strings.ReplaceAll(body, "\r\n", "\n")

	paragraphs := make([]string, 0)
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		paragraphs = append(paragraphs, line)
	}

	return strings.Join(paragraphs, "\n")
}

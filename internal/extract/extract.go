// Package extract turns uploaded files into raw text for the generation
// pipeline. Plain text is handled directly; PDF extraction is a pluggable
// collaborator supplied by the embedding application.
package extract

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	apperrors "github.com/flashj/flashj/internal/errors"
	"github.com/flashj/flashj/internal/logger"
)

// PDFTextReader extracts plain text from PDF content.
type PDFTextReader interface {
	ExtractText(r io.Reader) (string, error)
}

// Service dispatches uploads to the right extractor by file name and
// declared content type.
type Service struct {
	pdf PDFTextReader
}

// New creates an extraction service. pdf may be nil, in which case PDF
// uploads are rejected as unsupported.
func New(pdf PDFTextReader) *Service {
	return &Service{pdf: pdf}
}

// Extract returns the text content of the upload, or an
// UNSUPPORTED_FILE_TYPE error for anything that is not .txt or .pdf.
func (s *Service) Extract(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	log := logger.FromContext(ctx).WithPrefix("extract")
	log.Debug("extracting text: file=%s type=%s", filename, contentType)

	switch {
	case contentType == "text/plain" || strings.EqualFold(filepath.Ext(filename), ".txt"):
		data, err := io.ReadAll(r)
		if err != nil {
			return "", apperrors.NewInternalError(err)
		}
		return string(data), nil

	case contentType == "application/pdf" || strings.EqualFold(filepath.Ext(filename), ".pdf"):
		if s.pdf == nil {
			log.Warn("pdf upload rejected, no pdf extractor configured: %s", filename)
			return "", apperrors.NewUnsupportedFileError(filename)
		}
		text, err := s.pdf.ExtractText(r)
		if err != nil {
			log.Error("pdf extraction failed: %v", err)
			return "", apperrors.NewInternalError(err)
		}
		return text, nil

	default:
		log.Warn("unsupported upload: file=%s type=%s", filename, contentType)
		return "", apperrors.NewUnsupportedFileError(filename)
	}
}

package extract

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/flashj/flashj/internal/errors"
)

type fakePDF struct {
	text string
	err  error
}

func (f *fakePDF) ExtractText(r io.Reader) (string, error) {
	return f.text, f.err
}

func TestExtractPlainText(t *testing.T) {
	s := New(nil)

	tests := []struct {
		name        string
		filename    string
		contentType string
	}{
		{name: "by extension", filename: "notes.txt", contentType: "application/octet-stream"},
		{name: "by content type", filename: "notes", contentType: "text/plain"},
		{name: "uppercase extension", filename: "NOTES.TXT", contentType: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := s.Extract(context.Background(), tt.filename, tt.contentType, strings.NewReader("hello world"))
			require.NoError(t, err)
			assert.Equal(t, "hello world", text)
		})
	}
}

func TestExtractPDF(t *testing.T) {
	s := New(&fakePDF{text: "pdf content"})

	text, err := s.Extract(context.Background(), "doc.pdf", "application/pdf", strings.NewReader("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, "pdf content", text)
}

func TestExtractPDFWithoutReader(t *testing.T) {
	s := New(nil)

	_, err := s.Extract(context.Background(), "doc.pdf", "application/pdf", strings.NewReader("%PDF"))
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeUnsupportedFile, appErr.Code)
}

func TestExtractPDFFailure(t *testing.T) {
	s := New(&fakePDF{err: errors.New("corrupt file")})

	_, err := s.Extract(context.Background(), "doc.pdf", "application/pdf", strings.NewReader("%PDF"))
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeInternal, appErr.Code)
}

func TestExtractUnsupported(t *testing.T) {
	s := New(nil)

	tests := []string{"slides.pptx", "image.png", "archive.zip", "noextension"}
	for _, filename := range tests {
		t.Run(filename, func(t *testing.T) {
			_, err := s.Extract(context.Background(), filename, "application/octet-stream", strings.NewReader("data"))
			require.Error(t, err)

			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperrors.ErrCodeUnsupportedFile, appErr.Code)
			assert.Equal(t, 400, appErr.Status)
		})
	}
}

package services

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"time"

	"github.com/flashj/flashj/internal/db"
	"github.com/flashj/flashj/internal/errors"
	"github.com/flashj/flashj/internal/logger"
	"github.com/flashj/flashj/internal/models"
)

// exportVersion identifies the export file layout.
const exportVersion = "1.0"

//go:embed templates/print.html
var templatesFS embed.FS

var printTemplate = template.Must(template.ParseFS(templatesFS, "templates/print.html"))

// FlashcardExport is the flashcard export file payload. Import accepts the
// same layout, so an export round-trips field for field.
type FlashcardExport struct {
	Flashcards []models.Flashcard `json:"flashcards"`
	ExportedAt time.Time          `json:"exportedAt"`
	Version    string             `json:"version"`
}

// MCQExport is the question export file payload.
type MCQExport struct {
	MCQs       []models.MCQ `json:"mcqs"`
	ExportedAt time.Time    `json:"exportedAt"`
	Version    string       `json:"version"`
}

// ExportService produces export files and printable documents, and
// restores flashcards from a previous export.
type ExportService interface {
	ExportFlashcards(ctx context.Context) (*FlashcardExport, error)
	ExportMCQs(ctx context.Context) (*MCQExport, error)
	ImportFlashcards(ctx context.Context, data []byte) (int, error)
	PrintableFlashcards(ctx context.Context) ([]byte, error)
}

type exportService struct {
	db  *db.DB
	now func() time.Time
}

// NewExportService creates a new ExportService.
func NewExportService(database *db.DB) ExportService {
	return &exportService{db: database, now: time.Now}
}

func (s *exportService) ExportFlashcards(ctx context.Context) (*FlashcardExport, error) {
	cards, err := s.db.ListFlashcards(ctx, db.FlashcardFilter{})
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if cards == nil {
		cards = []models.Flashcard{}
	}
	return &FlashcardExport{
		Flashcards: cards,
		ExportedAt: s.now().UTC(),
		Version:    exportVersion,
	}, nil
}

func (s *exportService) ExportMCQs(ctx context.Context) (*MCQExport, error) {
	mcqs, err := s.db.ListMCQs(ctx, db.MCQFilter{})
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if mcqs == nil {
		mcqs = []models.MCQ{}
	}
	return &MCQExport{
		MCQs:       mcqs,
		ExportedAt: s.now().UTC(),
		Version:    exportVersion,
	}, nil
}

// ImportFlashcards restores cards from an export file. Cards whose ID is
// already stored are skipped; the returned count is the number inserted.
func (s *exportService) ImportFlashcards(ctx context.Context, data []byte) (int, error) {
	log := logger.FromContext(ctx)

	var export FlashcardExport
	if err := json.Unmarshal(data, &export); err != nil {
		return 0, errors.NewBadRequestError("invalid export file: not valid JSON")
	}
	if len(export.Flashcards) == 0 {
		return 0, errors.NewBadRequestError("export file contains no flashcards")
	}

	var fresh []models.Flashcard
	for _, card := range export.Flashcards {
		if card.ID == "" || card.Front == "" || card.Back == "" {
			return 0, errors.NewValidationError("flashcards", "each card needs id, front and back")
		}
		existing, err := s.db.GetFlashcard(ctx, card.ID)
		if err != nil {
			return 0, errors.NewInternalError(err)
		}
		if existing != nil {
			log.Debug("skipping already stored card on import: %s", card.ID)
			continue
		}
		if card.Tags == nil {
			card.Tags = []string{}
		}
		fresh = append(fresh, card)
	}

	if len(fresh) == 0 {
		return 0, nil
	}
	if err := s.db.InsertFlashcards(ctx, fresh); err != nil {
		log.Error("failed to import flashcards: %v", err)
		return 0, errors.NewInternalError(err)
	}
	log.Info("imported %d flashcards", len(fresh))
	return len(fresh), nil
}

// PrintableFlashcards renders the stored cards as a standalone HTML
// document suitable for printing.
func (s *exportService) PrintableFlashcards(ctx context.Context) ([]byte, error) {
	cards, err := s.db.ListFlashcards(ctx, db.FlashcardFilter{})
	if err != nil {
		return nil, errors.NewInternalError(err)
	}

	var buf bytes.Buffer
	err = printTemplate.Execute(&buf, struct {
		Cards      []models.Flashcard
		ExportedAt time.Time
	}{Cards: cards, ExportedAt: s.now().UTC()})
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return buf.Bytes(), nil
}

package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Dosada05/chess-registry/models"
	"github.com/Dosada05/chess-registry/repositories"
	"github.com/Dosada05/chess-registry/storage"
)

const (
	standingsSheet       = "Standings"
	standingsContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var standingsHeader = []any{
	"Rank", "Player", "Title", "Federation", "Rating",
	"Points", "Tiebreak 1", "Tiebreak 2", "Tiebreak 3", "Performance",
}

// StandingsExport describes an uploaded standings workbook.
type StandingsExport struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type ExportService interface {
	ExportStandings(ctx context.Context, tournamentID string) (*StandingsExport, error)
}

type exportService struct {
	tournamentRepo repositories.TournamentRepository
	resultRepo     repositories.ResultRepository
	uploader       storage.FileUploader
	listLimit      int
	now            func() time.Time
}

// NewExportService builds the standings exporter. With a nil uploader every
// export fails with ErrExportUnavailable.
func NewExportService(
	tournamentRepo repositories.TournamentRepository,
	resultRepo repositories.ResultRepository,
	uploader storage.FileUploader,
	listLimit int,
) ExportService {
	return &exportService{
		tournamentRepo: tournamentRepo,
		resultRepo:     resultRepo,
		uploader:       uploader,
		listLimit:      listLimit,
		now:            models.Now,
	}
}

func (s *exportService) ExportStandings(ctx context.Context, tournamentID string) (*StandingsExport, error) {
	if s.uploader == nil {
		return nil, ErrExportUnavailable
	}

	tournament, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament %s for export: %w", tournamentID, err)
	}

	results, err := s.resultRepo.ListByTournament(ctx, tournamentID, s.listLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list results of tournament %s for export: %w", tournamentID, err)
	}

	workbook, err := buildStandingsWorkbook(tournament, results)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("standings/%s/%s.xlsx", tournament.ID, s.now().Format("20060102T150405Z"))
	uploaded, err := s.uploader.Upload(ctx, key, standingsContentType, bytes.NewReader(workbook))
	if err != nil {
		return nil, fmt.Errorf("failed to upload standings of tournament %s: %w", tournamentID, err)
	}

	return &StandingsExport{Key: uploaded.Key, URL: uploaded.Location}, nil
}

// buildStandingsWorkbook renders the results, already ordered by rank, into a single-sheet xlsx file.
func buildStandingsWorkbook(tournament *models.Tournament, results []models.ResultWithPlayer) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", standingsSheet); err != nil {
		return nil, fmt.Errorf("failed to name standings sheet: %w", err)
	}

	title := fmt.Sprintf("%s, %s (%s to %s)", tournament.Name, tournament.Location,
		tournament.StartDate.Format(time.DateOnly), tournament.EndDate.Format(time.DateOnly))
	if err := f.SetCellValue(standingsSheet, "A1", title); err != nil {
		return nil, fmt.Errorf("failed to write standings title: %w", err)
	}
	if err := f.SetSheetRow(standingsSheet, "A2", &standingsHeader); err != nil {
		return nil, fmt.Errorf("failed to write standings header: %w", err)
	}

	for i, r := range results {
		var performance any
		if r.PerformanceRating != nil {
			performance = *r.PerformanceRating
		}
		row := []any{
			r.Rank, r.Player.Name, string(r.Player.Title), r.Player.Federation, r.Player.Rating,
			r.Points, r.Tiebreak1, r.Tiebreak2, r.Tiebreak3, performance,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+3)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(standingsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write standings row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render standings workbook: %w", err)
	}
	return buf.Bytes(), nil
}

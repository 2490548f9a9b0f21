package service

import (
	"fmt"
	"math"

	"github.com/lshigami/eduportal/internal/dto"
	"github.com/lshigami/eduportal/internal/repository"
	"github.com/rs/zerolog/log"
)

type ReportService interface {
	PaperReport(schoolID, paperID uint) (*dto.PaperReportResponse, error)
}

type reportService struct {
	paperRepo   repository.PaperRepository
	attemptRepo repository.AttemptRepository
}

func NewReportService(paperRepo repository.PaperRepository, attemptRepo repository.AttemptRepository) ReportService {
	return &reportService{paperRepo: paperRepo, attemptRepo: attemptRepo}
}

// PaperReport summarises the attempts on one of the school's papers. Score statistics cover completed attempts only.
func (s *reportService) PaperReport(schoolID, paperID uint) (*dto.PaperReportResponse, error) {
	paper, err := s.paperRepo.FindByID(paperID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPaperNotFound
		}
		return nil, fmt.Errorf("error finding paper %d: %w", paperID, err)
	}
	if paper.CreatedBy != schoolID {
		return nil, ErrPaperNotFound
	}

	attempts, err := s.attemptRepo.FindByPaper(paperID)
	if err != nil {
		log.Error().Err(err).Uint("paperID", paperID).Msg("Failed to load attempts for report")
		return nil, fmt.Errorf("error fetching attempts: %w", err)
	}

	report := &dto.PaperReportResponse{PaperID: paper.ID, Title: paper.Title, AttemptCount: len(attempts)}
	var sum float64
	high, low := math.Inf(-1), math.Inf(1)
	for _, a := range attempts {
		if !a.Completed() || a.Score == nil {
			continue
		}
		report.CompletedCount++
		sum += *a.Score
		high = math.Max(high, *a.Score)
		low = math.Min(low, *a.Score)
	}
	if report.CompletedCount > 0 {
		avg := math.Round(sum/float64(report.CompletedCount)*100) / 100
		report.AverageScore = &avg
		report.HighestScore = &high
		report.LowestScore = &low
	}
	return report, nil
}

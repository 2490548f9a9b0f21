package service

import (
	"fmt"
	"math"
)

const MaxPercentageScore float64 = 100.0

// ScoreConverterService turns a count of correct answers into the score stored on an attempt.
type ScoreConverterService interface {
	ConvertToPercentage(correct, total int) (float64, error)
}

type scoreConverterServiceImpl struct{}

func NewScoreConverterService() ScoreConverterService {
	return &scoreConverterServiceImpl{}
}

// ConvertToPercentage returns correct/total on a 0-100 scale rounded to two decimals.
func (s *scoreConverterServiceImpl) ConvertToPercentage(correct, total int) (float64, error) {
	if total <= 0 {
		return 0, fmt.Errorf("cannot score a paper with %d questions", total)
	}
	if correct < 0 || correct > total {
		return 0, fmt.Errorf("correct count %d is out of valid range (0-%d)", correct, total)
	}
	score := float64(correct) * MaxPercentageScore / float64(total)
	return math.Round(score*100) / 100, nil
}

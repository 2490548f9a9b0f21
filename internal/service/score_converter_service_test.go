package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToPercentage(t *testing.T) {
	converter := NewScoreConverterService()

	tests := []struct {
		correct, total int
		want           float64
	}{
		{3, 3, 100},
		{2, 3, 66.67},
		{1, 3, 33.33},
		{0, 4, 0},
		{1, 8, 12.5},
	}
	for _, tt := range tests {
		got, err := converter.ConvertToPercentage(tt.correct, tt.total)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%d/%d", tt.correct, tt.total)
	}
}

func TestConvertToPercentageRejectsBadInput(t *testing.T) {
	converter := NewScoreConverterService()

	_, err := converter.ConvertToPercentage(1, 0)
	assert.Error(t, err)
	_, err = converter.ConvertToPercentage(4, 3)
	assert.Error(t, err)
	_, err = converter.ConvertToPercentage(-1, 3)
	assert.Error(t, err)
}

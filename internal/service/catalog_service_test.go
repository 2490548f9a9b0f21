package service

import (
	"testing"

	"github.com/lshigami/eduportal/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSubjects(t *testing.T) {
	env := newTestEnv(t)

	subjects, err := env.catalog.GetSubjects()
	require.NoError(t, err)
	names := make([]string, 0, len(subjects))
	for _, s := range subjects {
		names = append(names, s.Name)
	}
	assert.ElementsMatch(t, []string{"Math", "English", "Science", "SST"}, names)
}

func TestGetQuestionsBySubject(t *testing.T) {
	env := newTestEnv(t)

	hidden, err := env.catalog.GetQuestionsBySubject(1, false)
	require.NoError(t, err)
	require.Len(t, hidden, 3)
	for _, q := range hidden {
		assert.Nil(t, q.Key)
	}

	revealed, err := env.catalog.GetQuestionsBySubject(1, true)
	require.NoError(t, err)
	require.Len(t, revealed, 3)
	for _, q := range revealed {
		assert.NotNil(t, q.Key)
	}

	empty, err := env.catalog.GetQuestionsBySubject(2, false)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = env.catalog.GetQuestionsBySubject(42, false)
	assert.ErrorIs(t, err, ErrSubjectNotFound)
}

func TestCreateQuestion(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.catalog.CreateQuestion(dto.CreateQuestionRequest{
		SubjectID: 2,
		Text:      "Pick the nouns",
		Type:      "checkbox",
		Options:   []string{"dog", "run", "city"},
		Key:       dto.AnswerKeyDTO{Choices: []string{"dog", "city"}},
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	require.NotNil(t, created.Key)
	assert.Equal(t, []string{"dog", "city"}, created.Key.Choices)

	_, err = env.catalog.CreateQuestion(dto.CreateQuestionRequest{
		SubjectID: 2,
		Text:      "Pick one",
		Type:      "objective",
		Options:   []string{"a", "b"},
		Key:       dto.AnswerKeyDTO{Choices: []string{"a"}},
	})
	assert.ErrorIs(t, err, ErrInvalidAnswerKey)

	_, err = env.catalog.CreateQuestion(dto.CreateQuestionRequest{SubjectID: 42, Text: "x", Type: "text", Key: dto.AnswerKeyDTO{Text: "y"}})
	assert.ErrorIs(t, err, ErrSubjectNotFound)
}

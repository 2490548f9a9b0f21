package database_test

import (
	"testing"

	"github.com/lshigami/eduportal/internal/database"
	"github.com/lshigami/eduportal/internal/model"
	"github.com/lshigami/eduportal/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedLoadsDemoData(t *testing.T) {
	db := testutil.NewSeededDB(t)

	tables := []struct {
		model interface{}
		want  int64
	}{
		{&model.User{}, 3},
		{&model.Student{}, 3},
		{&model.Subject{}, 4},
		{&model.Question{}, 4},
		{&model.Paper{}, 2},
		{&model.Attempt{}, 1},
	}
	for _, tt := range tables {
		var n int64
		require.NoError(t, db.Model(tt.model).Count(&n).Error)
		assert.Equal(t, tt.want, n, "%T", tt.model)
	}

	var school model.User
	require.NoError(t, db.Where("email = ?", "admin@school.com").First(&school).Error)
	assert.True(t, school.IsSchool())
	assert.True(t, school.IsVerified)
	assert.NoError(t, school.CheckPassword(testutil.SeedPassword))

	var paper model.Paper
	require.NoError(t, db.First(&paper, 1).Error)
	assert.Equal(t, []uint{1, 2, 3}, paper.QuestionIDs())

	var attempt model.Attempt
	require.NoError(t, db.First(&attempt, 1).Error)
	assert.True(t, attempt.Completed())
	require.NotNil(t, attempt.Score)
	assert.Equal(t, 100.0, *attempt.Score)
	assert.Equal(t, model.SubmittedAnswer{"2", "5"}, attempt.Answers()[2])
}

func TestSeedIsIdempotent(t *testing.T) {
	db := testutil.NewSeededDB(t)
	require.NoError(t, database.Seed(db, "other"))

	var users int64
	require.NoError(t, db.Model(&model.User{}).Count(&users).Error)
	assert.Equal(t, int64(3), users)

	var school model.User
	require.NoError(t, db.First(&school, 1).Error)
	assert.NoError(t, school.CheckPassword(testutil.SeedPassword))
}

func TestSeededQuestionsAreValid(t *testing.T) {
	db := testutil.NewSeededDB(t)

	var questions []model.Question
	require.NoError(t, db.Find(&questions).Error)
	for i := range questions {
		assert.NoError(t, questions[i].Validate(), "question %d", questions[i].ID)
	}
}

func TestNewIDsFollowSeededOnes(t *testing.T) {
	db := testutil.NewSeededDB(t)

	student := model.Student{SchoolID: 1, Username: "S100", Name: "New Kid", Status: model.StudentStatusActive}
	require.NoError(t, db.Create(&student).Error)
	assert.Greater(t, student.ID, uint(5))
}

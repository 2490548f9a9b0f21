package database

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/lshigami/eduportal/internal/model"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

//go:embed seed.yaml
var seedYAML []byte

type seedFixture struct {
	Users []struct {
		ID         uint           `yaml:"id"`
		Email      string         `yaml:"email"`
		Name       string         `yaml:"name"`
		UserType   model.UserType `yaml:"user_type"`
		SchoolID   *uint          `yaml:"school_id"`
		SchoolName string         `yaml:"school_name"`
		LogoURL    string         `yaml:"logo_url"`
		IsVerified bool           `yaml:"is_verified"`
	} `yaml:"users"`
	Students []struct {
		ID       uint                `yaml:"id"`
		SchoolID uint                `yaml:"school_id"`
		UserID   *uint               `yaml:"user_id"`
		Username string              `yaml:"username"`
		Name     string              `yaml:"name"`
		Status   model.StudentStatus `yaml:"status"`
	} `yaml:"students"`
	Subjects []struct {
		ID    uint   `yaml:"id"`
		Name  string `yaml:"name"`
		Color string `yaml:"color"`
	} `yaml:"subjects"`
	Questions []struct {
		ID        uint               `yaml:"id"`
		SubjectID uint               `yaml:"subject_id"`
		Text      string             `yaml:"text"`
		Type      model.QuestionType `yaml:"type"`
		Options   []string           `yaml:"options"`
		Key       struct {
			Choice  string   `yaml:"choice"`
			Choices []string `yaml:"choices"`
			Pairing []string `yaml:"pairing"`
			Text    string   `yaml:"text"`
		} `yaml:"key"`
	} `yaml:"questions"`
	Papers []struct {
		ID          uint      `yaml:"id"`
		Title       string    `yaml:"title"`
		SubjectID   uint      `yaml:"subject_id"`
		QuestionIDs []uint    `yaml:"question_ids"`
		CreatedBy   uint      `yaml:"created_by"`
		CreatedAt   time.Time `yaml:"created_at"`
	} `yaml:"papers"`
	Attempts []struct {
		ID        uint              `yaml:"id"`
		StudentID uint              `yaml:"student_id"`
		PaperID   uint              `yaml:"paper_id"`
		StartTime time.Time         `yaml:"start_time"`
		EndTime   *time.Time        `yaml:"end_time"`
		Correct   int               `yaml:"correct"`
		Total     int               `yaml:"total"`
		Score     *float64          `yaml:"score"`
		Answers   map[uint][]string `yaml:"answers"`
	} `yaml:"attempts"`
}

func loadFixture() (*seedFixture, error) {
	var fixture seedFixture
	if err := yaml.Unmarshal(seedYAML, &fixture); err != nil {
		return nil, fmt.Errorf("failed to parse seed fixture: %w", err)
	}
	return &fixture, nil
}

// Seed loads the demo school, its roster, the subject catalog, sample papers and one finished attempt.
// Every seeded account gets the same password. Nothing happens if any user already exists.
func Seed(db *gorm.DB, password string) error {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		log.Info().Int64("users", count).Msg("Database already populated, skipping demo seed")
		return nil
	}

	fixture, err := loadFixture()
	if err != nil {
		return err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for _, u := range fixture.Users {
			user := model.User{
				ID:         u.ID,
				Email:      u.Email,
				Name:       u.Name,
				UserType:   u.UserType,
				SchoolID:   u.SchoolID,
				SchoolName: u.SchoolName,
				LogoURL:    u.LogoURL,
				IsVerified: u.IsVerified,
			}
			if err := user.SetPassword(password); err != nil {
				return fmt.Errorf("failed to hash password for %s: %w", u.Email, err)
			}
			if err := tx.Create(&user).Error; err != nil {
				return fmt.Errorf("failed to seed user %s: %w", u.Email, err)
			}
		}
		for _, s := range fixture.Subjects {
			subject := model.Subject{ID: s.ID, Name: s.Name, Color: s.Color}
			if err := tx.Create(&subject).Error; err != nil {
				return fmt.Errorf("failed to seed subject %s: %w", s.Name, err)
			}
		}
		for _, s := range fixture.Students {
			student := model.Student{ID: s.ID, SchoolID: s.SchoolID, UserID: s.UserID, Username: s.Username, Name: s.Name, Status: s.Status}
			if err := tx.Create(&student).Error; err != nil {
				return fmt.Errorf("failed to seed student %s: %w", s.Username, err)
			}
		}
		for _, q := range fixture.Questions {
			question := model.Question{
				ID:        q.ID,
				SubjectID: q.SubjectID,
				Text:      q.Text,
				Type:      q.Type,
				Options:   datatypes.NewJSONType(q.Options),
				Key: datatypes.NewJSONType(model.AnswerKey{
					Choice:  q.Key.Choice,
					Choices: q.Key.Choices,
					Pairing: q.Key.Pairing,
					Text:    q.Key.Text,
				}),
			}
			if err := question.Validate(); err != nil {
				return fmt.Errorf("seed question %d: %w", q.ID, err)
			}
			if err := tx.Create(&question).Error; err != nil {
				return fmt.Errorf("failed to seed question %d: %w", q.ID, err)
			}
		}
		for _, p := range fixture.Papers {
			paper := model.Paper{
				ID:           p.ID,
				Title:        p.Title,
				SubjectID:    p.SubjectID,
				QuestionList: datatypes.NewJSONType(p.QuestionIDs),
				CreatedBy:    p.CreatedBy,
				CreatedAt:    p.CreatedAt,
			}
			if err := tx.Create(&paper).Error; err != nil {
				return fmt.Errorf("failed to seed paper %s: %w", p.Title, err)
			}
		}
		for _, a := range fixture.Attempts {
			sheet := make(model.AnswerSheet, len(a.Answers))
			for qid, ans := range a.Answers {
				sheet[qid] = ans
			}
			attempt := model.Attempt{
				ID:        a.ID,
				StudentID: a.StudentID,
				PaperID:   a.PaperID,
				StartTime: a.StartTime,
				EndTime:   a.EndTime,
				Score:     a.Score,
				Correct:   a.Correct,
				Total:     a.Total,
				Sheet:     datatypes.NewJSONType(sheet),
			}
			if err := tx.Create(&attempt).Error; err != nil {
				return fmt.Errorf("failed to seed attempt %d: %w", a.ID, err)
			}
		}
		return syncSequences(tx)
	})
	if err != nil {
		log.Error().Err(err).Msg("Demo seed failed")
		return err
	}

	log.Info().
		Int("users", len(fixture.Users)).
		Int("students", len(fixture.Students)).
		Int("questions", len(fixture.Questions)).
		Int("papers", len(fixture.Papers)).
		Msg("Demo data seeded")
	return nil
}

// syncSequences moves postgres id sequences past the explicitly inserted ids.
func syncSequences(tx *gorm.DB) error {
	if tx.Dialector.Name() != DriverPostgres {
		return nil
	}
	for _, table := range []string{"users", "subjects", "students", "questions", "papers", "attempts"} {
		stmt := fmt.Sprintf("SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT COALESCE(MAX(id), 1) FROM %s))", table, table)
		if err := tx.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to sync sequence for %s: %w", table, err)
		}
	}
	return nil
}

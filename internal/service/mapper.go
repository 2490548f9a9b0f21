package service

import (
	"github.com/jinzhu/copier"
	"github.com/lshigami/eduportal/internal/dto"
	"github.com/lshigami/eduportal/internal/model"
	"github.com/rs/zerolog/log"
)

func toUserResponse(user *model.User) dto.UserResponse {
	var resp dto.UserResponse
	if err := copier.Copy(&resp, user); err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Failed to copy User model to UserResponse")
	}
	resp.UserType = string(user.UserType)
	return resp
}

func toStudentResponse(student *model.Student) dto.StudentResponse {
	var resp dto.StudentResponse
	if err := copier.Copy(&resp, student); err != nil {
		log.Error().Err(err).Uint("studentID", student.ID).Msg("Failed to copy Student model to StudentResponse")
	}
	resp.Status = string(student.Status)
	return resp
}

func toStudentResponses(students []model.Student) []dto.StudentResponse {
	resp := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		resp = append(resp, toStudentResponse(&students[i]))
	}
	return resp
}

// toQuestionResponse copies a question. The key is included only when revealKey is set.
func toQuestionResponse(question *model.Question, revealKey bool) dto.QuestionResponse {
	resp := dto.QuestionResponse{
		ID:        question.ID,
		SubjectID: question.SubjectID,
		Text:      question.Text,
		Type:      string(question.Type),
		Options:   question.OptionList(),
	}
	if revealKey {
		var key dto.AnswerKeyDTO
		if err := copier.Copy(&key, question.AnswerKey()); err != nil {
			log.Error().Err(err).Uint("questionID", question.ID).Msg("Failed to copy answer key")
		}
		resp.Key = &key
	}
	return resp
}

func toPaperResponse(paper *model.Paper) dto.PaperResponse {
	var resp dto.PaperResponse
	if err := copier.Copy(&resp, paper); err != nil {
		log.Error().Err(err).Uint("paperID", paper.ID).Msg("Failed to copy Paper model to PaperResponse")
	}
	resp.QuestionIDs = paper.QuestionIDs()
	if resp.QuestionIDs == nil {
		resp.QuestionIDs = []uint{}
	}
	return resp
}

func toAttemptResponse(attempt *model.Attempt) dto.AttemptResponse {
	var resp dto.AttemptResponse
	if err := copier.Copy(&resp, attempt); err != nil {
		log.Error().Err(err).Uint("attemptID", attempt.ID).Msg("Failed to copy Attempt model to AttemptResponse")
	}
	resp.Answers = attempt.Answers()
	if resp.Answers == nil {
		resp.Answers = model.AnswerSheet{}
	}
	return resp
}

func toAttemptResponses(attempts []model.Attempt) []dto.AttemptResponse {
	resp := make([]dto.AttemptResponse, 0, len(attempts))
	for i := range attempts {
		resp = append(resp, toAttemptResponse(&attempts[i]))
	}
	return resp
}

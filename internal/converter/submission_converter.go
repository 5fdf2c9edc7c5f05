package converter

import (
	"lenglogs/internal/delivery/dto"
	"lenglogs/internal/domain/entity"
)

func SubmissionToResponse(submission *entity.FormSubmission) *dto.SubmissionResponse {
	if submission == nil {
		return nil
	}

	response := &dto.SubmissionResponse{
		ID:          submission.ID,
		FormID:      submission.FormID,
		SubmittedBy: submission.SubmittedBy,
		SubmittedAt: submission.SubmittedAt,
		Status:      string(submission.Status),
	}
	if submission.Form != nil {
		response.FormTitle = submission.Form.Title
	}
	if submission.Author != nil {
		response.SubmittedByName = submission.Author.FullName()
	}
	if len(submission.Answers) > 0 {
		response.Answers = make([]dto.AnswerResponse, len(submission.Answers))
		for i, a := range submission.Answers {
			response.Answers[i] = dto.AnswerResponse{
				QuestionID:  a.QuestionID,
				AnswerValue: a.AnswerValue,
			}
		}
	}

	return response
}

func SubmissionsToResponses(submissions []entity.FormSubmission) []dto.SubmissionResponse {
	responses := make([]dto.SubmissionResponse, len(submissions))
	for i := range submissions {
		responses[i] = *SubmissionToResponse(&submissions[i])
	}
	return responses
}

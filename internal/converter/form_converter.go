package converter

import (
	"lenglogs/internal/delivery/dto"
	"lenglogs/internal/domain/entity"

	"github.com/google/uuid"
)

func QuestionToResponse(q *entity.Question) dto.QuestionResponse {
	return dto.QuestionResponse{
		ID:           q.ID,
		QuestionText: q.QuestionText,
		QuestionType: string(q.QuestionType),
		Options:      q.Options,
		Required:     q.Required,
		OrderIndex:   q.OrderIndex,
		DefaultValue: q.QuestionType.DefaultValue(),
	}
}

// FormToResponse converts a Form entity (with questions loaded) to FormResponse DTO
func FormToResponse(form *entity.Form) *dto.FormResponse {
	if form == nil {
		return nil
	}

	questions := make([]dto.QuestionResponse, len(form.Questions))
	for i := range form.Questions {
		questions[i] = QuestionToResponse(&form.Questions[i])
	}

	return &dto.FormResponse{
		ID:          form.ID,
		Title:       form.Title,
		Description: form.Description,
		FacilityID:  form.FacilityID,
		CreatedBy:   form.CreatedBy,
		IsActive:    form.IsActive,
		Questions:   questions,
		CreatedAt:   form.CreatedAt,
		UpdatedAt:   form.UpdatedAt,
	}
}

func FormsToListItems(forms []entity.Form) []dto.FormListItem {
	items := make([]dto.FormListItem, len(forms))
	for i, form := range forms {
		items[i] = dto.FormListItem{
			ID:          form.ID,
			Title:       form.Title,
			Description: form.Description,
			CreatedAt:   form.CreatedAt,
			UpdatedAt:   form.UpdatedAt,
		}
	}
	return items
}

// QuestionsFromRequest builds question rows for a form, numbering them by
// position. Options are kept only for multiple choice questions.
func QuestionsFromRequest(formID uuid.UUID, reqs []dto.QuestionRequest) []entity.Question {
	questions := make([]entity.Question, len(reqs))
	for i, req := range reqs {
		qt := entity.QuestionType(req.QuestionType)
		var options entity.StringList
		if qt == entity.QuestionTypeMultipleChoice {
			options = entity.CleanOptions(req.Options)
		}
		questions[i] = entity.Question{
			FormID:       formID,
			QuestionText: req.QuestionText,
			QuestionType: qt,
			Options:      options,
			Required:     req.Required,
			OrderIndex:   i,
		}
	}
	return questions
}

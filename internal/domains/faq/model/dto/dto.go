package dto

import (
	"jumpy/internal/domains/faq/model"
	gDto "jumpy/shared/dto"
	gModel "jumpy/shared/model"
	"jumpy/shared/timezone"

	"github.com/google/uuid"
)

type CreateFAQRequest struct {
	Question  string `json:"question"   validate:"required"`
	Answer    string `json:"answer"     validate:"required"`
	SortOrder int    `json:"sort_order"`
	IsActive  bool   `json:"is_active"`
}

func (c *CreateFAQRequest) ToModel(user string) model.FAQ {
	return model.FAQ{
		ID:        uuid.NewString(),
		Question:  c.Question,
		Answer:    c.Answer,
		SortOrder: c.SortOrder,
		IsActive:  c.IsActive,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateFAQRequest struct {
	Question  string `db:"question"   json:"question"`
	Answer    string `db:"answer"     json:"answer"`
	SortOrder *int   `db:"sort_order" json:"sort_order"`
	IsActive  *bool  `db:"is_active"  json:"is_active"`
}

type FAQResponse struct {
	ID        string `json:"id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	SortOrder int    `json:"sort_order"`
	IsActive  bool   `json:"is_active"`
	gDto.Metadata
}

func (r *FAQResponse) FromModel(m model.FAQ) {
	r.ID = m.ID
	r.Question = m.Question
	r.Answer = m.Answer
	r.SortOrder = m.SortOrder
	r.IsActive = m.IsActive
	r.Metadata.FromModel(m.Metadata)
}

type GetFAQsResponse struct {
	FAQs      []FAQResponse `json:"faqs"`
	TotalData int           `json:"total_data"`
}

func (r *GetFAQsResponse) FromModels(models []model.FAQ) {
	r.TotalData = len(models)

	r.FAQs = make([]FAQResponse, len(models))
	for i, m := range models {
		r.FAQs[i].FromModel(m)
	}
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

func ActiveOnlyFilter() gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldIsActive,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

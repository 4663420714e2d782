package dto

import (
	"jumpy/internal/domains/testimonial/model"
	gDto "jumpy/shared/dto"
	gModel "jumpy/shared/model"
	"jumpy/shared/timezone"

	"github.com/google/uuid"
)

type CreateTestimonialRequest struct {
	CustomerName string `json:"customer_name" validate:"required,min=2,max=120"`
	Location     string `json:"location"      validate:"omitempty,max=120"`
	Content      string `json:"content"       validate:"required"`
	Rating       int    `json:"rating"        validate:"omitempty,gte=1,lte=5"`
	Featured     bool   `json:"featured"`
	IsActive     bool   `json:"is_active"`
}

func (c *CreateTestimonialRequest) ToModel(user string) model.Testimonial {
	rating := c.Rating
	if rating == 0 {
		rating = 5
	}

	return model.Testimonial{
		ID:           uuid.NewString(),
		CustomerName: c.CustomerName,
		Location:     c.Location,
		Content:      c.Content,
		Rating:       rating,
		Featured:     c.Featured,
		IsActive:     c.IsActive,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTestimonialRequest struct {
	CustomerName string `db:"customer_name" json:"customer_name" validate:"omitempty,min=2,max=120"`
	Location     string `db:"location"      json:"location"      validate:"omitempty,max=120"`
	Content      string `db:"content"       json:"content"`
	Rating       *int   `db:"rating"        json:"rating"        validate:"omitempty,gte=1,lte=5"`
	Featured     *bool  `db:"featured"      json:"featured"`
	IsActive     *bool  `db:"is_active"     json:"is_active"`
}

type TestimonialResponse struct {
	ID           string `json:"id"`
	CustomerName string `json:"customer_name"`
	Location     string `json:"location"`
	Content      string `json:"content"`
	Rating       int    `json:"rating"`
	Featured     bool   `json:"featured"`
	IsActive     bool   `json:"is_active"`
	gDto.Metadata
}

func (r *TestimonialResponse) FromModel(m model.Testimonial) {
	r.ID = m.ID
	r.CustomerName = m.CustomerName
	r.Location = m.Location
	r.Content = m.Content
	r.Rating = m.Rating
	r.Featured = m.Featured
	r.IsActive = m.IsActive
	r.Metadata.FromModel(m.Metadata)
}

type GetTestimonialsResponse struct {
	Testimonials []TestimonialResponse `json:"testimonials"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetTestimonialsResponse) FromModels(models []model.Testimonial) {
	r.TotalData = len(models)

	r.Testimonials = make([]TestimonialResponse, len(models))
	for i, m := range models {
		r.Testimonials[i].FromModel(m)
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

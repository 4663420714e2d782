package dto

import (
	"time"

	"jumpy/internal/domains/inquiry/model"
	"jumpy/shared/constant"
	gDto "jumpy/shared/dto"
	gModel "jumpy/shared/model"
	"jumpy/shared/timezone"

	"github.com/google/uuid"
)

// ContactRequest is the public quote form payload.
type ContactRequest struct {
	Name           string `json:"name"            validate:"required"`
	Phone          string `json:"phone"           validate:"required"`
	Email          string `json:"email"           validate:"required,email"`
	Address        string `json:"address"         validate:"required"`
	Address2       string `json:"address2"`
	City           string `json:"city"            validate:"required"`
	State          string `json:"state"           validate:"required"`
	Zip            string `json:"zip"             validate:"required"`
	RequestedDate  string `json:"requested_date"  validate:"required,datetime=2006-01-02"`
	RequestedTime  string `json:"requested_time"  validate:"required"`
	RequestedJumpy string `json:"requested_jumpy" validate:"required"`
	ReferralSource string `json:"referral_source"`
	EventDetails   string `json:"event_details"`
}

func (c *ContactRequest) ToModel() model.Inquiry {
	requestedDate, _ := time.Parse(constant.DateOnlyFormat, c.RequestedDate)

	return model.Inquiry{
		ID:             uuid.NewString(),
		Name:           c.Name,
		Phone:          c.Phone,
		Email:          c.Email,
		Address:        c.Address,
		Address2:       c.Address2,
		City:           c.City,
		State:          c.State,
		Zip:            c.Zip,
		RequestedDate:  requestedDate,
		RequestedTime:  c.RequestedTime,
		RequestedJumpy: c.RequestedJumpy,
		ReferralSource: c.ReferralSource,
		EventDetails:   c.EventDetails,
		Status:         model.StatusNew,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.ContextGuest,
			ModifiedBy: constant.ContextGuest,
		},
	}
}

// ContactResponse acknowledges a submitted inquiry.
type ContactResponse struct {
	Success bool `json:"success"`
}

// UpdateInquiryRequest carries the back-office edits: status moves and notes.
type UpdateInquiryRequest struct {
	Status string `db:"status" json:"status" validate:"omitempty,oneof=new contacted booked completed cancelled"`
	Notes  string `db:"notes"  json:"notes"`
}

type InquiryResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	Address2       string `json:"address2"`
	City           string `json:"city"`
	State          string `json:"state"`
	Zip            string `json:"zip"`
	RequestedDate  string `json:"requested_date"`
	RequestedTime  string `json:"requested_time"`
	RequestedJumpy string `json:"requested_jumpy"`
	ReferralSource string `json:"referral_source"`
	EventDetails   string `json:"event_details"`
	Status         string `json:"status"`
	Notes          string `json:"notes"`
	gDto.Metadata
}

func (r *InquiryResponse) FromModel(m model.Inquiry) {
	r.ID = m.ID
	r.Name = m.Name
	r.Phone = m.Phone
	r.Email = m.Email
	r.Address = m.Address
	r.Address2 = m.Address2
	r.City = m.City
	r.State = m.State
	r.Zip = m.Zip
	r.RequestedDate = m.RequestedDate.Format(constant.DateOnlyFormat)
	r.RequestedTime = m.RequestedTime
	r.RequestedJumpy = m.RequestedJumpy
	r.ReferralSource = m.ReferralSource
	r.EventDetails = m.EventDetails
	r.Status = m.Status
	r.Notes = m.Notes
	r.Metadata.FromModel(m.Metadata)
}

type GetInquiriesResponse struct {
	Inquiries []InquiryResponse `json:"inquiries"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
	Stats     map[string]int    `json:"stats"`
}

// AdminListFilter carries the inquiry listing dimensions. Absent values and
// the `all` sentinel disable the corresponding predicate.
type AdminListFilter struct {
	Search string
	Status string
}

func (f AdminListFilter) ToFilterGroup() gDto.FilterGroup {
	group := gDto.FilterGroup{}

	if f.Search != "" {
		group.Filters = append(group.Filters, searchFilter(f.Search))
	}

	if f.Status != "" && f.Status != constant.FilterValueAll {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Value:    f.Status,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	return group
}

func searchFilter(term string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{ArgName: "q_name", Field: model.FieldName, Value: term, Operator: gDto.FilterOperatorLike, Table: model.TableName},
			gDto.Filter{ArgName: "q_email", Field: model.FieldEmail, Value: term, Operator: gDto.FilterOperatorLike, Table: model.TableName},
			gDto.Filter{ArgName: "q_phone", Field: model.FieldPhone, Value: term, Operator: gDto.FilterOperatorLike, Table: model.TableName},
			gDto.Filter{ArgName: "q_requested_jumpy", Field: model.FieldRequestedJumpy, Value: term, Operator: gDto.FilterOperatorLike, Table: model.TableName},
			gDto.Filter{ArgName: "q_city", Field: model.FieldCity, Value: term, Operator: gDto.FilterOperatorLike, Table: model.TableName},
		},
	}
}

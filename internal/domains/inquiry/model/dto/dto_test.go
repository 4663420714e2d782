package dto_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jumpy/internal/domains/inquiry/model"
	"jumpy/internal/domains/inquiry/model/dto"
	"jumpy/shared/constant"
	"jumpy/shared/failure"
	"jumpy/shared/validator"
)

func validContactRequest() dto.ContactRequest {
	return dto.ContactRequest{
		Name:           "Dana R.",
		Phone:          "512-555-0134",
		Email:          "dana@example.com",
		Address:        "100 Main St",
		City:           "Round Rock",
		State:          "TX",
		Zip:            "78664",
		RequestedDate:  "2026-09-12",
		RequestedTime:  "10:00 AM",
		RequestedJumpy: "Big Castle",
	}
}

func TestContactRequestRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		blank func(r *dto.ContactRequest)
	}{
		{name: "name", blank: func(r *dto.ContactRequest) { r.Name = "" }},
		{name: "phone", blank: func(r *dto.ContactRequest) { r.Phone = "" }},
		{name: "email", blank: func(r *dto.ContactRequest) { r.Email = "" }},
		{name: "address", blank: func(r *dto.ContactRequest) { r.Address = "" }},
		{name: "city", blank: func(r *dto.ContactRequest) { r.City = "" }},
		{name: "state", blank: func(r *dto.ContactRequest) { r.State = "" }},
		{name: "zip", blank: func(r *dto.ContactRequest) { r.Zip = "" }},
		{name: "requested_date", blank: func(r *dto.ContactRequest) { r.RequestedDate = "" }},
		{name: "requested_time", blank: func(r *dto.ContactRequest) { r.RequestedTime = "" }},
		{name: "requested_jumpy", blank: func(r *dto.ContactRequest) { r.RequestedJumpy = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validContactRequest()
			tt.blank(&req)

			err := validator.ValidateStruct(&req)

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestContactRequestOptionalFieldsMayBeAbsent(t *testing.T) {
	// address2, referral_source and event_details stay zero-valued.
	req := validContactRequest()

	assert.NoError(t, validator.ValidateStruct(&req))
}

func TestContactRequestMalformedValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *dto.ContactRequest)
	}{
		{name: "email without at sign", mutate: func(r *dto.ContactRequest) { r.Email = "not-an-email" }},
		{name: "us-style date", mutate: func(r *dto.ContactRequest) { r.RequestedDate = "09/12/2026" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validContactRequest()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestContactRequestToModel(t *testing.T) {
	req := validContactRequest()
	req.EventDetails = "Backyard birthday"

	m := req.ToModel()

	assert.NotEmpty(t, m.ID)
	assert.Equal(t, model.StatusNew, m.Status)
	assert.Equal(t, constant.ContextGuest, m.CreatedBy)
	assert.Equal(t, constant.ContextGuest, m.ModifiedBy)
	assert.Equal(t, "2026-09-12", m.RequestedDate.Format(constant.DateOnlyFormat))
	assert.Equal(t, "Backyard birthday", m.EventDetails)
}

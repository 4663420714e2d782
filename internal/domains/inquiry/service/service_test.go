package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"jumpy/config"
	emailMocks "jumpy/infras/email/mocks"
	kafkaMocks "jumpy/infras/kafka/mocks"
	"jumpy/infras/otel/mocks"
	inquiryMocks "jumpy/internal/domains/inquiry/mocks"
	"jumpy/internal/domains/inquiry/model"
	"jumpy/internal/domains/inquiry/model/dto"
	"jumpy/internal/domains/inquiry/service"
	cacheMocks "jumpy/shared/cache/mocks"
	"jumpy/shared/constant"
	gDto "jumpy/shared/dto"
	"jumpy/shared/failure"
	gModel "jumpy/shared/model"
	"jumpy/shared/timezone"
)

type testMocks struct {
	repo   *inquiryMocks.MockInquiry
	cache  *cacheMocks.MockRedisCache
	mailer *emailMocks.MockMailer
	kafka  *kafkaMocks.MockClient
}

func newService(t *testing.T) (service.Inquiry, testMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := testMocks{
		repo:   inquiryMocks.NewMockInquiry(ctrl),
		cache:  cacheMocks.NewMockRedisCache(ctrl),
		mailer: emailMocks.NewMockMailer(ctrl),
		kafka:  kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Contact.NotifyEmail = "office@example.com"
	cfg.Contact.Phone = "555-0100"
	cfg.Kafka.InquiryTopic = "inquiry-events"

	svc := service.New(m.repo, cfg, m.cache, mocks.NewOtel(), m.mailer, m.kafka)

	return svc, m
}

func sampleContactRequest() dto.ContactRequest {
	return dto.ContactRequest{
		Name:           "Jamie Rivera",
		Phone:          "555-0123",
		Email:          "jamie@example.com",
		Address:        "12 Oak St",
		City:           "Springfield",
		State:          "IL",
		Zip:            "62704",
		RequestedDate:  "2026-09-12",
		RequestedTime:  "10:00 AM",
		RequestedJumpy: "Big Castle",
		EventDetails:   "Backyard birthday party",
	}
}

func sampleInquiry(id, status string) model.Inquiry {
	return model.Inquiry{
		ID:             id,
		Name:           "Jamie Rivera",
		Phone:          "555-0123",
		Email:          "jamie@example.com",
		City:           "Springfield",
		RequestedDate:  timezone.Now(),
		RequestedJumpy: "Big Castle",
		Status:         status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.ContextGuest,
			ModifiedBy: constant.ContextGuest,
		},
	}
}

func TestInquiryService_Create(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m testMocks)
		wantErr   bool
	}{
		{
			name: "submission triggers emails and event",
			setupMock: func(m testMocks) {
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, inquiry model.Inquiry) error {
						assert.Equal(t, model.StatusNew, inquiry.Status)
						assert.NotEmpty(t, inquiry.ID)

						return nil
					})

				m.mailer.EXPECT().
					Send(gomock.Any(), gomock.Any()).
					Return(nil).
					Times(2)

				m.kafka.EXPECT().
					SendMessages(gomock.Any(), "inquiry-events", gomock.Any()).
					Return(nil)

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "email failure does not fail the submission",
			setupMock: func(m testMocks) {
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				m.mailer.EXPECT().
					Send(gomock.Any(), gomock.Any()).
					Return(errors.New("smtp unreachable")).
					Times(2)

				m.kafka.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("broker down"))

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "repository error fails the submission",
			setupMock: func(m testMocks) {
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			id, err := svc.Create(context.Background(), sampleContactRequest())

			time.Sleep(50 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, id)
			}
		})
	}
}

func TestInquiryService_GetAll(t *testing.T) {
	svc, m := newService(t)

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	m.repo.EXPECT().
		GetAllCounted(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Inquiry{sampleInquiry("id-1", model.StatusNew)}, 31, nil)

	m.repo.EXPECT().
		CountByStatus(gomock.Any()).
		Return([]model.StatusCount{
			{Status: model.StatusNew, Total: 20},
			{Status: model.StatusBooked, Total: 11},
		}, nil)

	m.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	params := gDto.QueryParams{Page: 1, Limit: constant.InquiryPageSize}

	res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, 31, res.TotalData)
	assert.Equal(t, 3, res.TotalPage)
	assert.Equal(t, 20, res.Stats[model.StatusNew])
	assert.Equal(t, 11, res.Stats[model.StatusBooked])
	assert.Equal(t, 0, res.Stats[model.StatusCancelled])
}

func TestInquiryService_Update(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateInquiryRequest
		setupMock func(m testMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "status change publishes an event",
			req:  dto.UpdateInquiryRequest{Status: model.StatusContacted},
			setupMock: func(m testMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(sampleInquiry("id-1", model.StatusNew), nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.kafka.EXPECT().
					SendMessages(gomock.Any(), "inquiry-events", gomock.Any()).
					Return(nil)

				m.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "same status publishes nothing",
			req:  dto.UpdateInquiryRequest{Status: model.StatusNew, Notes: "called twice"},
			setupMock: func(m testMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(sampleInquiry("id-1", model.StatusNew), nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name:      "unknown status is rejected",
			req:       dto.UpdateInquiryRequest{Status: "archived"},
			setupMock: func(_ testMocks) {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "inquiry not found",
			req:  dto.UpdateInquiryRequest{Status: model.StatusBooked},
			setupMock: func(m testMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Inquiry{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

			err := svc.Update(ctx, tt.req, "id-1")

			time.Sleep(50 * time.Millisecond)

			if tt.wantErr {
				require.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInquiryService_ExportCSV(t *testing.T) {
	svc, m := newService(t)

	inquiry := sampleInquiry("id-1", model.StatusNew)
	inquiry.Name = `Pat "PJ" O'Brien, Jr.`
	inquiry.EventDetails = "Company picnic, 40 kids"

	m.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Inquiry{inquiry}, nil)

	data, filename, err := svc.ExportCSV(context.Background())

	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, "ID,Name,Email,Phone,Requested Date,Requested Inflatable,Event Details,Status,Created At", lines[0])
	assert.Contains(t, lines[1], `"Pat ""PJ"" O'Brien, Jr."`)
	assert.Contains(t, lines[1], `"Company picnic, 40 kids"`)
	assert.True(t, strings.HasPrefix(lines[1], "id-1,"), "id stays unquoted")
	assert.Contains(t, lines[1], ",new,")
	assert.NotContains(t, lines[1], `"new"`)

	assert.True(t, strings.HasPrefix(filename, "inquiries-"))
	assert.True(t, strings.HasSuffix(filename, ".csv"))
}

func TestInquiryService_ExportCSVRepositoryError(t *testing.T) {
	svc, m := newService(t)

	m.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("query error"))

	_, _, err := svc.ExportCSV(context.Background())

	assert.Error(t, err)
}

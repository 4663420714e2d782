package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"jumpy/config"
	"jumpy/infras/otel/mocks"
	testimonialMocks "jumpy/internal/domains/testimonial/mocks"
	"jumpy/internal/domains/testimonial/model"
	"jumpy/internal/domains/testimonial/model/dto"
	"jumpy/internal/domains/testimonial/service"
	cacheMocks "jumpy/shared/cache/mocks"
	"jumpy/shared/constant"
	gDto "jumpy/shared/dto"
	"jumpy/shared/failure"
	gModel "jumpy/shared/model"
	"jumpy/shared/timezone"
)

func newService(t *testing.T) (service.Testimonial, *testimonialMocks.MockTestimonial, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := testimonialMocks.NewMockTestimonial(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockCache
}

func allowInvalidation(cache *cacheMocks.MockRedisCache) {
	cache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
}

func sampleTestimonial(id string, featured bool) model.Testimonial {
	return model.Testimonial{
		ID:           id,
		CustomerName: "Dana R.",
		Location:     "Round Rock, TX",
		Content:      "The kids did not leave the bounce house all afternoon.",
		Rating:       5,
		Featured:     featured,
		IsActive:     true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "admin",
			ModifiedBy: "admin",
		},
	}
}

func TestTestimonialService_Create(t *testing.T) {
	tests := []struct {
		name       string
		req        dto.CreateTestimonialRequest
		wantRating int
	}{
		{
			name: "omitted rating defaults to five stars",
			req: dto.CreateTestimonialRequest{
				CustomerName: "Dana R.",
				Content:      "Great experience.",
				IsActive:     true,
			},
			wantRating: 5,
		},
		{
			name: "explicit rating kept",
			req: dto.CreateTestimonialRequest{
				CustomerName: "Sam K.",
				Content:      "Slide was a hit.",
				Rating:       4,
				IsActive:     true,
			},
			wantRating: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache := newService(t)

			repo.EXPECT().
				Insert(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, m model.Testimonial) error {
					assert.Equal(t, tt.wantRating, m.Rating)
					assert.Equal(t, "test-user-id", m.CreatedBy)
					assert.NotEmpty(t, m.ID)

					return nil
				})

			allowInvalidation(cache)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

			id, err := svc.Create(ctx, tt.req)

			time.Sleep(10 * time.Millisecond)

			require.NoError(t, err)
			assert.NotEmpty(t, id)
		})
	}
}

func TestTestimonialService_GetAllPublic(t *testing.T) {
	svc, repo, cache := newService(t)

	cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), dto.ActiveOnlyFilter()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Testimonial, error) {
			assert.Equal(t, model.DefaultSortBy, params.SortBy)
			assert.Equal(t, model.DefaultSortDir, params.SortDir)

			return []model.Testimonial{sampleTestimonial("id-1", true), sampleTestimonial("id-2", false)}, nil
		})

	cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.GetAllPublic(context.Background())

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
}

func TestTestimonialService_Update(t *testing.T) {
	featured := true

	tests := []struct {
		name      string
		req       dto.UpdateTestimonialRequest
		setupMock func(t *testing.T, repo *testimonialMocks.MockTestimonial, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "partial update only touches provided fields",
			req:  dto.UpdateTestimonialRequest{Featured: &featured},
			setupMock: func(t *testing.T, repo *testimonialMocks.MockTestimonial, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Contains(t, fields, "featured")
						assert.NotContains(t, fields, "customer_name")
						assert.NotContains(t, fields, "rating")

						return nil
					})

				allowInvalidation(cache)
			},
			wantErr: false,
		},
		{
			name: "unknown testimonial",
			req:  dto.UpdateTestimonialRequest{Featured: &featured},
			setupMock: func(_ *testing.T, repo *testimonialMocks.MockTestimonial, _ *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache := newService(t)
			tt.setupMock(t, repo, cache)

			err := svc.Update(context.Background(), tt.req, "id-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

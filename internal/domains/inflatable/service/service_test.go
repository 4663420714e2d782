package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"jumpy/config"
	"jumpy/infras/otel/mocks"
	s3Mocks "jumpy/infras/s3/mocks"
	inflatableMocks "jumpy/internal/domains/inflatable/mocks"
	"jumpy/internal/domains/inflatable/model"
	"jumpy/internal/domains/inflatable/model/dto"
	"jumpy/internal/domains/inflatable/service"
	cacheMocks "jumpy/shared/cache/mocks"
	"jumpy/shared/constant"
	gDto "jumpy/shared/dto"
	gModel "jumpy/shared/model"
	"jumpy/shared/timezone"
)

func newService(t *testing.T) (service.Inflatable, *inflatableMocks.MockInflatable, *cacheMocks.MockRedisCache, *s3Mocks.MockS3) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := inflatableMocks.NewMockInflatable(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "test-bucket"

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel(), mockS3)

	return svc, mockRepo, mockCache, mockS3
}

func sampleInflatable(id string, active bool) model.Inflatable {
	return model.Inflatable{
		ID:       id,
		Slug:     "big-castle",
		Name:     "Big Castle",
		Category: "castle-bouncers",
		IsActive: active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "admin",
			ModifiedBy: "admin",
		},
	}
}

func TestInflatableService_Create(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *inflatableMocks.MockInflatable, cache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func(repo *inflatableMocks.MockInflatable, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "repository error",
			setupMock: func(repo *inflatableMocks.MockInflatable, _ *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache, _ := newService(t)
			tt.setupMock(repo, cache)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

			req := dto.CreateInflatableRequest{
				Slug:     "big-castle",
				Name:     "Big Castle",
				Category: "castle-bouncers",
			}

			id, err := svc.Create(ctx, req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, id)
			}
		})
	}
}

func TestInflatableService_GetAll(t *testing.T) {
	tests := []struct {
		name       string
		setupMock  func(repo *inflatableMocks.MockInflatable, cache *cacheMocks.MockRedisCache)
		wantErr    bool
		wantTotal  int
		wantPages  int
	}{
		{
			name: "rows and total in one round trip",
			setupMock: func(repo *inflatableMocks.MockInflatable, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					GetAllCounted(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Inflatable{sampleInflatable("id-1", true)}, 21, nil)

				cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantTotal: 21,
			wantPages: 3,
		},
		{
			name: "repository error",
			setupMock: func(repo *inflatableMocks.MockInflatable, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					GetAllCounted(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, 0, errors.New("query error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache, _ := newService(t)
			tt.setupMock(repo, cache)

			params := gDto.QueryParams{Page: 1, Limit: constant.InflatablePageSize}

			res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, res.TotalData)
				assert.Equal(t, tt.wantPages, res.TotalPage)
			}
		})
	}
}

func TestInflatableService_GetBySlug(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *inflatableMocks.MockInflatable, cache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "active inflatable found",
			setupMock: func(repo *inflatableMocks.MockInflatable, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(sampleInflatable("id-1", true), nil)

				cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "hidden inflatable behaves as missing",
			setupMock: func(repo *inflatableMocks.MockInflatable, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Inflatable{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache, _ := newService(t)
			tt.setupMock(repo, cache)

			res, err := svc.GetBySlug(context.Background(), "big-castle")

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "big-castle", res.Slug)
			}
		})
	}
}

func TestInflatableService_Toggle(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *inflatableMocks.MockInflatable, cache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "successful toggle",
			setupMock: func(repo *inflatableMocks.MockInflatable, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					ToggleFlag(gomock.Any(), model.FieldIsActive, gomock.Any(), gomock.Any()).
					Return(nil)

				cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "toggle twice restores original state",
			setupMock: func(repo *inflatableMocks.MockInflatable, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil).
					Times(2)

				repo.EXPECT().
					ToggleFlag(gomock.Any(), model.FieldIsActive, gomock.Any(), gomock.Any()).
					Return(nil).
					Times(2)

				cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "inflatable not found",
			setupMock: func(repo *inflatableMocks.MockInflatable, _ *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache, _ := newService(t)
			tt.setupMock(repo, cache)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

			err := svc.Toggle(ctx, "id-1")
			if tt.name == "toggle twice restores original state" && err == nil {
				err = svc.Toggle(ctx, "id-1")
			}

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInflatableService_SetActive(t *testing.T) {
	tests := []struct {
		name      string
		active    bool
		setupMock func(repo *inflatableMocks.MockInflatable, cache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name:   "explicit activate writes the given value",
			active: true,
			setupMock: func(repo *inflatableMocks.MockInflatable, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, true, fields[model.FieldIsActive])

						return nil
					})

				cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name:   "explicit hide writes false",
			active: false,
			setupMock: func(repo *inflatableMocks.MockInflatable, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, false, fields[model.FieldIsActive])

						return nil
					})

				cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache, _ := newService(t)
			tt.setupMock(repo, cache)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

			err := svc.SetActive(ctx, "id-1", tt.active)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInflatableService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *inflatableMocks.MockInflatable, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3)
		wantErr   bool
	}{
		{
			name: "deletion cleans up gallery blobs",
			setupMock: func(repo *inflatableMocks.MockInflatable, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				inflatable := sampleInflatable("id-1", true)
				inflatable.GalleryImageURLs = []string{"https://cdn.example.com/test-bucket/images/a.jpg"}

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(inflatable, nil)

				repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				s3.EXPECT().
					GetObjectNameFromURL(gomock.Any(), gomock.Any()).
					Return("images/a.jpg")

				s3.EXPECT().
					DeleteFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "inflatable not found",
			setupMock: func(repo *inflatableMocks.MockInflatable, _ *cacheMocks.MockRedisCache, _ *s3Mocks.MockS3) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Inflatable{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache, s3 := newService(t)
			tt.setupMock(repo, cache, s3)

			err := svc.Delete(context.Background(), "id-1")

			time.Sleep(50 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

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
	packageMocks "jumpy/internal/domains/partypackage/mocks"
	"jumpy/internal/domains/partypackage/model"
	"jumpy/internal/domains/partypackage/model/dto"
	"jumpy/internal/domains/partypackage/service"
	cacheMocks "jumpy/shared/cache/mocks"
	"jumpy/shared/constant"
	gModel "jumpy/shared/model"
	"jumpy/shared/timezone"
)

func newService(t *testing.T) (service.PartyPackage, *packageMocks.MockPartyPackage, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := packageMocks.NewMockPartyPackage(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockCache
}

func samplePackage(id string, active bool) model.PartyPackage {
	return model.PartyPackage{
		ID:       id,
		Name:     "Backyard Birthday",
		Price:    399,
		Items:    model.PackageItems{{Quantity: 1, Name: "Large Bounce House"}},
		IsActive: active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "admin",
			ModifiedBy: "admin",
		},
	}
}

func TestPartyPackageService_GetAllPublic(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *packageMocks.MockPartyPackage, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantTotal int
	}{
		{
			name: "cache miss hits repository with active filter",
			setupMock: func(repo *packageMocks.MockPartyPackage, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), dto.ActiveOnlyFilter()).
					Return([]model.PartyPackage{samplePackage("id-1", true)}, nil)

				cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantTotal: 1,
		},
		{
			name: "cache hit skips repository",
			setupMock: func(_ *packageMocks.MockPartyPackage, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, dest any) error {
						res := dest.(*dto.GetPartyPackagesResponse)
						res.FromModels([]model.PartyPackage{samplePackage("id-1", true)})

						return nil
					})
			},
			wantErr:   false,
			wantTotal: 1,
		},
		{
			name: "repository error",
			setupMock: func(repo *packageMocks.MockPartyPackage, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("query error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache := newService(t)
			tt.setupMock(repo, cache)

			res, err := svc.GetAllPublic(context.Background())

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, res.TotalData)
			}
		})
	}
}

func TestPartyPackageService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *packageMocks.MockPartyPackage, cache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "package found",
			setupMock: func(repo *packageMocks.MockPartyPackage, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(samplePackage("id-1", true), nil)

				cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "package not found",
			setupMock: func(repo *packageMocks.MockPartyPackage, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.PartyPackage{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache := newService(t)
			tt.setupMock(repo, cache)

			res, err := svc.Get(context.Background(), "id-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "id-1", res.ID)
			}
		})
	}
}

func TestPartyPackageService_Toggle(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *packageMocks.MockPartyPackage, cache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "successful toggle",
			setupMock: func(repo *packageMocks.MockPartyPackage, cache *cacheMocks.MockRedisCache) {
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
			name: "package not found",
			setupMock: func(repo *packageMocks.MockPartyPackage, _ *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache := newService(t)
			tt.setupMock(repo, cache)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

			err := svc.Toggle(ctx, "id-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

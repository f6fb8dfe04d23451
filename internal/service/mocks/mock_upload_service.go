package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"modupload/internal/model"
	"modupload/internal/service"
)

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) Upload(ctx context.Context, mod *model.Module, resources []model.Resource, subscriptionPlanID int) (*service.UploadResult, error) {
	args := m.Called(ctx, mod, resources, subscriptionPlanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadResult), args.Error(1)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"modupload/internal/model"
	"modupload/internal/repository"
)

type MockModuleRepository struct {
	mock.Mock
}

func (m *MockModuleRepository) Create(ctx context.Context, mod *model.Module, subscriptionPlanID int) (int64, error) {
	args := m.Called(ctx, mod, subscriptionPlanID)
	return args.Get(0).(int64), args.Error(1)
}

type MockResourceRepository struct {
	mock.Mock
}

func (m *MockResourceRepository) Create(ctx context.Context, rec *repository.ResourceRecord) (int64, error) {
	args := m.Called(ctx, rec)
	if f, ok := args.Get(0).(func(context.Context, *repository.ResourceRecord) int64); ok {
		return f(ctx, rec), args.Error(1)
	}
	return args.Get(0).(int64), args.Error(1)
}

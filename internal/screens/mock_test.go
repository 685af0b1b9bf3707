package screens

import (
	"context"

	"logistica/internal/alert"
	"logistica/internal/api"
	"logistica/internal/movements"
	"logistica/pkg/models"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, *api.Response, error) {
	args := m.Called(ctx, req)
	var out *models.LoginResponse
	if v := args.Get(0); v != nil {
		out = v.(*models.LoginResponse)
	}
	return out, response(args, 1), args.Error(2)
}

func (m *MockBackend) Register(ctx context.Context, req models.RegisterUserRequest) (*api.Response, error) {
	args := m.Called(ctx, req)
	return response(args, 0), args.Error(1)
}

func (m *MockBackend) ListUsers(ctx context.Context) ([]models.User, *api.Response, error) {
	args := m.Called(ctx)
	var out []models.User
	if v := args.Get(0); v != nil {
		out = v.([]models.User)
	}
	return out, response(args, 1), args.Error(2)
}

func (m *MockBackend) ToggleUserStatus(ctx context.Context, id models.ID) (*api.Response, error) {
	args := m.Called(ctx, id)
	return response(args, 0), args.Error(1)
}

func (m *MockBackend) ListProducts(ctx context.Context) ([]models.Product, *api.Response, error) {
	args := m.Called(ctx)
	var out []models.Product
	if v := args.Get(0); v != nil {
		out = v.([]models.Product)
	}
	return out, response(args, 1), args.Error(2)
}

func (m *MockBackend) ListBranches(ctx context.Context) ([]models.Branch, *api.Response, error) {
	args := m.Called(ctx)
	var out []models.Branch
	if v := args.Get(0); v != nil {
		out = v.([]models.Branch)
	}
	return out, response(args, 1), args.Error(2)
}

func (m *MockBackend) ListMovements(ctx context.Context) ([]models.Movement, *api.Response, error) {
	args := m.Called(ctx)
	var out []models.Movement
	if v := args.Get(0); v != nil {
		out = v.([]models.Movement)
	}
	return out, response(args, 1), args.Error(2)
}

func (m *MockBackend) CreateMovement(ctx context.Context, req models.CreateMovementRequest) (models.ID, *api.Response, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.ID), response(args, 1), args.Error(2)
}

func (m *MockBackend) StartMovement(ctx context.Context, id models.ID, file api.FormFile, fields []api.Field) (*api.Response, error) {
	args := m.Called(ctx, id, file, fields)
	return response(args, 0), args.Error(1)
}

func (m *MockBackend) EndMovement(ctx context.Context, id models.ID, file api.FormFile, fields []api.Field) (*api.Response, error) {
	args := m.Called(ctx, id, file, fields)
	return response(args, 0), args.Error(1)
}

func response(args mock.Arguments, i int) *api.Response {
	if v := args.Get(i); v != nil {
		return v.(*api.Response)
	}
	return nil
}

type MockImageSource struct {
	mock.Mock
}

func (m *MockImageSource) Capture(ctx context.Context) (*movements.Image, error) {
	args := m.Called(ctx)
	var out *movements.Image
	if v := args.Get(0); v != nil {
		out = v.(*movements.Image)
	}
	return out, args.Error(1)
}

func newGateway() (*alert.Gateway, *alert.Recorder) {
	rec := &alert.Recorder{}
	return alert.NewGateway(rec, zap.NewNop()), rec
}

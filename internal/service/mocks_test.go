package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hubsite/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockCatalogService is a mock implementation of CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListBikes(ctx context.Context) ([]model.Bike, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Bike), args.Error(1)
}

func (m *MockCatalogService) GetBike(ctx context.Context, id uint) (*model.Bike, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bike), args.Error(1)
}

func (m *MockCatalogService) ListProducts(ctx context.Context) ([]model.PetProduct, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PetProduct), args.Error(1)
}

func (m *MockCatalogService) ProductsByIDs(ctx context.Context, ids []uint) ([]model.PetProduct, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PetProduct), args.Error(1)
}

// MockBookingRepository is a mock implementation of repository.BookingRepository.
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *model.BikeBooking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id uint) (*model.BikeBooking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BikeBooking), args.Error(1)
}

// MockOrderRepository is a mock implementation of repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateWithItems(ctx context.Context, order *model.PetOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uint) (*model.PetOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PetOrder), args.Error(1)
}

// MockDataHubRepository is a mock implementation of repository.DataHubRepository.
type MockDataHubRepository struct {
	mock.Mock
}

func (m *MockDataHubRepository) Create(ctx context.Context, record *model.DataHubRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockDataHubRepository) List(ctx context.Context) ([]model.DataHubRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DataHubRecord), args.Error(1)
}

func (m *MockDataHubRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockContactRepository is a mock implementation of repository.ContactRepository.
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, message *model.ContactMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

// MockSink is a mock implementation of mail.Sink.
type MockSink struct {
	mock.Mock
}

func (m *MockSink) Send(to, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}

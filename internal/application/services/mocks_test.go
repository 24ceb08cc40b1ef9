package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/circleage/backend/internal/domain/entities"
	"github.com/circleage/backend/internal/domain/providers"
)

type mockContactRepo struct {
	mock.Mock
}

func (m *mockContactRepo) Create(ctx context.Context, contact *entities.EmergencyContact) error {
	return m.Called(ctx, contact).Error(0)
}

func (m *mockContactRepo) GetByID(ctx context.Context, id string) (*entities.EmergencyContact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.EmergencyContact), args.Error(1)
}

func (m *mockContactRepo) ListActive(ctx context.Context, userID string) ([]*entities.EmergencyContact, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.EmergencyContact), args.Error(1)
}

func (m *mockContactRepo) Update(ctx context.Context, contact *entities.EmergencyContact) error {
	return m.Called(ctx, contact).Error(0)
}

func (m *mockContactRepo) Deactivate(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockAlertRepo struct {
	mock.Mock
}

func (m *mockAlertRepo) Create(ctx context.Context, alert *entities.AlertHistory) error {
	return m.Called(ctx, alert).Error(0)
}

func (m *mockAlertRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*entities.AlertHistory, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.AlertHistory), args.Error(1)
}

type mockSMSProvider struct {
	mock.Mock
}

func (m *mockSMSProvider) SendAlert(ctx context.Context, phoneNumber, message string) (*providers.SMSReceipt, error) {
	args := m.Called(ctx, phoneNumber, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*providers.SMSReceipt), args.Error(1)
}

type mockMedicationRepo struct {
	mock.Mock
}

func (m *mockMedicationRepo) Create(ctx context.Context, medication *entities.Medication) error {
	return m.Called(ctx, medication).Error(0)
}

func (m *mockMedicationRepo) GetByID(ctx context.Context, id string) (*entities.Medication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Medication), args.Error(1)
}

func (m *mockMedicationRepo) ListActive(ctx context.Context, userID string) ([]*entities.Medication, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Medication), args.Error(1)
}

func (m *mockMedicationRepo) Update(ctx context.Context, medication *entities.Medication) error {
	return m.Called(ctx, medication).Error(0)
}

func (m *mockMedicationRepo) Deactivate(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockMedicationRepo) LogDose(ctx context.Context, log *entities.MedicationLog) error {
	return m.Called(ctx, log).Error(0)
}

func (m *mockMedicationRepo) FindOverdue(ctx context.Context, userID string, thresholdMinutes int) ([]*entities.OverdueMedication, error) {
	args := m.Called(ctx, userID, thresholdMinutes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.OverdueMedication), args.Error(1)
}

func (m *mockMedicationRepo) ListUserIDsWithActiveMedications(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type mockBuddyRepo struct {
	mock.Mock
}

func (m *mockBuddyRepo) Upsert(ctx context.Context, profile *entities.BuddyProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *mockBuddyRepo) GetByUser(ctx context.Context, userID string) (*entities.BuddyProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BuddyProfile), args.Error(1)
}

func (m *mockBuddyRepo) ListActiveExcept(ctx context.Context, userID string) ([]*entities.BuddyProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.BuddyProfile), args.Error(1)
}

func (m *mockBuddyRepo) Deactivate(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/circleage/backend/internal/application/services"
	"github.com/circleage/backend/internal/domain/entities"
	"github.com/circleage/backend/internal/domain/providers"
)

func newAdherenceFixture() (*services.AdherenceService, *mockMedicationRepo, *mockContactRepo, *mockAlertRepo, *mockSMSProvider) {
	medications := &mockMedicationRepo{}
	contacts := &mockContactRepo{}
	alerts := &mockAlertRepo{}
	sms := &mockSMSProvider{}
	alertService := services.NewAlertService(contacts, alerts, sms, nil, nil)
	return services.NewAdherenceService(medications, alertService), medications, contacts, alerts, sms
}

func TestAdherenceService_CheckUser_NoOverdue(t *testing.T) {
	service, medications, contacts, _, _ := newAdherenceFixture()

	medications.On("FindOverdue", mock.Anything, "user-1", 120).
		Return([]*entities.OverdueMedication{}, nil)

	overdue, err := service.CheckUser(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Empty(t, overdue)
	contacts.AssertNotCalled(t, "ListActive", mock.Anything, mock.Anything)
}

func TestAdherenceService_CheckUser_DispatchesCombinedMessage(t *testing.T) {
	service, medications, contacts, alerts, sms := newAdherenceFixture()

	medications.On("FindOverdue", mock.Anything, "user-1", 120).
		Return([]*entities.OverdueMedication{
			{MedicationID: "m-1", Name: "Metformin", Dosage: "500mg", ScheduleTime: "08:00", MinutesLate: 185},
			{MedicationID: "m-2", Name: "Lisinopril", Dosage: "10mg", ScheduleTime: "09:00", MinutesLate: 125},
		}, nil)

	contacts.On("ListActive", mock.Anything, "user-1").
		Return([]*entities.EmergencyContact{
			{ID: "c-1", Name: "Alice", PhoneNumber: "+6591110000", IsPrimary: true},
		}, nil)

	var recorded *entities.AlertHistory
	alerts.On("Create", mock.Anything, mock.AnythingOfType("*entities.AlertHistory")).
		Run(func(args mock.Arguments) {
			recorded = args.Get(1).(*entities.AlertHistory)
		}).
		Return(nil)

	sms.On("SendAlert", mock.Anything, "+6591110000", "You may have missed your medication: Metformin, Lisinopril").
		Return(&providers.SMSReceipt{SID: "SM1"}, nil)

	overdue, err := service.CheckUser(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Len(t, overdue, 2)
	require.NotNil(t, recorded)
	assert.Equal(t, entities.AlertMissedMedication, recorded.AlertType)
	assert.Equal(t, "You may have missed your medication: Metformin, Lisinopril", recorded.Message)
	sms.AssertExpectations(t)
}

func TestAdherenceService_CheckUser_DispatchFailureStillReturnsList(t *testing.T) {
	service, medications, contacts, _, _ := newAdherenceFixture()

	medications.On("FindOverdue", mock.Anything, "user-1", 120).
		Return([]*entities.OverdueMedication{
			{MedicationID: "m-1", Name: "Metformin", MinutesLate: 130},
		}, nil)

	// No active contacts: dispatch fails, the overdue list still comes back.
	contacts.On("ListActive", mock.Anything, "user-1").
		Return([]*entities.EmergencyContact{}, nil)

	overdue, err := service.CheckUser(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Len(t, overdue, 1)
}

func TestAdherenceService_Sweep_ContinuesPastFailures(t *testing.T) {
	service, medications, contacts, alerts, sms := newAdherenceFixture()

	medications.On("ListUserIDsWithActiveMedications", mock.Anything).
		Return([]string{"user-1", "user-2"}, nil)

	medications.On("FindOverdue", mock.Anything, "user-1", 120).
		Return(nil, assert.AnError)
	medications.On("FindOverdue", mock.Anything, "user-2", 120).
		Return([]*entities.OverdueMedication{{MedicationID: "m-9", Name: "Aspirin", MinutesLate: 121}}, nil)

	contacts.On("ListActive", mock.Anything, "user-2").
		Return([]*entities.EmergencyContact{
			{ID: "c-2", Name: "Ben", PhoneNumber: "+6592220000"},
		}, nil)
	alerts.On("Create", mock.Anything, mock.Anything).Return(nil)
	sms.On("SendAlert", mock.Anything, "+6592220000", "You may have missed your medication: Aspirin").
		Return(&providers.SMSReceipt{SID: "SM2"}, nil)

	err := service.Sweep(context.Background())

	require.NoError(t, err)
	sms.AssertExpectations(t)
}

package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/circleage/backend/internal/application/services"
	"github.com/circleage/backend/internal/domain/entities"
	"github.com/circleage/backend/internal/domain/providers"
	apperrors "github.com/circleage/backend/pkg/errors"
)

func TestAlertService_TriggerAlert_NoContacts(t *testing.T) {
	contacts := &mockContactRepo{}
	alerts := &mockAlertRepo{}
	sms := &mockSMSProvider{}
	service := services.NewAlertService(contacts, alerts, sms, nil, nil)

	contacts.On("ListActive", mock.Anything, "user-1").
		Return([]*entities.EmergencyContact{}, nil)

	result, err := service.TriggerAlert(context.Background(), "user-1", entities.AlertManualSOS, "help")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypePrecondition))
	assert.Contains(t, err.Error(), "no emergency contacts found")
	alerts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	sms.AssertNotCalled(t, "SendAlert", mock.Anything, mock.Anything, mock.Anything)
}

func TestAlertService_TriggerAlert_OneFailureDoesNotAbort(t *testing.T) {
	contacts := &mockContactRepo{}
	alerts := &mockAlertRepo{}
	sms := &mockSMSProvider{}
	service := services.NewAlertService(contacts, alerts, sms, nil, nil)

	// ListActive already returns primary-first then name order.
	contacts.On("ListActive", mock.Anything, "user-1").
		Return([]*entities.EmergencyContact{
			{ID: "c-1", Name: "Alice", PhoneNumber: "+6591110000", IsPrimary: true},
			{ID: "c-2", Name: "Ben", PhoneNumber: "+6592220000"},
		}, nil)

	var recorded *entities.AlertHistory
	alerts.On("Create", mock.Anything, mock.AnythingOfType("*entities.AlertHistory")).
		Run(func(args mock.Arguments) {
			recorded = args.Get(1).(*entities.AlertHistory)
		}).
		Return(nil)

	sms.On("SendAlert", mock.Anything, "+6591110000", "took a fall").
		Return(nil, fmt.Errorf("twilio returned status 500")).Once()
	sms.On("SendAlert", mock.Anything, "+6592220000", "took a fall").
		Return(&providers.SMSReceipt{SID: "SM1", To: "+6592220000"}, nil).Once()

	result, err := service.TriggerAlert(context.Background(), "user-1", entities.AlertManualSOS, "took a fall")

	require.NoError(t, err)
	require.NotNil(t, recorded)
	assert.Equal(t, 2, recorded.ContactsNotified)
	assert.Equal(t, entities.AlertManualSOS, recorded.AlertType)

	assert.Equal(t, recorded.ID, result.AlertID)
	assert.Equal(t, 2, result.ContactsNotified)
	require.Len(t, result.Results, 2)

	assert.Equal(t, "c-1", result.Results[0].ContactID)
	assert.Equal(t, entities.NotificationFailed, result.Results[0].Status)
	assert.Contains(t, result.Results[0].Error, "twilio returned status 500")

	assert.Equal(t, "c-2", result.Results[1].ContactID)
	assert.Equal(t, entities.NotificationSent, result.Results[1].Status)
	assert.Empty(t, result.Results[1].Error)

	sms.AssertExpectations(t)
}

func TestAlertService_TriggerAlert_SimulatedReceipt(t *testing.T) {
	contacts := &mockContactRepo{}
	alerts := &mockAlertRepo{}
	sms := &mockSMSProvider{}
	service := services.NewAlertService(contacts, alerts, sms, nil, nil)

	contacts.On("ListActive", mock.Anything, "user-1").
		Return([]*entities.EmergencyContact{
			{ID: "c-1", Name: "Alice", PhoneNumber: "+6591110000"},
		}, nil)
	alerts.On("Create", mock.Anything, mock.Anything).Return(nil)
	sms.On("SendAlert", mock.Anything, "+6591110000", "checking in").
		Return(&providers.SMSReceipt{To: "+6591110000", Simulated: true}, nil)

	result, err := service.TriggerAlert(context.Background(), "user-1", entities.AlertAbnormalReading, "checking in")

	require.NoError(t, err)
	require.Len(t, result.Results, 1)
	assert.Equal(t, entities.NotificationSimulated, result.Results[0].Status)
}

func TestAlertService_TriggerAlert_HistoryWriteFailure(t *testing.T) {
	contacts := &mockContactRepo{}
	alerts := &mockAlertRepo{}
	sms := &mockSMSProvider{}
	service := services.NewAlertService(contacts, alerts, sms, nil, nil)

	contacts.On("ListActive", mock.Anything, "user-1").
		Return([]*entities.EmergencyContact{
			{ID: "c-1", Name: "Alice", PhoneNumber: "+6591110000"},
		}, nil)
	alerts.On("Create", mock.Anything, mock.Anything).
		Return(apperrors.NewInternalError("failed to create alert history record", fmt.Errorf("db down")))

	_, err := service.TriggerAlert(context.Background(), "user-1", entities.AlertManualSOS, "help")

	require.Error(t, err)
	sms.AssertNotCalled(t, "SendAlert", mock.Anything, mock.Anything, mock.Anything)
}

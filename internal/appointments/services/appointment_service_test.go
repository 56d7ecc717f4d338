package services

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aut0ban/vetclinic-backend/internal/appointments/models"
)

func newMockService(t *testing.T) (*AppointmentService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewAppointmentService(db), mock
}

func validInput() CreateInput {
	return CreateInput{
		IDAccount:  3,
		DoctorID:   "2",
		ServiceID:  "4",
		PetName:    "Barsik",
		PetSpecies: "cat",
		PetAge:     "5",
		Date:       "2025-03-10",
		Time:       "14:30",
		Notes:      "limping on the left paw",
	}
}

func TestCreateCombinesDateAndTime(t *testing.T) {
	svc, mock := newMockService(t)

	wantDateTime := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO Appointment")).
		WithArgs(3, 2, 4, "Barsik", "cat", 5, wantDateTime, "pending", "limping on the left paw").
		WillReturnResult(sqlmock.NewResult(11, 1))

	id, err := svc.Create(validInput())
	assert.NoError(t, err)
	assert.Equal(t, int64(11), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMalformedDate(t *testing.T) {
	svc, mock := newMockService(t)

	input := validInput()
	input.Date = "not-a-date"

	_, err := svc.Create(input)
	assert.ErrorIs(t, err, ErrInvalidSchedule)
	// The record must not be created.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMalformedTime(t *testing.T) {
	svc, mock := newMockService(t)

	input := validInput()
	input.Time = "half past two"

	_, err := svc.Create(input)
	assert.ErrorIs(t, err, ErrInvalidSchedule)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMalformedPetAge(t *testing.T) {
	svc, mock := newMockService(t)

	input := validInput()
	input.PetAge = "young"

	_, err := svc.Create(input)
	assert.ErrorIs(t, err, ErrInvalidSchedule)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusAllowedTransition(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT Status FROM Appointment WHERE ID_Appointment = ?")).
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{"Status"}).AddRow("pending"))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE Appointment SET Status = ? WHERE ID_Appointment = ?")).
		WithArgs("confirmed", 9).
		WillReturnResult(sqlmock.NewResult(0, 1))

	from, err := svc.UpdateStatus(9, models.StatusConfirmed)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusPending, from)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusRejectedTransition(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT Status FROM Appointment WHERE ID_Appointment = ?")).
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{"Status"}).AddRow("completed"))

	_, err := svc.UpdateStatus(9, models.StatusConfirmed)
	var invalid ErrInvalidTransition
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, models.StatusCompleted, invalid.From)
	assert.Equal(t, models.StatusConfirmed, invalid.To)
	// No update may run for a rejected transition.
	assert.NoError(t, mock.ExpectationsWereMet())
}

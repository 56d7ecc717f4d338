package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aut0ban/vetclinic-backend/internal/appointments/models"
)

var (
	// ErrInvalidSchedule covers any malformed booking input. Its message is safe
	// to show to the end user; the underlying cause never is.
	ErrInvalidSchedule     = errors.New("invalid appointment date or time")
	ErrAppointmentNotFound = errors.New("appointment not found")
)

// ErrInvalidTransition rejects a status change outside the allowed graph.
type ErrInvalidTransition struct {
	From, To models.Status
}

func (e ErrInvalidTransition) Error() string {
	return fmt.Sprintf("cannot change appointment status from %s to %s", e.From, e.To)
}

// scheduleLayout is the combined form of the date and time fields.
const scheduleLayout = "2006-01-02 15:04"

type AppointmentService struct {
	DB *sql.DB
}

func NewAppointmentService(db *sql.DB) *AppointmentService {
	return &AppointmentService{DB: db}
}

// CreateInput carries the raw booking form fields. Date and Time are validated
// here, before anything touches the database.
type CreateInput struct {
	IDAccount  int
	DoctorID   string
	ServiceID  string
	PetName    string
	PetSpecies string
	PetAge     string
	Date       string
	Time       string
	Notes      string
}

// Create validates the form input and persists a pending appointment.
// Overlapping bookings for the same doctor and slot are not rejected.
func (s *AppointmentService) Create(input CreateInput) (int64, error) {
	dateTime, err := time.Parse(scheduleLayout, input.Date+" "+input.Time)
	if err != nil {
		return 0, ErrInvalidSchedule
	}

	doctorID, err := strconv.Atoi(input.DoctorID)
	if err != nil {
		return 0, ErrInvalidSchedule
	}
	serviceID, err := strconv.Atoi(input.ServiceID)
	if err != nil {
		return 0, ErrInvalidSchedule
	}
	petAge, err := strconv.Atoi(input.PetAge)
	if err != nil {
		return 0, ErrInvalidSchedule
	}

	result, err := s.DB.Exec(
		`INSERT INTO Appointment (ID_Account, ID_Doctor, ID_Service, Pet_Name, Pet_Species, Pet_Age, Date_Time, Status, Notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		input.IDAccount, doctorID, serviceID, input.PetName, input.PetSpecies, petAge,
		dateTime, string(models.StatusPending), input.Notes,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

const detailColumns = `a.ID_Appointment, a.ID_Account, a.ID_Doctor, a.ID_Service,
	a.Pet_Name, a.Pet_Species, a.Pet_Age, a.Date_Time, a.Status, a.Notes, a.Created_At,
	COALESCE(d.Name, ''), COALESCE(s.Name, '')`

const detailJoins = ` FROM Appointment a
	LEFT JOIN Doctor d ON a.ID_Doctor = d.ID_Doctor
	LEFT JOIN Service s ON a.ID_Service = s.ID_Service`

// ListByAccount returns the account's own appointments, newest slot first.
func (s *AppointmentService) ListByAccount(idAccount int) ([]models.AppointmentDetail, error) {
	rows, err := s.DB.Query(
		"SELECT "+detailColumns+detailJoins+" WHERE a.ID_Account = ? ORDER BY a.Date_Time DESC",
		idAccount,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDetails(rows)
}

// ListToday returns every appointment scheduled for the current day, earliest
// slot first, for the staff dashboard.
func (s *AppointmentService) ListToday() ([]models.AppointmentDetail, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1)

	rows, err := s.DB.Query(
		"SELECT "+detailColumns+detailJoins+" WHERE a.Date_Time >= ? AND a.Date_Time < ? ORDER BY a.Date_Time",
		start, end,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDetails(rows)
}

// CountAppointments returns the total number of appointments.
func (s *AppointmentService) CountAppointments() (int, error) {
	var count int
	err := s.DB.QueryRow("SELECT COUNT(*) FROM Appointment").Scan(&count)
	return count, err
}

// UpdateStatus moves an appointment along the allowed-transition graph.
func (s *AppointmentService) UpdateStatus(id int, next models.Status) (models.Status, error) {
	var current string
	err := s.DB.QueryRow("SELECT Status FROM Appointment WHERE ID_Appointment = ?", id).Scan(&current)
	if err == sql.ErrNoRows {
		return "", ErrAppointmentNotFound
	}
	if err != nil {
		return "", err
	}

	from, err := models.ParseStatus(current)
	if err != nil {
		return "", err
	}
	if !from.CanTransitionTo(next) {
		return "", ErrInvalidTransition{From: from, To: next}
	}

	if _, err := s.DB.Exec(
		"UPDATE Appointment SET Status = ? WHERE ID_Appointment = ?",
		string(next), id,
	); err != nil {
		return "", err
	}
	return from, nil
}

func scanDetails(rows *sql.Rows) ([]models.AppointmentDetail, error) {
	var details []models.AppointmentDetail
	for rows.Next() {
		var (
			d      models.AppointmentDetail
			status string
			notes  sql.NullString
		)
		if err := rows.Scan(
			&d.ID, &d.IDAccount, &d.IDDoctor, &d.IDService,
			&d.PetName, &d.PetSpecies, &d.PetAge, &d.DateTime, &status, &notes, &d.CreatedAt,
			&d.DoctorName, &d.ServiceName,
		); err != nil {
			return nil, err
		}
		parsed, err := models.ParseStatus(status)
		if err != nil {
			return nil, err
		}
		d.Status = parsed
		d.Notes = notes.String
		details = append(details, d)
	}
	return details, rows.Err()
}

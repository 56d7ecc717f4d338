package services

import (
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/aut0ban/vetclinic-backend/internal/accounts/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateEmail     = errors.New("an account with this email already exists")
	ErrDuplicateUsername  = errors.New("an account with this username already exists")
)

type AccountService struct {
	DB *sql.DB
}

func NewAccountService(db *sql.DB) *AccountService {
	return &AccountService{DB: db}
}

// Authenticate validates a login attempt. Only the bcrypt hash is ever compared.
func (s *AccountService) Authenticate(email, password string) (*models.Account, error) {
	var (
		a    models.Account
		role string
	)
	query := "SELECT ID_Account, Username, Email, Password, Role FROM Account WHERE Email = ?"
	err := s.DB.QueryRow(query, email).Scan(&a.ID, &a.Username, &a.Email, &a.Password, &role)
	if err == sql.ErrNoRows {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	a.Role, err = models.ParseRole(role)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// RegistrationInput carries the fields common to self-service and admin
// initiated registration.
type RegistrationInput struct {
	Username string
	Email    string
	Password string
	FullName string
	Phone    string
}

// Register creates an account with the given role. Duplicate email and duplicate
// username are each rejected before anything is written.
func (s *AccountService) Register(input RegistrationInput, role models.Role) (int64, error) {
	var existing int64

	err := s.DB.QueryRow("SELECT ID_Account FROM Account WHERE Email = ?", input.Email).Scan(&existing)
	if err == nil {
		return 0, ErrDuplicateEmail
	}
	if err != sql.ErrNoRows {
		return 0, err
	}

	err = s.DB.QueryRow("SELECT ID_Account FROM Account WHERE Username = ?", input.Username).Scan(&existing)
	if err == nil {
		return 0, ErrDuplicateUsername
	}
	if err != sql.ErrNoRows {
		return 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	result, err := s.DB.Exec(
		"INSERT INTO Account (Username, Email, Password, Role, Full_Name, Phone) VALUES (?, ?, ?, ?, ?, ?)",
		input.Username, input.Email, string(hash), string(role), input.FullName, input.Phone,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// ListAccounts returns every account, newest first, for the admin panel.
func (s *AccountService) ListAccounts() ([]models.Account, error) {
	rows, err := s.DB.Query(
		"SELECT ID_Account, Username, Email, Role, Full_Name, Phone, Created_At FROM Account ORDER BY Created_At DESC",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var (
			a        models.Account
			role     string
			fullName sql.NullString
			phone    sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.Username, &a.Email, &role, &fullName, &phone, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.Role, err = models.ParseRole(role)
		if err != nil {
			return nil, err
		}
		a.FullName = fullName.String
		a.Phone = phone.String
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// CountAccounts returns the total number of accounts.
func (s *AccountService) CountAccounts() (int, error) {
	var count int
	err := s.DB.QueryRow("SELECT COUNT(*) FROM Account").Scan(&count)
	return count, err
}

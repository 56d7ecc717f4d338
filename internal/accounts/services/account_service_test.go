package services

import (
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/aut0ban/vetclinic-backend/internal/accounts/models"
)

func newMockService(t *testing.T) (*AccountService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewAccountService(db), mock
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT ID_Account FROM Account WHERE Email = ?")).
		WithArgs("taken@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"ID_Account"}).AddRow(1))

	_, err := svc.Register(RegistrationInput{
		Username: "new_user",
		Email:    "taken@example.com",
		Password: "secret",
	}, models.RoleClient)

	assert.ErrorIs(t, err, ErrDuplicateEmail)
	// Nothing may be written when the email is taken.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT ID_Account FROM Account WHERE Email = ?")).
		WithArgs("fresh@example.com").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT ID_Account FROM Account WHERE Username = ?")).
		WithArgs("taken_name").
		WillReturnRows(sqlmock.NewRows([]string{"ID_Account"}).AddRow(2))

	_, err := svc.Register(RegistrationInput{
		Username: "taken_name",
		Email:    "fresh@example.com",
		Password: "secret",
	}, models.RoleClient)

	assert.ErrorIs(t, err, ErrDuplicateUsername)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterSuccess(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT ID_Account FROM Account WHERE Email = ?")).
		WithArgs("fresh@example.com").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT ID_Account FROM Account WHERE Username = ?")).
		WithArgs("fresh_user").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO Account")).
		WithArgs("fresh_user", "fresh@example.com", sqlmock.AnyArg(), "client", "Fresh User", "+100").
		WillReturnResult(sqlmock.NewResult(5, 1))

	id, err := svc.Register(RegistrationInput{
		Username: "fresh_user",
		Email:    "fresh@example.com",
		Password: "secret",
		FullName: "Fresh User",
		Phone:    "+100",
	}, models.RoleClient)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc, mock := newMockService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT ID_Account, Username, Email, Password, Role FROM Account WHERE Email = ?")).
		WithArgs("client@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"ID_Account", "Username", "Email", "Password", "Role"}).
			AddRow(3, "pet_lover", "client@example.com", string(hash), "client"))

	_, err = svc.Authenticate("client@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT ID_Account, Username, Email, Password, Role FROM Account WHERE Email = ?")).
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := svc.Authenticate("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateSuccess(t *testing.T) {
	svc, mock := newMockService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT ID_Account, Username, Email, Password, Role FROM Account WHERE Email = ?")).
		WithArgs("client@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"ID_Account", "Username", "Email", "Password", "Role"}).
			AddRow(3, "pet_lover", "client@example.com", string(hash), "client"))

	account, err := svc.Authenticate("client@example.com", "correct")
	assert.NoError(t, err)
	assert.Equal(t, 3, account.ID)
	assert.Equal(t, models.RoleClient, account.Role)
}

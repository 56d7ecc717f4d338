package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/aut0ban/vetclinic-backend/internal/accounts/services"
	apptServices "github.com/aut0ban/vetclinic-backend/internal/appointments/services"
)

func newTestServer(t *testing.T) (*echo.Echo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	controller := NewAuthController(services.NewAccountService(db), apptServices.NewAppointmentService(db))

	e := echo.New()
	e.POST("/login", controller.Login)
	e.POST("/register", controller.Register)
	return e, mock
}

func postForm(e *echo.Echo, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func hasCookie(rec *httptest.ResponseRecorder, name string) bool {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name && cookie.Value != "" {
			return true
		}
	}
	return false
}

func TestRegisterPasswordMismatch(t *testing.T) {
	e, mock := newTestServer(t)

	rec := postForm(e, "/register", url.Values{
		"username":         {"new_user"},
		"email":            {"new@example.com"},
		"password":         {"one"},
		"confirm_password": {"two"},
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/register", rec.Header().Get("Location"))
	assert.True(t, hasCookie(rec, "flash"))
	// Nothing may be written on a mismatch.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterDuplicateEmailRedirects(t *testing.T) {
	e, mock := newTestServer(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT ID_Account FROM Account WHERE Email = ?")).
		WithArgs("taken@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"ID_Account"}).AddRow(1))

	rec := postForm(e, "/register", url.Values{
		"username":         {"new_user"},
		"email":            {"taken@example.com"},
		"password":         {"secret"},
		"confirm_password": {"secret"},
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/register", rec.Header().Get("Location"))
	assert.True(t, hasCookie(rec, "flash"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginWrongPasswordEstablishesNoSession(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	e, mock := newTestServer(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT ID_Account, Username, Email, Password, Role FROM Account WHERE Email = ?")).
		WithArgs("client@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"ID_Account", "Username", "Email", "Password", "Role"}).
			AddRow(3, "pet_lover", "client@example.com", string(hash), "client"))

	rec := postForm(e, "/login", url.Values{
		"email":    {"client@example.com"},
		"password": {"wrong"},
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.False(t, hasCookie(rec, "token"))
	assert.True(t, hasCookie(rec, "flash"))
}

func TestLoginSuccessSetsSessionCookie(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	e, mock := newTestServer(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT ID_Account, Username, Email, Password, Role FROM Account WHERE Email = ?")).
		WithArgs("client@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"ID_Account", "Username", "Email", "Password", "Role"}).
			AddRow(3, "pet_lover", "client@example.com", string(hash), "client"))

	rec := postForm(e, "/login", url.Values{
		"email":    {"client@example.com"},
		"password": {"correct"},
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/profile", rec.Header().Get("Location"))
	assert.True(t, hasCookie(rec, "token"))
}

func TestLoginHonorsNextTarget(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	e, mock := newTestServer(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT ID_Account, Username, Email, Password, Role FROM Account WHERE Email = ?")).
		WithArgs("client@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"ID_Account", "Username", "Email", "Password", "Role"}).
			AddRow(3, "pet_lover", "client@example.com", string(hash), "client"))

	rec := postForm(e, "/login?next=%2Fcontacts", url.Values{
		"email":    {"client@example.com"},
		"password": {"correct"},
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/contacts", rec.Header().Get("Location"))
}

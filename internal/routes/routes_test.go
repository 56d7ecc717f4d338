package routes

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*echo.Echo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	e := echo.New()
	Init(e, db)
	return e, mock
}

func TestUnknownRouteReturns404Envelope(t *testing.T) {
	e, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/no-such-page", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
}

func TestAPIServicesProjection(t *testing.T) {
	e, mock := newTestServer(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM Service")).
		WillReturnRows(sqlmock.NewRows([]string{"ID_Service", "Name", "Description", "Price", "Category", "Duration"}).
			AddRow(1, "Checkup", "General examination", 30.0, "Therapy", "30 min"))

	req := httptest.NewRequest(http.MethodGet, "/api/services", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Checkup"`)
	// The projection carries price and category but not the description.
	assert.Contains(t, rec.Body.String(), `"price":30`)
	assert.NotContains(t, rec.Body.String(), "General examination")
}

func TestSearchWithEmptyQueryReturnsNothing(t *testing.T) {
	e, mock := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"articles":[]`)
	// An empty query runs no queries at all.
	assert.NoError(t, mock.ExpectationsWereMet())
}

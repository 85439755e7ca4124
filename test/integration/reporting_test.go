package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"tradelab_backend/internal/models"
	"tradelab_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportEnrollmentShowsLatestCompletedPayment(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, client := helpers.CreateAndLoginClient(t, ts.DB, "Enrolled")

	// Два завершенных платежа; view должен показать поздний
	early := helpers.CreateTestPayment(t, ts.DB, client.ID, 100, models.PaymentStatusCompleted)
	require.NoError(t, ts.DB.Model(&early).Update("payment_date", time.Now().AddDate(0, -1, 0)).Error)
	helpers.CreateTestPayment(t, ts.DB, client.ID, 250, models.PaymentStatusCompleted)
	// pending не учитывается вовсе
	helpers.CreateTestPayment(t, ts.DB, client.ID, 999, models.PaymentStatusPending)

	res, resBody := ts.SendRequest(t, http.MethodGet, "/api/v1/reports/enrollment", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, resBody)

	var resp struct {
		Enrollment []struct {
			ClientID string   `json:"client_id"`
			Amount   *float64 `json:"amount"`
		} `json:"enrollment"`
	}
	require.NoError(t, json.Unmarshal([]byte(resBody), &resp))
	require.Len(t, resp.Enrollment, 1)
	assert.Equal(t, client.ID, resp.Enrollment[0].ClientID)
	require.NotNil(t, resp.Enrollment[0].Amount)
	assert.Equal(t, float64(250), *resp.Enrollment[0].Amount)
}

func TestReportEnrollmentExcludesInactiveClients(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, client := helpers.CreateAndLoginClient(t, ts.DB, "Suspended")
	require.NoError(t, ts.DB.Model(&models.Client{}).Where("id = ?", client.ID).
		Update("status", models.ClientStatusSuspended).Error)

	res, resBody := ts.SendRequest(t, http.MethodGet, "/api/v1/reports/enrollment", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, resBody)

	var resp struct {
		Enrollment []json.RawMessage `json:"enrollment"`
	}
	require.NoError(t, json.Unmarshal([]byte(resBody), &resp))
	assert.Empty(t, resp.Enrollment)
}

func TestReportMonthlyRevenueMath(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, client := helpers.CreateAndLoginClient(t, ts.DB, "Revenue")

	// Три завершенных платежа в одном месяце, один pending мимо кассы
	for _, amount := range []float64{100, 200, 300} {
		helpers.CreateTestPayment(t, ts.DB, client.ID, amount, models.PaymentStatusCompleted)
	}
	helpers.CreateTestPayment(t, ts.DB, client.ID, 5000, models.PaymentStatusPending)

	res, resBody := ts.SendRequest(t, http.MethodGet, "/api/v1/reports/revenue/monthly", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, resBody)

	var resp struct {
		Revenue []struct {
			PaymentCount  int64   `json:"payment_count"`
			TotalRevenue  float64 `json:"total_revenue"`
			AverageAmount float64 `json:"average_amount"`
		} `json:"revenue"`
	}
	require.NoError(t, json.Unmarshal([]byte(resBody), &resp))
	require.Len(t, resp.Revenue, 1)
	assert.EqualValues(t, 3, resp.Revenue[0].PaymentCount)
	assert.Equal(t, float64(600), resp.Revenue[0].TotalRevenue)
	assert.Equal(t, float64(200), resp.Revenue[0].AverageAmount)
}

func TestReportUpcomingSessions(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, client := helpers.CreateAndLoginClient(t, ts.DB, "Scheduled")

	future := helpers.CreateTestBooking(t, ts.DB, client.ID, time.Now().Add(48*time.Hour))

	// Прошедшая и отмененная сессии в view не попадают
	past := helpers.CreateTestBooking(t, ts.DB, client.ID, time.Now().Add(-48*time.Hour))
	_ = past
	cancelled := helpers.CreateTestBooking(t, ts.DB, client.ID, time.Now().Add(96*time.Hour))
	require.NoError(t, ts.DB.Model(&cancelled).Update("status", models.BookingStatusCancelled).Error)

	res, resBody := ts.SendRequest(t, http.MethodGet, "/api/v1/reports/sessions/upcoming", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, resBody)

	var resp struct {
		Sessions []struct {
			BookingID   string `json:"booking_id"`
			ClientEmail string `json:"client_email"`
		} `json:"sessions"`
	}
	require.NoError(t, json.Unmarshal([]byte(resBody), &resp))
	require.Len(t, resp.Sessions, 1)
	assert.Equal(t, future.ID, resp.Sessions[0].BookingID)
	assert.Equal(t, client.Email, resp.Sessions[0].ClientEmail)
}

func TestReportsRequireAuthentication(t *testing.T) {
	ts := GetTestServer(t)

	for _, path := range []string{
		"/api/v1/reports/enrollment",
		"/api/v1/reports/revenue/monthly",
		"/api/v1/reports/sessions/upcoming",
	} {
		res, _ := ts.SendRequest(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode, path)
	}
}

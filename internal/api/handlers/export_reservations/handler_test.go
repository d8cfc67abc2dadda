package export_reservations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	reservationRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/reservation"
)

type mockReservationService struct {
	mock.Mock
}

func (m *mockReservationService) GetReport(ctx context.Context) ([]*reservationRepo.ReportRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reservationRepo.ReportRow), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func sampleRow() *reservationRepo.ReportRow {
	return &reservationRepo.ReportRow{
		ReservationID: 100,
		CustomerName:  "Иван Петров",
		CustomerEmail: "ivan@example.com",
		CarBrand:      "Toyota",
		CarModel:      "Camry",
		LicensePlate:  "А123ВС77",
		StartDate:     day(2026, 6, 10),
		EndDate:       day(2026, 6, 15),
		DailyPrice:    1500,
		CreatedAt:     day(2026, 6, 1),
	}
}

func TestBuildWorkbook(t *testing.T) {
	t.Run("day count and total are inclusive calendar days", func(t *testing.T) {
		file, err := buildWorkbook([]*reservationRepo.ReportRow{sampleRow()})
		require.NoError(t, err)

		// Колонки "Дней" и "Стоимость"
		days, err := file.GetCellValue(sheetName, "H2")
		require.NoError(t, err)
		assert.Equal(t, "6", days)

		total, err := file.GetCellValue(sheetName, "I2")
		require.NoError(t, err)
		assert.Equal(t, "9000", total)
	})

	t.Run("single day rental counts as one day", func(t *testing.T) {
		row := sampleRow()
		row.EndDate = row.StartDate

		file, err := buildWorkbook([]*reservationRepo.ReportRow{row})
		require.NoError(t, err)

		days, err := file.GetCellValue(sheetName, "H2")
		require.NoError(t, err)
		assert.Equal(t, "1", days)

		total, err := file.GetCellValue(sheetName, "I2")
		require.NoError(t, err)
		assert.Equal(t, "1500", total)
	})

	t.Run("unpaid row renders without payment date", func(t *testing.T) {
		file, err := buildWorkbook([]*reservationRepo.ReportRow{sampleRow()})
		require.NoError(t, err)

		paid, err := file.GetCellValue(sheetName, "J2")
		require.NoError(t, err)
		assert.Equal(t, "нет", paid)

		paidAt, err := file.GetCellValue(sheetName, "K2")
		require.NoError(t, err)
		assert.Equal(t, "", paidAt)
	})
}

func TestHandler_Handle(t *testing.T) {
	service := new(mockReservationService)
	service.On("GetReport", mock.Anything).
		Return([]*reservationRepo.ReportRow{sampleRow()}, nil)
	h := NewHandler(service, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/reservations/export", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, contentTypeXLSX, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.NotZero(t, rec.Body.Len())
}

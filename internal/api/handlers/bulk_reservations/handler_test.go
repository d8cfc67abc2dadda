package bulk_reservations

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/service/reservations/models"
)

type mockReservationService struct {
	mock.Mock
}

func (m *mockReservationService) BulkMarkPaid(ctx context.Context, ids []int64) *models.BulkResult {
	args := m.Called(ctx, ids)
	return args.Get(0).(*models.BulkResult)
}

func (m *mockReservationService) BulkDelete(ctx context.Context, ids []int64) *models.BulkResult {
	args := m.Called(ctx, ids)
	return args.Get(0).(*models.BulkResult)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doBulkRequest(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/reservations/bulk", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	t.Run("malformed id is tallied as failed, the rest of the batch runs", func(t *testing.T) {
		service := new(mockReservationService)
		service.On("BulkMarkPaid", mock.Anything, []int64{1, 3}).
			Return(&models.BulkResult{Succeeded: 2})
		h := NewHandler(service, nopLogger{})

		rec := doBulkRequest(t, h, `{"ids": "1,abc,3", "action": "mark_paid"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var result models.BulkResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, 2, result.Succeeded)
		assert.Equal(t, 1, result.Failed)
		service.AssertCalled(t, "BulkMarkPaid", mock.Anything, []int64{1, 3})
	})

	t.Run("delete action counts malformed ids too", func(t *testing.T) {
		service := new(mockReservationService)
		service.On("BulkDelete", mock.Anything, []int64{12}).
			Return(&models.BulkResult{Succeeded: 1})
		h := NewHandler(service, nopLogger{})

		rec := doBulkRequest(t, h, `{"ids": "12,-4", "action": "delete"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var result models.BulkResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, 1, result.Succeeded)
		assert.Equal(t, 1, result.Failed)
	})

	t.Run("all ids malformed still answers 200 with tallies", func(t *testing.T) {
		service := new(mockReservationService)
		service.On("BulkMarkPaid", mock.Anything, []int64{}).
			Return(&models.BulkResult{})
		h := NewHandler(service, nopLogger{})

		rec := doBulkRequest(t, h, `{"ids": "abc,xyz", "action": "mark_paid"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var result models.BulkResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, 0, result.Succeeded)
		assert.Equal(t, 2, result.Failed)
	})

	t.Run("empty id list", func(t *testing.T) {
		service := new(mockReservationService)
		h := NewHandler(service, nopLogger{})

		rec := doBulkRequest(t, h, `{"ids": "", "action": "mark_paid"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		service.AssertNotCalled(t, "BulkMarkPaid", mock.Anything, mock.Anything)
	})

	t.Run("unknown action", func(t *testing.T) {
		service := new(mockReservationService)
		h := NewHandler(service, nopLogger{})

		rec := doBulkRequest(t, h, `{"ids": "1,2", "action": "archive"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

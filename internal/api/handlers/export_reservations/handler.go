package export_reservations

import (
	"fmt"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/reservation"
)

const (
	sheetName = "Reservations"

	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var reportColumns = []string{
	"ID",
	"Клиент",
	"Email",
	"Автомобиль",
	"Госномер",
	"Начало",
	"Окончание",
	"Дней",
	"Стоимость",
	"Оплачено",
	"Дата оплаты",
	"Создано",
}

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/reservations/export
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.GetReport(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/reservations/export - Failed to get report: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	file, err := buildWorkbook(report)
	if err != nil {
		h.logger.Error("GET /admin/reservations/export - Failed to build workbook: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	defer file.Close()

	filename := fmt.Sprintf("reservations_%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", contentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := file.Write(w); err != nil {
		// Заголовки уже ушли клиенту, можем только залогировать
		h.logger.Error("GET /admin/reservations/export - Failed to write workbook: %v", err)
		return
	}

	h.logger.Info("GET /admin/reservations/export - Exported %d reservations", len(report))
}

// buildWorkbook собирает XLSX файл отчёта
func buildWorkbook(report []*reservationRepo.ReportRow) (*excelize.File, error) {
	file := excelize.NewFile()
	file.SetSheetName("Sheet1", sheetName)

	for i, col := range reportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(sheetName, cell, col); err != nil {
			return nil, err
		}
	}

	// Жирный шрифт для шапки
	if style, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		startCell, _ := excelize.CoordinatesToCellName(1, 1)
		endCell, _ := excelize.CoordinatesToCellName(len(reportColumns), 1)
		_ = file.SetCellStyle(sheetName, startCell, endCell, style)
	}

	for i, row := range report {
		rng, err := domain.NewDateRange(row.StartDate, row.EndDate)
		if err != nil {
			return nil, fmt.Errorf("reservation %d: %w", row.ReservationID, err)
		}
		days := rng.Days()

		paid := "нет"
		paidAt := ""
		if row.Paid {
			paid = "да"
		}
		if row.PaidAt != nil {
			paidAt = row.PaidAt.Format(time.RFC3339)
		}

		values := []interface{}{
			row.ReservationID,
			row.CustomerName,
			row.CustomerEmail,
			fmt.Sprintf("%s %s", row.CarBrand, row.CarModel),
			row.LicensePlate,
			row.StartDate.Format(domain.DateFormat),
			row.EndDate.Format(domain.DateFormat),
			days,
			row.DailyPrice * float64(days),
			paid,
			paidAt,
			row.CreatedAt.Format(time.RFC3339),
		}

		for j, value := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := file.SetCellValue(sheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return file, nil
}

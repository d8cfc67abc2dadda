package bulk_reservations

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	ActionMarkPaid = "mark_paid"
	ActionDelete   = "delete"
)

// BulkRequest HTTP request model: ids через запятую ("12,14,15")
// и действие над каждым из них
type BulkRequest struct {
	IDs    string `json:"ids"`
	Action string `json:"action"` // mark_paid | delete
}

// ParseIDs разбирает строку ids в список идентификаторов.
// Некорректный токен не прерывает разбор всего списка: он учитывается
// счётчиком invalid и попадает в failed итога пакета. Ошибка только
// когда в строке нет ни одного токена.
func (r *BulkRequest) ParseIDs() ([]int64, int, error) {
	parts := strings.Split(r.IDs, ",")
	ids := make([]int64, 0, len(parts))
	invalid := 0

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil || id <= 0 {
			invalid++
			continue
		}
		ids = append(ids, id)
	}

	if len(ids) == 0 && invalid == 0 {
		return nil, 0, fmt.Errorf("empty id list")
	}
	return ids, invalid, nil
}

package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
)

const (
	headerUserID     = "X-User-ID"
	headerAdminToken = "X-Admin-Token"

	msgMissingAuth   = "отсутствует заголовок X-User-ID или X-Admin-Token"
	msgInvalidUserID = "некорректный X-User-ID"
	msgInvalidToken  = "некорректный админский токен"
	msgAdminOnly     = "операция доступна только администратору"
)

type contextKey string

const actorKey contextKey = "actor"

// Auth извлекает актора из заголовков запроса.
//
// X-Admin-Token (сверенный с конфигом) даёт права администратора,
// X-User-ID - права клиента. Валидный админский токен имеет приоритет.
func Auth(adminToken string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := r.Header.Get(headerAdminToken); token != "" {
				if adminToken == "" || token != adminToken {
					handlers.RespondUnauthorized(w, msgInvalidToken)
					return
				}
				ctx := context.WithValue(r.Context(), actorKey, domain.AdminActor())
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			userIDStr := r.Header.Get(headerUserID)
			if userIDStr == "" {
				handlers.RespondUnauthorized(w, msgMissingAuth)
				return
			}

			userID, err := strconv.ParseInt(userIDStr, 10, 64)
			if err != nil || userID <= 0 {
				handlers.RespondUnauthorized(w, msgInvalidUserID)
				return
			}

			ctx := context.WithValue(r.Context(), actorKey, domain.CustomerActor(userID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin пропускает только запросы с админским актором.
// Вешается после Auth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := GetActor(r.Context())
		if !ok || !actor.Admin {
			handlers.RespondForbidden(w, msgAdminOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetActor возвращает актора из контекста запроса
func GetActor(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(domain.Actor)
	return actor, ok
}

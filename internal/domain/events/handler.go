package events

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"animal-zoo/internal/domain/zoo"
	"animal-zoo/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta el log de notificaciones. El trainer ve todo el log;
// cualquier otro caller solo ve los eventos donde es holder.
func RegisterRoutes(r chi.Router, svc *Service, trainerID string) {
	trainerID = strings.TrimSpace(trainerID)

	r.Route("/events", func(er chi.Router) {
		er.Get("/", listEventsHandler(svc, trainerID))
		er.Get("/{eventID}", getEventHandler(svc, trainerID))
	})
}

// eventResponse representa una notificación del registro devuelta por la API.
type eventResponse struct {
	ID         string               `json:"id"`
	Type       zoo.NotificationType `json:"type" enums:"ADDED,BORROWED,RETURNED"`
	Category   zoo.Category         `json:"category"`
	Count      uint64               `json:"count,omitempty"`
	Holder     string               `json:"holder,omitempty"`
	OccurredAt time.Time            `json:"occurred_at"`
	RecordedAt time.Time            `json:"recorded_at"`
}

// listEventsHandler godoc
// @Summary Listar notificaciones
// @Description Lista las notificaciones Added/Borrowed/Returned, de la más reciente a la más antigua. Fuera del trainer, solo las propias (holder = caller).
// @Tags events
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param types query string false "Lista CSV de tipos (ADDED,BORROWED,RETURNED)"
// @Param category query string false "Categoría (fish, cat, dog, rabbit, parrot)"
// @Param holder query string false "ID del holder"
// @Param from query string false "occurred_at mínimo (RFC3339)"
// @Param to query string false "occurred_at máximo (RFC3339)"
// @Param limit query int false "Máximo (1-500). Por defecto 50"
// @Success 200 {array} eventResponse
// @Failure 400 {string} string "parámetros inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "holder ajeno (solo el trainer)"
// @Failure 500 {string} string "internal error"
// @Router /events [get]
func listEventsHandler(svc *Service, trainerID string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		filter, err := parseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if claims.UserID != trainerID {
			if filter.Holder != "" && filter.Holder != claims.UserID {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			filter.Holder = claims.UserID
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]eventResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEventResponse(e))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getEventHandler godoc
// @Summary Obtener una notificación
// @Tags events
// @Produce json
// @Param eventID path string true "ID del evento"
// @Success 200 {object} eventResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "event not found"
// @Failure 500 {string} string "internal error"
// @Router /events/{eventID} [get]
func getEventHandler(svc *Service, trainerID string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		e, err := svc.GetByID(r.Context(), chi.URLParam(r, "eventID"))
		switch {
		case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidInput):
			http.Error(w, "event not found", http.StatusNotFound)
			return
		case err != nil:
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		// Un evento ajeno se reporta igual que uno inexistente.
		if claims.UserID != trainerID && e.Holder != claims.UserID {
			http.Error(w, "event not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toEventResponse(e))
	}
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	q := r.URL.Query()
	filter := ListFilter{Limit: DefaultLimit}

	if v := strings.TrimSpace(q.Get("limit")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > MaxLimit {
			return ListFilter{}, errors.New("limit must be between 1 and 500")
		}
		filter.Limit = n
	}

	// types=ADDED,BORROWED
	if v := strings.TrimSpace(q.Get("types")); v != "" {
		for _, p := range strings.Split(v, ",") {
			t := zoo.NotificationType(strings.ToUpper(strings.TrimSpace(p)))
			switch t {
			case "":
				continue
			case zoo.NotificationAdded, zoo.NotificationBorrowed, zoo.NotificationReturned:
				filter.Types = append(filter.Types, t)
			default:
				return ListFilter{}, errors.New("unknown event type: " + string(t))
			}
		}
	}

	if v := strings.TrimSpace(q.Get("category")); v != "" {
		c, err := zoo.ParseCategory(v)
		if err != nil {
			return ListFilter{}, err
		}
		filter.Category = c
	}

	filter.Holder = strings.TrimSpace(q.Get("holder"))

	if v := strings.TrimSpace(q.Get("from")); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return ListFilter{}, errors.New("from must be RFC3339")
		}
		filter.From = &t
	}
	if v := strings.TrimSpace(q.Get("to")); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return ListFilter{}, errors.New("to must be RFC3339")
		}
		filter.To = &t
	}

	return filter, nil
}

func toEventResponse(e Event) eventResponse {
	return eventResponse{
		ID:         e.ID,
		Type:       e.Type,
		Category:   e.Category,
		Count:      e.Count,
		Holder:     e.Holder,
		OccurredAt: e.OccurredAt,
		RecordedAt: e.RecordedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

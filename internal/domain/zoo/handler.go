package zoo

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"animal-zoo/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta las rutas del registro. writeMW envuelve solo las
// operaciones de escritura (rate limit por caller); puede ser nil.
func RegisterRoutes(r chi.Router, svc *Service, writeMW func(http.Handler) http.Handler) {
	if writeMW == nil {
		writeMW = func(next http.Handler) http.Handler { return next }
	}

	r.Route("/animals", func(ar chi.Router) {
		ar.Get("/", inventoryHandler(svc))
		ar.Get("/{category}", animalCountHandler(svc))
		ar.With(writeMW).Post("/", addHandler(svc))
	})

	r.Route("/loans", func(lr chi.Router) {
		lr.Get("/me", activeLoanHandler(svc))
		lr.With(writeMW).Post("/", borrowHandler(svc))
		lr.With(writeMW).Post("/return", giveBackHandler(svc))
	})
}

type addRequest struct {
	Category string `json:"category" enums:"fish,cat,dog,rabbit,parrot"`
	Count    uint64 `json:"count"`
}

type addResponse struct {
	Category Category `json:"category"`
	Added    uint64   `json:"added"`
	Count    uint64   `json:"count"`
}

type borrowRequest struct {
	Age      uint32 `json:"age"`
	Gender   string `json:"gender" enums:"male,female"`
	Category string `json:"category" enums:"fish,cat,dog,rabbit,parrot"`
}

type countResponse struct {
	Category Category `json:"category"`
	Count    uint64   `json:"count"`
}

type loanResponse struct {
	ID         string    `json:"id"`
	Holder     string    `json:"holder"`
	Category   Category  `json:"category"`
	Age        uint32    `json:"age"`
	Gender     Gender    `json:"gender"`
	BorrowedAt time.Time `json:"borrowed_at"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

// addHandler godoc
// @Summary Agregar animales al inventario
// @Description Solo el trainer configurado. Suma `count` unidades a la categoría y emite Added(category, count).
// @Tags animals
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body addRequest true "Categoría y cantidad"
// @Success 201 {object} addResponse
// @Failure 400 {object} errorResponse "invalid_category / count_overflow"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {object} errorResponse "unauthorized (no es trainer)"
// @Router /animals [post]
func addHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req addRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		category := Category(strings.ToLower(strings.TrimSpace(req.Category)))

		total, err := svc.Add(r.Context(), claims.UserID, category, req.Count)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, addResponse{
			Category: category,
			Added:    req.Count,
			Count:    total,
		})
	}
}

// borrowHandler godoc
// @Summary Pedir prestado un animal
// @Description Presta una unidad de la categoría si el caller cumple edad/género y no tiene otro préstamo activo. Emite Borrowed(category).
// @Tags loans
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body borrowRequest true "Edad, género y categoría"
// @Success 201 {object} loanResponse
// @Failure 400 {object} errorResponse "invalid_age / invalid_category / invalid_gender / gender_mismatch"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {object} errorResponse "gender_restricted"
// @Failure 409 {object} errorResponse "unavailable / already_borrowed"
// @Failure 429 {string} string "rate limited"
// @Router /loans [post]
func borrowHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req borrowRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		loan, err := svc.Borrow(r.Context(), claims.UserID, req.Age,
			Gender(strings.ToLower(strings.TrimSpace(req.Gender))),
			Category(strings.ToLower(strings.TrimSpace(req.Category))),
		)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toLoanResponse(loan))
	}
}

// giveBackHandler godoc
// @Summary Devolver el animal prestado
// @Description Devuelve el préstamo activo del caller al inventario. Emite Returned(category).
// @Tags loans
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {object} loanResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {object} errorResponse "no_active_loan"
// @Router /loans/return [post]
func giveBackHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		loan, err := svc.GiveBack(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toLoanResponse(loan))
	}
}

// activeLoanHandler godoc
// @Summary Préstamo activo del caller
// @Tags loans
// @Produce json
// @Success 200 {object} loanResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {object} errorResponse "no_active_loan"
// @Router /loans/me [get]
func activeLoanHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		loan, err := svc.ActiveLoan(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toLoanResponse(loan))
	}
}

// animalCountHandler godoc
// @Summary Unidades disponibles de una categoría
// @Tags animals
// @Produce json
// @Param category path string true "fish, cat, dog, rabbit o parrot"
// @Success 200 {object} countResponse
// @Failure 400 {object} errorResponse "invalid_category"
// @Router /animals/{category} [get]
func animalCountHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, err := ParseCategory(chi.URLParam(r, "category"))
		if err != nil {
			writeError(w, err)
			return
		}

		n, err := svc.AnimalCount(r.Context(), category)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, countResponse{Category: category, Count: n})
	}
}

// inventoryHandler godoc
// @Summary Inventario completo
// @Tags animals
// @Produce json
// @Success 200 {array} countResponse
// @Router /animals [get]
func inventoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Inventory(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]countResponse, 0, len(items))
		for _, it := range items {
			out = append(out, countResponse{Category: it.Category, Count: it.Count})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// StatusFor traduce un error del registro a un status HTTP.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrGenderRestricted):
		return http.StatusForbidden
	case errors.Is(err, ErrUnavailable), errors.Is(err, ErrAlreadyBorrowed):
		return http.StatusConflict
	case errors.Is(err, ErrNoActiveLoan):
		return http.StatusNotFound
	case IsRuleError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		http.Error(w, "internal error", status)
		return
	}
	writeJSON(w, status, errorResponse{Error: Code(err), Reason: err.Error()})
}

func toLoanResponse(l Loan) loanResponse {
	return loanResponse{
		ID:         l.ID,
		Holder:     l.Holder,
		Category:   l.Category,
		Age:        l.Age,
		Gender:     l.Gender,
		BorrowedAt: l.BorrowedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos (zoo/events)
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

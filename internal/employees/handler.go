package employees

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/cameratoon/scheduler/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type employeesRepo interface {
	Get(ctx context.Context, id int) (*Employee, error)
	All(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, id int, params UpdateParams) (*Employee, error)
	Guest(ctx context.Context) (*Employee, error)
}

type Handler struct {
	repo employeesRepo
}

func NewHandler(repo employeesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/employees", handler.HandleList).
		Methods("GET", "OPTIONS").Name("list-employees")
	router.HandleFunc("/api/employees/guest/telegram", handler.HandleSetGuestTelegramID).
		Methods("PATCH", "OPTIONS").Name("set-guest-telegram-id")
	router.HandleFunc("/api/employees/{id}", handler.HandleSetTelegramID).
		Methods("PATCH", "OPTIONS").Name("set-telegram-id")
	router.HandleFunc("/api/profile/update", handler.HandleProfileUpdate).
		Methods("PATCH", "OPTIONS").Name("update-profile")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	all, err := handler.repo.All(r.Context())
	if err != nil {
		log.Errorf("list employees: %s", err)
		pkg.WriteError(w, "failed to list employees", http.StatusInternalServerError)
		return
	}

	redacted := make([]Redacted, 0, len(all))
	for i := range all {
		redacted = append(redacted, all[i].Redacted())
	}

	respBytes, err := json.Marshal(redacted)
	if err != nil {
		log.Errorf("marshal employees list: %s", err)
		pkg.WriteError(w, "failed to list employees", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}

func (handler *Handler) HandleSetTelegramID(w http.ResponseWriter, r *http.Request) {
	requester, ok := RequesterFromContext(r.Context())
	if !ok {
		pkg.WriteError(w, "unauthenticated", http.StatusUnauthorized)
		return
	}
	if err := requester.Authorize(RoleAdmin); err != nil {
		pkg.WriteError(w, "not allowed", http.StatusForbidden)
		return
	}

	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		pkg.WriteError(w, "invalid employee id", http.StatusBadRequest)
		return
	}

	var params struct {
		TelegramID string `json:"telegramId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("set telegram id, decode body: %s", err)
		pkg.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := handler.repo.Update(r.Context(), id, UpdateParams{
		TelegramID: &params.TelegramID,
	})
	if err != nil {
		if errors.Is(err, ErrEmployeeNotFound) {
			pkg.WriteError(w, "employee not found", http.StatusNotFound)
			return
		}
		log.Errorf("set telegram id for employee %d: %s", id, err)
		pkg.WriteError(w, "failed to update employee", http.StatusInternalServerError)
		return
	}

	log.Debugf("employee %d telegram id updated by %s", id, requester.Username)

	respBytes, err := json.Marshal(updated.Redacted())
	if err != nil {
		log.Errorf("marshal updated employee: %s", err)
		pkg.WriteError(w, "failed to update employee", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}

func (handler *Handler) HandleSetGuestTelegramID(w http.ResponseWriter, r *http.Request) {
	requester, ok := RequesterFromContext(r.Context())
	if !ok {
		pkg.WriteError(w, "unauthenticated", http.StatusUnauthorized)
		return
	}
	if err := requester.Authorize(RoleAdmin); err != nil {
		pkg.WriteError(w, "not allowed", http.StatusForbidden)
		return
	}

	var params struct {
		TelegramID string `json:"telegramId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		pkg.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if params.TelegramID == "" {
		pkg.WriteError(w, "telegram id empty", http.StatusBadRequest)
		return
	}

	guest, err := handler.repo.Guest(r.Context())
	if err != nil {
		if errors.Is(err, ErrEmployeeNotFound) {
			pkg.WriteError(w, "guest account not found", http.StatusNotFound)
			return
		}
		log.Errorf("get guest account: %s", err)
		pkg.WriteError(w, "failed to update guest account", http.StatusInternalServerError)
		return
	}

	if _, err := handler.repo.Update(r.Context(), guest.ID, UpdateParams{
		TelegramID: &params.TelegramID,
	}); err != nil {
		log.Errorf("set guest telegram id: %s", err)
		pkg.WriteError(w, "failed to update guest account", http.StatusInternalServerError)
		return
	}

	log.Debugf("guest telegram id updated by %s", requester.Username)
	pkg.WriteJSONResponseOK(w, `{"message":"guest telegram id updated"}`)
}

func (handler *Handler) HandleProfileUpdate(w http.ResponseWriter, r *http.Request) {
	requester, ok := RequesterFromContext(r.Context())
	if !ok {
		pkg.WriteError(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var params struct {
		Name      *string `json:"name"`
		Color     *string `json:"color"`
		Frame     *string `json:"frame"`
		AvatarURL *string `json:"avatarUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		pkg.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := handler.repo.Update(r.Context(), requester.ID, UpdateParams{
		Name:      params.Name,
		Color:     params.Color,
		Frame:     params.Frame,
		AvatarURL: params.AvatarURL,
	})
	if err != nil {
		if errors.Is(err, ErrEmployeeNotFound) {
			pkg.WriteError(w, "employee not found", http.StatusNotFound)
			return
		}
		log.Errorf("update profile for employee %d: %s", requester.ID, err)
		pkg.WriteError(w, "failed to update profile", http.StatusInternalServerError)
		return
	}

	respBytes, err := json.Marshal(struct {
		Message string   `json:"message"`
		User    Redacted `json:"user"`
	}{
		Message: "profile updated",
		User:    updated.Redacted(),
	})
	if err != nil {
		log.Errorf("marshal profile update response: %s", err)
		pkg.WriteError(w, "failed to update profile", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}

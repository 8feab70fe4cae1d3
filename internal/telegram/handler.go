package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cameratoon/scheduler/internal/employees"
	"github.com/cameratoon/scheduler/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=handler.go -destination=handler_mocks_test.go -package=telegram

type botNotifier interface {
	SendTest(ctx context.Context, recipient *employees.Employee, message string) error
	Broadcast(ctx context.Context, senderName, message string) (BroadcastResult, error)
}

type Handler struct {
	notifier botNotifier
}

func NewHandler(notifier botNotifier) *Handler {
	return &Handler{
		notifier: notifier,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/telegram/test", handler.HandleTest).
		Methods("POST", "OPTIONS").Name("telegram-test")
	router.HandleFunc("/api/telegram/broadcast", handler.HandleBroadcast).
		Methods("POST", "OPTIONS").Name("telegram-broadcast")
}

func (handler *Handler) HandleTest(w http.ResponseWriter, r *http.Request) {
	requester, ok := employees.RequesterFromContext(r.Context())
	if !ok {
		pkg.WriteError(w, "unauthenticated", http.StatusUnauthorized)
		return
	}
	if err := requester.Authorize(employees.RoleAdmin); err != nil {
		pkg.WriteError(w, "not allowed", http.StatusForbidden)
		return
	}

	var params struct {
		Message string `json:"message"`
	}
	// empty body is fine, a default test message gets sent
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("telegram test, decode body: %s", err)
	}

	if err := handler.notifier.SendTest(r.Context(), requester, params.Message); err != nil {
		log.Errorf("telegram test message: %s", err)
		pkg.WriteError(w, "failed to send test message", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, []byte(`{"sent":true}`))
}

func (handler *Handler) HandleBroadcast(w http.ResponseWriter, r *http.Request) {
	requester, ok := employees.RequesterFromContext(r.Context())
	if !ok {
		pkg.WriteError(w, "unauthenticated", http.StatusUnauthorized)
		return
	}
	if err := requester.Authorize(employees.RoleAdmin); err != nil {
		pkg.WriteError(w, "not allowed", http.StatusForbidden)
		return
	}

	var params struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("telegram broadcast, decode body: %s", err)
		pkg.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if params.Message == "" {
		pkg.WriteError(w, "message required", http.StatusBadRequest)
		return
	}

	result, err := handler.notifier.Broadcast(r.Context(), requester.Name, params.Message)
	if err != nil {
		if errors.Is(err, ErrNoRecipients) {
			pkg.WriteError(w, "no employees with a telegram id", http.StatusBadRequest)
			return
		}
		// partial failures still report the per-recipient tally
		log.Errorf("telegram broadcast by %s: %s", requester.Username, err)
	}

	respBytes, err := json.Marshal(result)
	if err != nil {
		log.Errorf("marshal broadcast result: %s", err)
		pkg.WriteError(w, "failed to broadcast", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}

package shifts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/cameratoon/scheduler/internal/employees"
	"github.com/cameratoon/scheduler/internal/metrics"
	"github.com/cameratoon/scheduler/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=handler.go -destination=handler_mocks_test.go -package=shifts

type shiftsRepo interface {
	Assign(ctx context.Context, date string, shiftType Type, employeeID int) (*Shift, bool, error)
	Delete(ctx context.Context, id int) error
	ListMonth(ctx context.Context, year, month int) ([]Shift, error)
	ListDate(ctx context.Context, date string) ([]Shift, error)
}

// assignmentNotifier pushes a best-effort message to the assigned employee
// through the external bot. Failures never affect the assignment itself.
type assignmentNotifier interface {
	ShiftAssigned(ctx context.Context, employeeID int, date, shiftType, assignerName string, isUpdate bool) error
}

type Handler struct {
	repo     shiftsRepo
	notifier assignmentNotifier
	metrics  *metrics.Manager

	// injectable clock for the "today" listing (for unit and dev testing)
	NowFunc func() time.Time
}

func NewHandler(
	repo shiftsRepo,
	notifier assignmentNotifier,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:     repo,
		notifier: notifier,
		metrics:  metricsManager,
		NowFunc:  time.Now,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/api/shifts/today", handler.HandleToday).
		Methods("GET", "OPTIONS").Name("today-shifts")
	router.HandleFunc("/api/shifts/{year}/{month}", handler.HandleListMonth).
		Methods("GET", "OPTIONS").Name("list-shifts")
	router.HandleFunc("/api/shifts", handler.HandleAssign).
		Methods("POST", "OPTIONS").Name("assign-shift")
	router.HandleFunc("/api/shifts/{id}", handler.HandleDelete).
		Methods("DELETE", "OPTIONS").Name("delete-shift")
}

func (handler *Handler) HandleListMonth(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		pkg.WriteError(w, "invalid year", http.StatusBadRequest)
		return
	}
	month, err := strconv.Atoi(vars["month"])
	if err != nil || month < 1 || month > 12 {
		pkg.WriteError(w, "invalid month", http.StatusBadRequest)
		return
	}

	monthShifts, err := handler.repo.ListMonth(r.Context(), year, month)
	if err != nil {
		log.Errorf("list shifts for %d-%d: %s", year, month, err)
		pkg.WriteError(w, "failed to list shifts", http.StatusInternalServerError)
		return
	}

	handler.writeShifts(w, monthShifts)
}

func (handler *Handler) HandleToday(w http.ResponseWriter, r *http.Request) {
	today := handler.NowFunc().Format(dateLayout)

	todayShifts, err := handler.repo.ListDate(r.Context(), today)
	if err != nil {
		log.Errorf("list today shifts: %s", err)
		pkg.WriteError(w, "failed to list shifts", http.StatusInternalServerError)
		return
	}

	handler.writeShifts(w, todayShifts)
}

func (handler *Handler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	requester, ok := employees.RequesterFromContext(r.Context())
	if !ok {
		pkg.WriteError(w, "unauthenticated", http.StatusUnauthorized)
		return
	}
	if err := requester.Authorize(employees.RoleAdmin, employees.RoleWorker); err != nil {
		pkg.WriteError(w, "not allowed", http.StatusForbidden)
		return
	}

	var params struct {
		Date       string `json:"date"`
		ShiftType  Type   `json:"shiftType"`
		EmployeeID int    `json:"employeeId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("assign shift, decode body: %s", err)
		pkg.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if !ValidDate(params.Date) {
		pkg.WriteError(w, fmt.Sprintf("invalid date: %q", params.Date), http.StatusBadRequest)
		return
	}
	if !params.ShiftType.Valid() {
		pkg.WriteError(w, fmt.Sprintf("invalid shift type: %q", params.ShiftType), http.StatusBadRequest)
		return
	}
	if params.EmployeeID == 0 {
		pkg.WriteError(w, "employee id required", http.StatusBadRequest)
		return
	}

	shift, isUpdate, err := handler.repo.Assign(r.Context(), params.Date, params.ShiftType, params.EmployeeID)
	if err != nil {
		log.Errorf("assign shift %s/%s to employee %d: %s", params.Date, params.ShiftType, params.EmployeeID, err)
		pkg.WriteError(w, "failed to assign shift", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterShiftsAssigned.Inc()
	log.Debugf(
		"shift %s/%s assigned to employee %d by %s (update: %t)",
		shift.Date, shift.Type, shift.EmployeeID, requester.Username, isUpdate,
	)

	// fire-and-forget, the assignment is already committed; detached from the
	// request context which dies with this response
	go func() {
		notifyCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := handler.notifier.ShiftAssigned(
			notifyCtx, shift.EmployeeID, shift.Date, string(shift.Type), requester.Name, isUpdate,
		); err != nil {
			log.Errorf("notify employee %d about shift %s/%s: %s", shift.EmployeeID, shift.Date, shift.Type, err)
		}
	}()

	respBytes, err := json.Marshal(shift)
	if err != nil {
		log.Errorf("marshal assigned shift: %s", err)
		pkg.WriteError(w, "failed to assign shift", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}

type DeleteShiftResponse struct {
	DeletedID int `json:"deletedId"`
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	requester, ok := employees.RequesterFromContext(r.Context())
	if !ok {
		pkg.WriteError(w, "unauthenticated", http.StatusUnauthorized)
		return
	}
	if err := requester.Authorize(employees.RoleAdmin, employees.RoleWorker); err != nil {
		pkg.WriteError(w, "not allowed", http.StatusForbidden)
		return
	}

	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		pkg.WriteError(w, "invalid shift id", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrShiftNotFound) {
			pkg.WriteError(w, "shift not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete shift %d: %s", id, err)
		pkg.WriteError(w, "failed to delete shift", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterShiftsRemoved.Inc()
	log.Debugf("shift %d deleted by %s", id, requester.Username)

	respBytes, err := json.Marshal(DeleteShiftResponse{DeletedID: id})
	if err != nil {
		log.Errorf("marshal delete shift response: %s", err)
		pkg.WriteError(w, "failed to delete shift", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}

func (handler *Handler) writeShifts(w http.ResponseWriter, shifts []Shift) {
	if shifts == nil {
		// empty list instead of null in the response
		shifts = []Shift{}
	}

	respBytes, err := json.Marshal(shifts)
	if err != nil {
		log.Errorf("marshal shifts: %s", err)
		pkg.WriteError(w, "failed to list shifts", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}

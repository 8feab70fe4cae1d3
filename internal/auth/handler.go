package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/cameratoon/scheduler/internal/employees"
	"github.com/cameratoon/scheduler/internal/metrics"
	"github.com/cameratoon/scheduler/internal/middleware"
	"github.com/cameratoon/scheduler/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
	metrics *metrics.Manager
}

func NewHandler(service *Service, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service: service,
		metrics: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router, rateLimiter middleware.RequestRateLimiter) {
	loginSubrouter := router.PathPrefix("/api/auth/login").Subrouter()
	loginSubrouter.HandleFunc("", handler.HandleLogin).
		Methods("POST", "OPTIONS").Name("login")
	// rate limit the login endpoint to prevent brute forcing credentials
	loginSubrouter.Use(middleware.RateLimit(rateLimiter, "login", handler.metrics))

	router.HandleFunc("/api/auth/logout", handler.HandleLogout).
		Methods("POST", "OPTIONS").Name("logout")
	router.HandleFunc("/api/auth/me", handler.HandleMe).
		Methods("GET", "OPTIONS").Name("me")
}

type loginResponse struct {
	Token    string             `json:"token"`
	Employee employees.Redacted `json:"employee"`
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	var params struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("login, decode body: %s", err)
		pkg.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if params.Username == "" || params.Password == "" {
		pkg.WriteError(w, "username and password required", http.StatusBadRequest)
		return
	}

	session, employee, err := handler.service.Login(r.Context(), params.Username, params.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			handler.metrics.CounterFailedLogins.Inc()
			log.Tracef("failed login attempt for user: %s", params.Username)
			pkg.WriteError(w, "wrong credentials", http.StatusUnauthorized)
			return
		}
		log.Errorf("login for %s: %s", params.Username, err)
		pkg.WriteError(w, "login failed", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterLogins.Inc()
	handler.metrics.GaugeSessions.Set(float64(handler.service.SessionsCount()))
	log.Debugf("new login: %s [%s]", employee.Username, employee.Role)

	respBytes, err := json.Marshal(loginResponse{
		Token:    session.Token,
		Employee: employee.Redacted(),
	})
	if err != nil {
		log.Errorf("marshal login response: %s", err)
		pkg.WriteError(w, "login failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	token := TokenFromRequest(r)
	if token == "" {
		pkg.WriteError(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	handler.service.Logout(r.Context(), token)
	handler.metrics.GaugeSessions.Set(float64(handler.service.SessionsCount()))

	pkg.WriteJSONResponseOK(w, `{"message":"logged out"}`)
}

func (handler *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	requester, ok := employees.RequesterFromContext(r.Context())
	if !ok {
		pkg.WriteError(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	respBytes, err := json.Marshal(requester.Redacted())
	if err != nil {
		log.Errorf("marshal current user: %s", err)
		pkg.WriteError(w, "failed to get current user", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}

// TokenFromRequest extracts the bearer session token from the Authorization header
func TokenFromRequest(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
}

package employees

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHandlerTest(t *testing.T) (*Handler, *Repo, *Employee, *Employee, *Employee) {
	t.Helper()
	ctx := context.Background()
	repo := NewRepo()

	admin, err := repo.Create(ctx, Employee{
		Name: "Влад Шайн", Username: "vladshain", PasswordHash: "h",
		Role: RoleAdmin, Initials: "ВШ", Color: "pink", TelegramID: "1120409420",
	})
	require.NoError(t, err)
	worker, err := repo.Create(ctx, Employee{
		Name: "Костя Молоков", Username: "kostyamolokov", PasswordHash: "h",
		Role: RoleWorker, Initials: "КМ", Color: "green",
	})
	require.NoError(t, err)
	guest, err := repo.Create(ctx, Employee{
		Name: "Гость", Username: "liya", PasswordHash: "h",
		Role: RoleGuest, Initials: "Г", Color: "purple",
	})
	require.NoError(t, err)

	return NewHandler(repo), repo, admin, worker, guest
}

func requestWithRequester(method, target, body string, requester *Employee) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if requester != nil {
		req = req.WithContext(ContextWithRequester(req.Context(), requester))
	}
	return req
}

func TestHandler_List_RedactsCredentials(t *testing.T) {
	handler, _, admin, _, _ := setupHandlerTest(t)

	req := requestWithRequester("GET", "/api/employees", "", admin)
	rr := httptest.NewRecorder()
	handler.HandleList(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "PasswordHash")
	assert.NotContains(t, rr.Body.String(), "passwordHash")

	var listed []Redacted
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listed))
	require.Len(t, listed, 3)
	assert.Equal(t, "vladshain", listed[0].Username)
	assert.Equal(t, "1120409420", listed[0].TelegramID)
}

func TestHandler_SetTelegramID(t *testing.T) {
	handler, repo, admin, worker, _ := setupHandlerTest(t)

	testCases := []struct {
		name           string
		requester      *Employee
		targetID       string
		body           string
		expectedStatus int
	}{
		{
			name:           "AdminCanSet",
			requester:      admin,
			targetID:       "2",
			body:           `{"telegramId":"535994249"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "WorkerForbidden",
			requester:      worker,
			targetID:       "1",
			body:           `{"telegramId":"1"}`,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "UnknownEmployee",
			requester:      admin,
			targetID:       "42",
			body:           `{"telegramId":"1"}`,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "InvalidID",
			requester:      admin,
			targetID:       "abc",
			body:           `{"telegramId":"1"}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := requestWithRequester("PATCH", "/api/employees/"+tc.targetID, tc.body, tc.requester)
			req = mux.SetURLVars(req, map[string]string{"id": tc.targetID})
			rr := httptest.NewRecorder()
			handler.HandleSetTelegramID(rr, req)
			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}

	updated, err := repo.Get(context.Background(), worker.ID)
	require.NoError(t, err)
	assert.Equal(t, "535994249", updated.TelegramID)
}

func TestHandler_SetGuestTelegramID(t *testing.T) {
	handler, repo, admin, _, guest := setupHandlerTest(t)

	req := requestWithRequester(
		"PATCH", "/api/employees/guest/telegram", `{"telegramId":"99887766"}`, admin,
	)
	rr := httptest.NewRecorder()
	handler.HandleSetGuestTelegramID(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	updated, err := repo.Get(context.Background(), guest.ID)
	require.NoError(t, err)
	assert.Equal(t, "99887766", updated.TelegramID)

	// empty telegram id rejected
	req = requestWithRequester("PATCH", "/api/employees/guest/telegram", `{}`, admin)
	rr = httptest.NewRecorder()
	handler.HandleSetGuestTelegramID(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_SetGuestTelegramID_NoGuestAccount(t *testing.T) {
	ctx := context.Background()
	repo := NewRepo()
	admin, err := repo.Create(ctx, Employee{
		Name: "A", Username: "a", PasswordHash: "h", Role: RoleAdmin, Initials: "A", Color: "pink",
	})
	require.NoError(t, err)
	handler := NewHandler(repo)

	req := requestWithRequester("PATCH", "/api/employees/guest/telegram", `{"telegramId":"1"}`, admin)
	rr := httptest.NewRecorder()
	handler.HandleSetGuestTelegramID(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandler_ProfileUpdate(t *testing.T) {
	handler, repo, _, worker, guest := setupHandlerTest(t)

	req := requestWithRequester(
		"PATCH", "/api/profile/update",
		`{"name":"Костя М.","color":"orange","frame":"gold","avatarUrl":"https://example.com/a.png"}`,
		worker,
	)
	rr := httptest.NewRecorder()
	handler.HandleProfileUpdate(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	updated, err := repo.Get(context.Background(), worker.ID)
	require.NoError(t, err)
	assert.Equal(t, "Костя М.", updated.Name)
	assert.Equal(t, "orange", updated.Color)
	assert.Equal(t, "gold", updated.Frame)
	assert.Equal(t, "https://example.com/a.png", updated.AvatarURL)

	// partial update leaves other fields alone
	req = requestWithRequester("PATCH", "/api/profile/update", `{"color":"cyan"}`, guest)
	rr = httptest.NewRecorder()
	handler.HandleProfileUpdate(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	updatedGuest, err := repo.Get(context.Background(), guest.ID)
	require.NoError(t, err)
	assert.Equal(t, "cyan", updatedGuest.Color)
	assert.Equal(t, "Гость", updatedGuest.Name)
}

func TestHandler_Unauthenticated(t *testing.T) {
	handler, _, _, _, _ := setupHandlerTest(t)

	req := requestWithRequester("PATCH", "/api/profile/update", `{"color":"cyan"}`, nil)
	rr := httptest.NewRecorder()
	handler.HandleProfileUpdate(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

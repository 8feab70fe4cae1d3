package employees

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrForbidden        = errors.New("forbidden")
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleWorker Role = "worker"
	RoleGuest  Role = "guest"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleWorker, RoleGuest:
		return true
	}
	return false
}

type Employee struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	Initials     string `json:"initials"`
	Color        string `json:"color"`
	TelegramID   string `json:"telegramId,omitempty"`
	Frame        string `json:"frame,omitempty"`
	AvatarURL    string `json:"avatarUrl,omitempty"`
}

// Redacted is the client-facing projection of an employee, without credentials
type Redacted struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Username   string `json:"username"`
	Role       Role   `json:"role"`
	Initials   string `json:"initials"`
	Color      string `json:"color"`
	TelegramID string `json:"telegramId,omitempty"`
	Frame      string `json:"frame,omitempty"`
	AvatarURL  string `json:"avatarUrl,omitempty"`
}

func (e *Employee) Redacted() Redacted {
	return Redacted{
		ID:         e.ID,
		Name:       e.Name,
		Username:   e.Username,
		Role:       e.Role,
		Initials:   e.Initials,
		Color:      e.Color,
		TelegramID: e.TelegramID,
		Frame:      e.Frame,
		AvatarURL:  e.AvatarURL,
	}
}

// Authorize checks the employee role against the per-operation allow-list
func (e *Employee) Authorize(allowed ...Role) error {
	for _, role := range allowed {
		if e.Role == role {
			return nil
		}
	}
	return fmt.Errorf("%w: role %q not allowed", ErrForbidden, e.Role)
}

type contextKey string

const requesterContextKey contextKey = "requester"

// ContextWithRequester stores the authenticated employee in the request context
func ContextWithRequester(ctx context.Context, employee *Employee) context.Context {
	return context.WithValue(ctx, requesterContextKey, employee)
}

// RequesterFromContext returns the authenticated employee, if any
func RequesterFromContext(ctx context.Context) (*Employee, bool) {
	employee, ok := ctx.Value(requesterContextKey).(*Employee)
	return employee, ok
}

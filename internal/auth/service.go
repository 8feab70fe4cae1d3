package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/cameratoon/scheduler/internal/employees"
	"github.com/cameratoon/scheduler/pkg"

	log "github.com/sirupsen/logrus"
)

const DefaultTTL = 24 * time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

type Session struct {
	Token      string
	EmployeeID int
	CreatedAt  time.Time
	ExpiresAt  time.Time
}

type employeeGetter interface {
	Get(ctx context.Context, id int) (*employees.Employee, error)
	GetByUsername(ctx context.Context, username string) (*employees.Employee, error)
}

// Service keeps login sessions in process memory. Sessions do not survive a
// restart, expired ones are rejected lazily on resolve and swept in bulk by
// ScanAndClean.
type Service struct {
	directory employeeGetter
	ttl       time.Duration

	mutex    sync.Mutex
	sessions map[string]*Session

	// ability to inject token generator and clock (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
	NowFunc        func() time.Time
}

func NewService(directory employeeGetter, ttl time.Duration) *Service {
	return &Service{
		directory:      directory,
		ttl:            ttl,
		sessions:       make(map[string]*Session),
		RandStringFunc: pkg.GenerateRandomString,
		NowFunc:        time.Now,
	}
}

// Login checks the credentials against the employee directory and creates a
// new session. Unknown username and wrong password are indistinguishable to
// the caller.
func (as *Service) Login(ctx context.Context, username, password string) (*Session, *employees.Employee, error) {
	employee, err := as.directory.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, employees.ErrEmployeeNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !pkg.CheckPasswordHash(password, employee.PasswordHash) {
		return nil, nil, ErrInvalidCredentials
	}

	token, err := as.RandStringFunc(35)
	if err != nil {
		return nil, nil, err
	}

	now := as.NowFunc()
	session := &Session{
		Token:      token,
		EmployeeID: employee.ID,
		CreatedAt:  now,
		ExpiresAt:  now.Add(as.ttl),
	}

	as.mutex.Lock()
	as.sessions[token] = session
	as.mutex.Unlock()

	return session, employee, nil
}

// Resolve maps a session token to its employee. An expired session gets
// deleted as a side effect.
func (as *Service) Resolve(ctx context.Context, token string) (*employees.Employee, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	as.mutex.Lock()
	session, ok := as.sessions[token]
	if ok && as.NowFunc().After(session.ExpiresAt) {
		delete(as.sessions, token)
		ok = false
	}
	as.mutex.Unlock()

	if !ok {
		return nil, ErrUnauthenticated
	}

	employee, err := as.directory.Get(ctx, session.EmployeeID)
	if err != nil {
		if errors.Is(err, employees.ErrEmployeeNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	return employee, nil
}

// Logout deletes the session unconditionally (idempotent)
func (as *Service) Logout(_ context.Context, token string) {
	as.mutex.Lock()
	delete(as.sessions, token)
	as.mutex.Unlock()
}

// ScanAndClean will run through all sessions and delete the expired ones.
// Expired sessions are already rejected on resolve, this only bounds memory.
func (as *Service) ScanAndClean(_ context.Context) int {
	as.mutex.Lock()
	defer as.mutex.Unlock()

	now := as.NowFunc()
	var cleaned int
	for token, session := range as.sessions {
		if now.After(session.ExpiresAt) {
			delete(as.sessions, token)
			cleaned++
		}
	}

	if cleaned > 0 {
		log.Warnf("=> auth service, scan and clean: removed %d expired sessions", cleaned)
	}

	return cleaned
}

func (as *Service) SessionsCount() int {
	as.mutex.Lock()
	defer as.mutex.Unlock()
	return len(as.sessions)
}

package employees

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Repo is the in-memory employee directory. All state is process memory,
// employees get re-seeded on restart.
type Repo struct {
	mutex     sync.RWMutex
	employees map[int]*Employee
	nextID    int
}

func NewRepo() *Repo {
	return &Repo{
		employees: make(map[int]*Employee),
		nextID:    1,
	}
}

func (r *Repo) Create(_ context.Context, employee Employee) (*Employee, error) {
	if employee.Username == "" {
		return nil, fmt.Errorf("employee username empty")
	}
	if !employee.Role.Valid() {
		return nil, fmt.Errorf("invalid employee role: %q", employee.Role)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, existing := range r.employees {
		if existing.Username == employee.Username {
			return nil, fmt.Errorf("employee username %q taken", employee.Username)
		}
	}

	if employee.Frame == "" {
		employee.Frame = "default"
	}

	employee.ID = r.nextID
	r.nextID++
	r.employees[employee.ID] = &employee

	created := employee
	return &created, nil
}

func (r *Repo) Get(_ context.Context, id int) (*Employee, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	employee, ok := r.employees[id]
	if !ok {
		return nil, ErrEmployeeNotFound
	}

	found := *employee
	return &found, nil
}

func (r *Repo) GetByUsername(_ context.Context, username string) (*Employee, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, employee := range r.employees {
		if employee.Username == username {
			found := *employee
			return &found, nil
		}
	}
	return nil, ErrEmployeeNotFound
}

// Guest returns the designated guest account (first employee with the guest role)
func (r *Repo) Guest(_ context.Context) (*Employee, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var guest *Employee
	for _, employee := range r.employees {
		if employee.Role != RoleGuest {
			continue
		}
		if guest == nil || employee.ID < guest.ID {
			guest = employee
		}
	}
	if guest == nil {
		return nil, ErrEmployeeNotFound
	}

	found := *guest
	return &found, nil
}

func (r *Repo) All(_ context.Context) ([]Employee, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	all := make([]Employee, 0, len(r.employees))
	for _, employee := range r.employees {
		all = append(all, *employee)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].ID < all[j].ID
	})

	return all, nil
}

// UpdateParams carries a partial employee update, nil fields stay unchanged
type UpdateParams struct {
	Name       *string
	Color      *string
	Frame      *string
	AvatarURL  *string
	TelegramID *string
}

func (r *Repo) Update(_ context.Context, id int, params UpdateParams) (*Employee, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	employee, ok := r.employees[id]
	if !ok {
		return nil, ErrEmployeeNotFound
	}

	if params.Name != nil {
		employee.Name = *params.Name
	}
	if params.Color != nil {
		employee.Color = *params.Color
	}
	if params.Frame != nil {
		employee.Frame = *params.Frame
	}
	if params.AvatarURL != nil {
		employee.AvatarURL = *params.AvatarURL
	}
	if params.TelegramID != nil {
		employee.TelegramID = *params.TelegramID
	}

	updated := *employee
	return &updated, nil
}

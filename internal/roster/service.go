// Package roster manages the student and faculty collections and the merged
// user list used by the login screen.
package roster

import (
	"context"
	"strings"

	"campusconnect/internal/model"
	"campusconnect/internal/seed"
	"campusconnect/internal/store"
)

// Service reads and writes the students and faculty documents. Every mutation
// is a whole-collection overwrite; an empty store falls back to the built-in
// seed roster.
type Service struct {
	store store.Store
	cache *UserCache
}

// NewService creates a roster service with an empty user cache. Callers are
// expected to Refresh the cache once at startup.
func NewService(st store.Store) *Service {
	return &Service{store: st, cache: &UserCache{}}
}

// Students returns the stored roster, or the seed roster when nothing has
// been persisted yet.
func (s *Service) Students(ctx context.Context) []model.Student {
	var students []model.Student
	s.store.Get(ctx, store.KeyStudents, &students)
	if len(students) == 0 {
		return seed.Students()
	}
	return students
}

// StudentByID finds one student, nil when absent.
func (s *Service) StudentByID(ctx context.Context, id string) *model.Student {
	for _, st := range s.Students(ctx) {
		if st.ID == id {
			out := st
			return &out
		}
	}
	return nil
}

// CreateStudent appends a student (caller-supplied id) and persists the whole
// collection.
func (s *Service) CreateStudent(ctx context.Context, student model.Student) model.Student {
	students := append(s.Students(ctx), student)
	s.store.Set(ctx, store.KeyStudents, students)
	s.Refresh(ctx)
	return student
}

// UpdateStudent shallow-merges partial fields into the matching record and
// persists the whole collection. Returns nil when the id is absent.
func (s *Service) UpdateStudent(ctx context.Context, id string, patch map[string]any) (*model.Student, error) {
	students := s.Students(ctx)
	for i := range students {
		if students[i].ID != id {
			continue
		}
		if err := model.MergePatch(&students[i], patch); err != nil {
			return nil, err
		}
		s.store.Set(ctx, store.KeyStudents, students)
		s.Refresh(ctx)
		out := students[i]
		return &out, nil
	}
	return nil, nil
}

// DeleteStudent removes the matching record and reports whether the
// collection shrank.
func (s *Service) DeleteStudent(ctx context.Context, id string) bool {
	students := s.Students(ctx)
	kept := students[:0:0]
	for _, st := range students {
		if st.ID != id {
			kept = append(kept, st)
		}
	}
	s.store.Set(ctx, store.KeyStudents, kept)
	s.Refresh(ctx)
	return len(kept) < len(students)
}

// Faculty returns the stored faculty list, or the seed list when empty.
func (s *Service) Faculty(ctx context.Context) []model.User {
	var faculty []model.User
	s.store.Get(ctx, store.KeyFaculty, &faculty)
	if len(faculty) == 0 {
		return seed.Faculty()
	}
	return faculty
}

// FacultyByID finds one faculty member, nil when absent.
func (s *Service) FacultyByID(ctx context.Context, id string) *model.User {
	for _, f := range s.Faculty(ctx) {
		if f.ID == id {
			out := f
			return &out
		}
	}
	return nil
}

// CreateFaculty appends a faculty member and persists the whole collection.
func (s *Service) CreateFaculty(ctx context.Context, faculty model.User) model.User {
	list := append(s.Faculty(ctx), faculty)
	s.store.Set(ctx, store.KeyFaculty, list)
	s.Refresh(ctx)
	return faculty
}

// UpdateFaculty shallow-merges partial fields into the matching record.
func (s *Service) UpdateFaculty(ctx context.Context, id string, patch map[string]any) (*model.User, error) {
	faculty := s.Faculty(ctx)
	for i := range faculty {
		if faculty[i].ID != id {
			continue
		}
		if err := model.MergePatch(&faculty[i], patch); err != nil {
			return nil, err
		}
		s.store.Set(ctx, store.KeyFaculty, faculty)
		s.Refresh(ctx)
		out := faculty[i]
		return &out, nil
	}
	return nil, nil
}

// DeleteFaculty removes the matching record and reports whether the
// collection shrank.
func (s *Service) DeleteFaculty(ctx context.Context, id string) bool {
	faculty := s.Faculty(ctx)
	kept := faculty[:0:0]
	for _, f := range faculty {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	s.store.Set(ctx, store.KeyFaculty, kept)
	s.Refresh(ctx)
	return len(kept) < len(faculty)
}

// AllUsers returns the cached merged user list: students projected to users,
// faculty, then the built-in admins.
func (s *Service) AllUsers(ctx context.Context) []model.User {
	if users := s.cache.users(); users != nil {
		return users
	}
	s.Refresh(ctx)
	return s.cache.users()
}

// UserByID resolves one login candidate from the cache.
func (s *Service) UserByID(ctx context.Context, id string) *model.User {
	for _, u := range s.AllUsers(ctx) {
		if u.ID == id {
			out := u
			return &out
		}
	}
	return nil
}

// Refresh rebuilds the user cache from the current student and faculty
// collections. Invoked at startup and after every roster mutation.
func (s *Service) Refresh(ctx context.Context) {
	students := s.Students(ctx)
	faculty := s.Faculty(ctx)
	users := make([]model.User, 0, len(students)+len(faculty)+1)
	for _, st := range students {
		users = append(users, model.User{
			ID:    st.ID,
			Name:  st.Name,
			Role:  model.RoleStudent,
			Email: studentEmail(st.Name),
		})
	}
	users = append(users, faculty...)
	users = append(users, seed.Admins()...)
	s.cache.replace(users)
}

func studentEmail(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), ".")) + "@campus.com"
}

package main

import (
	"errors"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/apivalidate/pkg/httpvalidate"
	"github.com/dmitrymomot/apivalidate/pkg/response"
)

var (
	roles = map[string]string{
		"Admin":  "admin",
		"Member": "member",
		"Guest":  "guest",
	}
	allowedTags = []string{"beta", "staff", "vip"}

	errUserNotFound = errors.New("user not found")
)

var userSchema = response.MustSchema(response.SchemaFromYAML([]byte(`
type: object
properties:
  id:
    type: string
  name:
    type: string
  email:
    type: [string, "null"]
  role:
    type: string
    enum: [admin, member, guest]
  tags:
    type: array
    items:
      type: string
    default: []
  created_at:
    type: string
`)))

var userListSchema = response.MustSchema(response.SchemaFromYAML([]byte(`
type: object
properties:
  users:
    type: array
    items:
      type: object
      properties:
        id:
          type: string
        name:
          type: string
        role:
          type: string
`)))

type user struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Email     any            `json:"email"`
	Role      string         `json:"role"`
	Pin       string         `json:"pin,omitempty"`
	Tags      []string       `json:"tags,omitempty"`
	Address   map[string]any `json:"address,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

type userStore struct {
	mu    sync.RWMutex
	users map[string]user
}

func newUserStore() *userStore {
	return &userStore{users: make(map[string]user)}
}

func (s *userStore) put(u user) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

func (s *userStore) get(id string) (user, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return user{}, errUserNotFound
	}
	return u, nil
}

func (s *userStore) list(role string) []user {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]user, 0, len(s.users))
	for _, u := range s.users {
		if role == "" || u.Role == role {
			out = append(out, u)
		}
	}
	slices.SortFunc(out, func(a, b user) int { return strings.Compare(a.ID, b.ID) })
	return out
}

type userAPI struct {
	binder *httpvalidate.Binder
	store  *userStore
}

func (a *userAPI) list(w http.ResponseWriter, r *http.Request) {
	res, _ := httpvalidate.FromContext(r.Context())
	role, _ := res.Query["role"].(string)
	a.binder.JSON(w, r, http.StatusOK, map[string]any{"users": a.store.list(role)}, userListSchema)
}

func (a *userAPI) create(w http.ResponseWriter, r *http.Request) {
	res, _ := httpvalidate.FromContext(r.Context())

	u := user{
		ID:        uuid.New().String(),
		Name:      res.Body["name"].(string),
		Email:     res.Body["email"],
		Role:      res.Body["role"].(string),
		CreatedAt: time.Now().UTC(),
	}
	u.Pin, _ = res.Body["pin"].(string)
	u.Address, _ = res.Body["address"].(map[string]any)
	if tags, ok := res.Body["tags"].([]any); ok {
		for _, t := range tags {
			u.Tags = append(u.Tags, t.(string))
		}
	}
	a.store.put(u)

	a.binder.JSON(w, r, http.StatusCreated, u, userSchema)
}

func (a *userAPI) get(w http.ResponseWriter, r *http.Request) {
	res, _ := httpvalidate.FromContext(r.Context())

	u, err := a.store.get(res.Params["id"].(string))
	if err != nil {
		a.notFound(w, r)
		return
	}
	a.binder.JSON(w, r, http.StatusOK, u, userSchema)
}

func (a *userAPI) update(w http.ResponseWriter, r *http.Request) {
	res, _ := httpvalidate.FromContext(r.Context())

	u, err := a.store.get(res.Params["id"].(string))
	if err != nil {
		a.notFound(w, r)
		return
	}
	if name, ok := res.Body["name"].(string); ok {
		u.Name = name
	}
	if email, ok := res.Body["email"]; ok {
		u.Email = email
	}
	if role, ok := res.Body["role"].(string); ok {
		u.Role = role
	}
	a.store.put(u)

	a.binder.JSON(w, r, http.StatusOK, u, userSchema)
}

func (a *userAPI) notFound(w http.ResponseWriter, r *http.Request) {
	a.binder.JSON(w, r, http.StatusNotFound, map[string]string{"message": errUserNotFound.Error()}, nil)
}

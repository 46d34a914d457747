package repository

import (
	"sync"

	"github.com/chang085/Recommendation-system/internal/apperr"
	"github.com/chang085/Recommendation-system/internal/models"
)

// UserRepository guarda los perfiles en memoria, en orden de inserción.
type UserRepository struct {
	mu    sync.RWMutex
	order []int
	users map[int]models.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[int]models.User)}
}

func (r *UserRepository) Load(us []models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range us {
		r.insertLocked(u)
	}
}

func (r *UserRepository) Insert(u models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.insertLocked(u)
}

func (r *UserRepository) insertLocked(u models.User) {
	if _, ok := r.users[u.UserID]; !ok {
		r.order = append(r.order, u.UserID)
	}
	r.users[u.UserID] = u
}

func (r *UserRepository) GetByID(userID int) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[userID]
	if !ok {
		return models.User{}, apperr.ErrNotFound
	}
	return u, nil
}

func (r *UserRepository) ExistsByName(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Name == name {
			return true
		}
	}
	return false
}

// FindByCredentials hace el escaneo lineal nombre+password en texto plano.
// Sin lockout ni throttling: la seguridad de credenciales está fuera de
// alcance del sistema.
func (r *UserRepository) FindByCredentials(name, password string) (models.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		u := r.users[id]
		if u.Name == name && u.Password == password {
			return u, true
		}
	}
	return models.User{}, false
}

// NextUserID asigna ids secuenciales: cantidad actual + 1.
func (r *UserRepository) NextUserID() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users) + 1
}

func (r *UserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

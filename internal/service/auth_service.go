package service

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/chang085/Recommendation-system/internal/apperr"
	"github.com/chang085/Recommendation-system/internal/dataset"
	"github.com/chang085/Recommendation-system/internal/models"
	"github.com/chang085/Recommendation-system/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService registra y autentica usuarios. Las contraseñas se comparan
// en texto plano por igualdad exacta, igual que el dataset de carga: el
// hashing está fuera de alcance del sistema.
type AuthService struct {
	users   *repository.UserRepository
	ratings *repository.RatingRepository
	movies  *repository.MovieRepository

	// archivos donde el registro agrega su línea (best-effort)
	usersCSV   string
	ratingsCSV string

	jwtSecret []byte
}

func NewAuthService(
	users *repository.UserRepository,
	ratings *repository.RatingRepository,
	movies *repository.MovieRepository,
	usersCSV, ratingsCSV string,
	secret string,
) *AuthService {
	return &AuthService{
		users:      users,
		ratings:    ratings,
		movies:     movies,
		usersCSV:   usersCSV,
		ratingsCSV: ratingsCSV,
		jwtSecret:  []byte(secret),
	}
}

type RegisterData struct {
	Name     string
	Password string
	Age      int
	Gender   string
}

// ================== REGISTER & LOGIN ==================

// Register valida los campos, crea el perfil con id secuencial, inicializa
// el vector de ratings en ceros (largo = catálogo actual), persiste ambos
// registros y deja al usuario logueado devolviendo su token.
func (s *AuthService) Register(data RegisterData) (string, models.User, error) {
	if strings.TrimSpace(data.Name) == "" {
		return "", models.User{}, apperr.Validation("name es obligatorio")
	}
	if strings.TrimSpace(data.Password) == "" {
		return "", models.User{}, apperr.Validation("password es obligatorio")
	}
	if data.Age <= 0 {
		return "", models.User{}, apperr.Validation("age debe ser un entero positivo")
	}
	if data.Gender != models.GenderMale && data.Gender != models.GenderFemale {
		return "", models.User{}, apperr.Validation("gender debe ser Male o Female")
	}

	if s.users.ExistsByName(data.Name) {
		return "", models.User{}, apperr.ErrConflict
	}

	u := models.User{
		UserID:   s.users.NextUserID(),
		Name:     data.Name,
		Password: data.Password,
		Age:      data.Age,
		Gender:   data.Gender,
	}

	vec := make(models.RatingVector, s.movies.Count())

	s.users.Insert(u)
	s.ratings.Put(u.UserID, vec)

	// persistencia append-only; si falla no se revierte el alta en memoria
	if err := dataset.AppendUser(s.usersCSV, u); err != nil {
		log.Printf("[auth] error persistiendo usuario %d: %v", u.UserID, err)
	}
	if err := dataset.AppendRatings(s.ratingsCSV, u.UserID, vec); err != nil {
		log.Printf("[auth] error persistiendo ratings de %d: %v", u.UserID, err)
	}

	token, err := s.issueToken(u)
	if err != nil {
		return "", models.User{}, err
	}
	return token, u, nil
}

// Login escanea los perfiles buscando nombre+password exactos.
func (s *AuthService) Login(name, password string) (string, models.User, error) {
	u, ok := s.users.FindByCredentials(name, password)
	if !ok {
		return "", models.User{}, fmt.Errorf("invalid credentials")
	}

	token, err := s.issueToken(u)
	if err != nil {
		return "", models.User{}, err
	}
	return token, u, nil
}

func (s *AuthService) GetUserByID(userID int) (models.User, error) {
	return s.users.GetByID(userID)
}

func (s *AuthService) issueToken(u models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": u.UserID,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(s.jwtSecret)
}

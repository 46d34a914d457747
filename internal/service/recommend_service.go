package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/chang085/Recommendation-system/internal/apperr"
	"github.com/chang085/Recommendation-system/internal/cache"
	"github.com/chang085/Recommendation-system/internal/models"
	"github.com/chang085/Recommendation-system/internal/repository"
	"github.com/chang085/Recommendation-system/internal/similarity"
)

const (
	// TopN es el largo de toda lista de recomendaciones.
	TopN = 5
	// HotN: películas extra por vistas en la estrategia cold-start.
	HotN = 2
	// NeighborK: vecinos para la predicción usuario-usuario.
	NeighborK = 5
	// MatrixK: vecinos por película rateada en la estrategia por matriz.
	MatrixK = 6

	cacheTTLSeconds = 60 * 60
)

// géneros preferidos por género demográfico
var (
	maleGenres   = []string{"Action", "Adventure", "Crime", "Horror"}
	femaleGenres = []string{"Drama"}
)

// RecommendService compone catálogo, perfiles, vectores de ratings y el
// motor de similitud en las cinco estrategias. Cada estrategia es función
// pura de los stores más el usuario explícito: no hay sesión global.
type RecommendService struct {
	movies  *repository.MovieRepository
	users   *repository.UserRepository
	ratings *repository.RatingRepository
	recRepo *repository.RecommendationRepository // puede ser nil
	matrix  *similarity.Matrix                   // puede ser nil
}

func NewRecommendService(
	movies *repository.MovieRepository,
	users *repository.UserRepository,
	ratings *repository.RatingRepository,
	recRepo *repository.RecommendationRepository,
	matrix *similarity.Matrix,
) *RecommendService {
	return &RecommendService{
		movies:  movies,
		users:   users,
		ratings: ratings,
		recRepo: recRepo,
		matrix:  matrix,
	}
}

// ====== 1. Cold-start ======

// ForNewUsers devuelve el top 5 por rating promedio seguido del top 2 por
// vistas, sin deduplicar: una película puede salir en ambos bloques y la
// lista conserva el duplicado. No requiere sesión.
func (s *RecommendService) ForNewUsers() []models.RecItem {
	byRating := s.movies.Top("rating", TopN)
	byViews := s.movies.Top("views", HotN)

	items := make([]models.RecItem, 0, len(byRating)+len(byViews))
	for _, m := range byRating {
		items = append(items, toRecItem(m, m.AvgRating))
	}
	for _, m := range byViews {
		items = append(items, toRecItem(m, m.AvgRating))
	}
	return items
}

// ====== 2. Historial propio ======

// ByHistory devuelve las 5 películas mejor calificadas por el propio
// usuario, descendente por su rating (empates: movieId ascendente).
func (s *RecommendService) ByHistory(userID int) ([]models.RecItem, error) {
	if userID <= 0 {
		return nil, apperr.ErrSessionRequired
	}
	vec, err := s.ratings.Get(userID)
	if err != nil {
		return nil, err
	}

	type rated struct {
		movieID int
		rating  int
	}
	list := make([]rated, 0, len(vec))
	for i, v := range vec {
		if v > 0 {
			list = append(list, rated{movieID: i + 1, rating: v})
		}
	}

	sort.SliceStable(list, func(i, j int) bool { return list[i].rating > list[j].rating })
	if len(list) > TopN {
		list = list[:TopN]
	}

	items := make([]models.RecItem, 0, len(list))
	for _, r := range list {
		m, err := s.movies.GetByID(r.movieID)
		if err != nil {
			log.Printf("[recommend] rating para película desconocida %d, se salta", r.movieID)
			continue
		}
		items = append(items, toRecItem(m, float64(r.rating)))
	}
	return items, nil
}

// ====== 3. Predicción por vecinos ======

// ByPredictedRatings predice el rating de cada película no calificada como
// promedio ponderado del rating de los 5 usuarios más similares (peso = su
// similitud con el objetivo) y devuelve las 5 predicciones más altas.
//
// Un vecino que tampoco calificó la película aporta sim*0 al numerador pero
// su similitud sí entra al denominador, diluyendo la predicción hacia 0.
func (s *RecommendService) ByPredictedRatings(ctx context.Context, userID int, refresh bool) ([]models.RecItem, error) {
	if userID <= 0 {
		return nil, apperr.ErrSessionRequired
	}

	key := fmt.Sprintf("rec:user:%d:predicted", userID)
	if !refresh {
		var cached []models.RecItem
		if ok, err := cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	vec, err := s.ratings.Get(userID)
	if err != nil {
		return nil, err
	}

	all := s.ratings.All()
	neighbors := similarity.TopSimilarUsers(vec, all, userID, NeighborK)

	vectors := make(map[int]models.RatingVector, len(all))
	for _, ur := range all {
		vectors[ur.UserID] = ur.Ratings
	}

	type prediction struct {
		movieID int
		rating  float64
	}
	preds := make([]prediction, 0, s.movies.Count())

	for movieID := 1; movieID <= s.movies.Count(); movieID++ {
		if vec.At(movieID-1) != 0 {
			continue // ya calificada
		}

		var weighted, total float64
		for _, n := range neighbors {
			weighted += n.Sim * float64(vectors[n.UserID].At(movieID-1))
			total += n.Sim
		}

		var predicted float64
		if total > 0 {
			predicted = weighted / total
		}
		preds = append(preds, prediction{movieID: movieID, rating: predicted})
	}

	sort.SliceStable(preds, func(i, j int) bool { return preds[i].rating > preds[j].rating })
	if len(preds) > TopN {
		preds = preds[:TopN]
	}

	items := make([]models.RecItem, 0, len(preds))
	for _, p := range preds {
		m, err := s.movies.GetByID(p.movieID)
		if err != nil {
			continue
		}
		items = append(items, toRecItem(m, p.rating))
	}

	s.saveHistory(ctx, userID, "user-knn", items)
	if err := cache.SetJSON(ctx, key, items, cacheTTLSeconds); err != nil {
		log.Printf("[recommend] error cacheando predicciones de %d: %v", userID, err)
	}
	return items, nil
}

// FindSimilarUsers expone los k vecinos más cercanos del usuario,
// descendente por similitud (empates: id ascendente).
func (s *RecommendService) FindSimilarUsers(userID, k int) ([]int, error) {
	vec, err := s.ratings.Get(userID)
	if err != nil {
		return nil, err
	}

	ranked := similarity.TopSimilarUsers(vec, s.ratings.All(), userID, k)
	ids := make([]int, 0, len(ranked))
	for _, r := range ranked {
		ids = append(ids, r.UserID)
	}
	return ids, nil
}

// UserProfile busca el perfil para estrategias que leen datos del usuario
// logueado (p. ej. el género en la demográfica).
func (s *RecommendService) UserProfile(userID int) (models.User, error) {
	if userID <= 0 {
		return models.User{}, apperr.ErrSessionRequired
	}
	return s.users.GetByID(userID)
}

// ====== 4. Demográfica ======

// ByGender filtra el catálogo por los géneros preferidos del género
// demográfico (case-insensitive en el argumento) y devuelve el top 5 por
// rating promedio. Un género desconocido da lista vacía, no error; no
// requiere sesión si el caller pasa el género explícito.
func (s *RecommendService) ByGender(gender string) []models.RecItem {
	var preferred []string
	switch strings.ToLower(gender) {
	case "male":
		preferred = maleGenres
	case "female":
		preferred = femaleGenres
	default:
		return []models.RecItem{}
	}

	var matched []models.Movie
	for _, m := range s.movies.All() {
		for _, g := range preferred {
			// el campo genre puede traer varios valores ("Action|Crime"),
			// alcanza con que contenga alguno preferido
			if strings.Contains(m.Genre, g) {
				matched = append(matched, m)
				break
			}
		}
	}

	sort.SliceStable(matched, func(i, j int) bool { return matched[i].AvgRating > matched[j].AvgRating })
	if len(matched) > TopN {
		matched = matched[:TopN]
	}

	items := make([]models.RecItem, 0, len(matched))
	for _, m := range matched {
		items = append(items, toRecItem(m, m.AvgRating))
	}
	return items
}

// ====== 5. Por matriz de similitud ítem-ítem ======

// BySimilarMovies acumula, para cada película calificada en [1,10], el
// aporte sim*rating de sus MatrixK vecinas más similares. Los aportes de
// varias películas calificadas se suman. Devuelve el top 5 por score.
// Sin ratings en rango devuelve ErrNoRecommendations: señal explícita,
// distinta de una lista vacía.
func (s *RecommendService) BySimilarMovies(ctx context.Context, userID int, refresh bool) ([]models.RecItem, error) {
	if userID <= 0 {
		return nil, apperr.ErrSessionRequired
	}
	if s.matrix == nil {
		return nil, fmt.Errorf("matriz de similitud no cargada")
	}

	key := fmt.Sprintf("rec:user:%d:item-sim", userID)
	if !refresh {
		var cached []models.RecItem
		if ok, err := cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	vec, err := s.ratings.Get(userID)
	if err != nil {
		return nil, err
	}

	type rated struct {
		movieID int
		rating  int
	}
	var ratedMovies []rated
	for i, v := range vec {
		if v >= 1 && v <= 10 {
			ratedMovies = append(ratedMovies, rated{movieID: i + 1, rating: v})
		}
	}
	if len(ratedMovies) == 0 {
		return nil, apperr.ErrNoRecommendations
	}

	scores := make(map[int]float64)
	for _, r := range ratedMovies {
		if !s.matrix.Has(r.movieID) {
			log.Printf("[recommend] película %d sin fila en la matriz, se salta", r.movieID)
			continue
		}
		for _, n := range s.matrix.TopK(r.movieID, MatrixK) {
			scores[n.MovieID] += n.Sim * float64(r.rating)
		}
	}

	// candidatos en orden de id ascendente para que el sort estable
	// desempate por id
	candidates := make([]int, 0, len(scores))
	for id := range scores {
		candidates = append(candidates, id)
	}
	sort.Ints(candidates)
	sort.SliceStable(candidates, func(i, j int) bool {
		return scores[candidates[i]] > scores[candidates[j]]
	})
	if len(candidates) > TopN {
		candidates = candidates[:TopN]
	}

	items := make([]models.RecItem, 0, len(candidates))
	for _, id := range candidates {
		m, err := s.movies.GetByID(id)
		if err != nil {
			continue
		}
		items = append(items, toRecItem(m, scores[id]))
	}

	s.saveHistory(ctx, userID, "item-sim", items)
	if err := cache.SetJSON(ctx, key, items, cacheTTLSeconds); err != nil {
		log.Printf("[recommend] error cacheando item-sim de %d: %v", userID, err)
	}
	return items, nil
}

// ====== helpers ======

func toRecItem(m models.Movie, score float64) models.RecItem {
	return models.RecItem{
		MovieID:   m.MovieID,
		Title:     m.Title,
		Genre:     m.Genre,
		AvgRating: m.AvgRating,
		Score:     score,
	}
}

// saveHistory guarda el historial en Mongo sin romper la respuesta si falla.
func (s *RecommendService) saveHistory(ctx context.Context, userID int, strategy string, items []models.RecItem) {
	if s.recRepo == nil {
		return
	}
	err := s.recRepo.Insert(ctx, &models.Recommendation{
		UserID:   userID,
		Strategy: strategy,
		Items:    items,
	})
	if err != nil {
		log.Printf("[recommend] error guardando historial en Mongo: %v", err)
	}
}

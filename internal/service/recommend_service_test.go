package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/chang085/Recommendation-system/internal/apperr"
	"github.com/chang085/Recommendation-system/internal/models"
	"github.com/chang085/Recommendation-system/internal/repository"
	"github.com/chang085/Recommendation-system/internal/similarity"
)

// catálogo de prueba para cold-start y demográfica
func popularityCatalog() []models.Movie {
	return []models.Movie{
		{MovieID: 1, Title: "A", Genre: "Action", AvgRating: 9.5, ViewCount: 100},
		{MovieID: 2, Title: "B", Genre: "Drama", AvgRating: 9.0, ViewCount: 50},
		{MovieID: 3, Title: "C", Genre: "Crime", AvgRating: 8.0, ViewCount: 200},
		{MovieID: 4, Title: "D", Genre: "Drama", AvgRating: 7.0, ViewCount: 10},
		{MovieID: 5, Title: "E", Genre: "Horror", AvgRating: 6.0, ViewCount: 5},
		{MovieID: 6, Title: "F", Genre: "Drama", AvgRating: 5.0, ViewCount: 500},
		{MovieID: 7, Title: "G", Genre: "Action", AvgRating: 4.0, ViewCount: 1},
	}
}

func newTestService(movies []models.Movie, ratings []models.UserRatings, users []models.User, matrix *similarity.Matrix) *RecommendService {
	movieRepo := repository.NewMovieRepository()
	movieRepo.Load(movies)

	userRepo := repository.NewUserRepository()
	userRepo.Load(users)

	ratingRepo := repository.NewRatingRepository()
	ratingRepo.Load(ratings)

	return NewRecommendService(movieRepo, userRepo, ratingRepo, nil, matrix)
}

func itemIDs(items []models.RecItem) []int {
	out := make([]int, 0, len(items))
	for _, it := range items {
		out = append(out, it.MovieID)
	}
	return out
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestForNewUsers(t *testing.T) {
	svc := newTestService(popularityCatalog(), nil, nil, nil)

	got := itemIDs(svc.ForNewUsers())

	// top 5 por rating: A B C D E; top 2 por vistas: F C.
	// C sale dos veces y el duplicado se conserva.
	want := []int{1, 2, 3, 4, 5, 6, 3}
	if !equalIDs(got, want) {
		t.Errorf("ForNewUsers = %v, want %v", got, want)
	}
}

func TestByHistory(t *testing.T) {
	ratings := []models.UserRatings{
		// slots: m1..m7; rateadas: m2=7, m3=9, m4=7, m6=3, m7=8, m5=2
		{UserID: 1, Ratings: models.RatingVector{0, 7, 9, 7, 2, 3, 8}},
	}
	svc := newTestService(popularityCatalog(), ratings, nil, nil)

	items, err := svc.ByHistory(1)
	if err != nil {
		t.Fatalf("ByHistory: %v", err)
	}

	// desc por rating propio; empate 7 entre m2 y m4: id ascendente
	want := []int{3, 7, 2, 4, 6}
	if got := itemIDs(items); !equalIDs(got, want) {
		t.Errorf("ByHistory = %v, want %v", got, want)
	}
	if items[0].Score != 9 {
		t.Errorf("score del primero = %v, want 9 (rating propio)", items[0].Score)
	}
}

func TestByHistoryRequiresSession(t *testing.T) {
	svc := newTestService(popularityCatalog(), nil, nil, nil)

	if _, err := svc.ByHistory(0); !errors.Is(err, apperr.ErrSessionRequired) {
		t.Errorf("sin sesión: got %v, want ErrSessionRequired", err)
	}
}

func TestByHistoryUnknownUser(t *testing.T) {
	svc := newTestService(popularityCatalog(), nil, nil, nil)

	if _, err := svc.ByHistory(99); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("usuario sin vector: got %v, want ErrNotFound", err)
	}
}

func TestByGender(t *testing.T) {
	movies := []models.Movie{
		{MovieID: 1, Title: "Solo Action", Genre: "Action", AvgRating: 6.0},
		{MovieID: 2, Title: "Un Drama", Genre: "Drama", AvgRating: 9.0},
		{MovieID: 3, Title: "Mixta", Genre: "Action|Horror", AvgRating: 8.0},
	}
	svc := newTestService(movies, nil, nil, nil)

	tests := []struct {
		name   string
		gender string
		want   []int
	}{
		{"male matchea Action y Action|Horror, desc por rating", "Male", []int{3, 1}},
		{"case-insensitive", "mAlE", []int{3, 1}},
		{"female matchea Drama", "female", []int{2}},
		{"género desconocido da vacío, no error", "other", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := itemIDs(svc.ByGender(tt.gender))
			if !equalIDs(got, tt.want) {
				t.Errorf("ByGender(%q) = %v, want %v", tt.gender, got, tt.want)
			}
		})
	}
}

func TestByGenderTopN(t *testing.T) {
	svc := newTestService(popularityCatalog(), nil, nil, nil)

	// female => Drama: m2(9.0), m4(7.0), m6(5.0)
	got := itemIDs(svc.ByGender("female"))
	if !equalIDs(got, []int{2, 4, 6}) {
		t.Errorf("ByGender(female) = %v", got)
	}
}

func TestByPredictedRatingsZeroSimilarity(t *testing.T) {
	// el objetivo no calificó nada: similitud 0 con todos, toda predicción
	// da 0 y el top 5 queda en orden de id
	ratings := []models.UserRatings{
		{UserID: 1, Ratings: models.RatingVector{0, 0, 0, 0, 0, 0, 0}},
		{UserID: 2, Ratings: models.RatingVector{5, 5, 5, 5, 5, 5, 5}},
		{UserID: 3, Ratings: models.RatingVector{8, 0, 8, 0, 8, 0, 8}},
	}
	svc := newTestService(popularityCatalog(), ratings, nil, nil)

	items, err := svc.ByPredictedRatings(context.Background(), 1, false)
	if err != nil {
		t.Fatalf("ByPredictedRatings: %v", err)
	}

	want := []int{1, 2, 3, 4, 5}
	if got := itemIDs(items); !equalIDs(got, want) {
		t.Errorf("top 5 = %v, want %v", got, want)
	}
	for _, it := range items {
		if it.Score != 0 {
			t.Errorf("película %d con predicción %v, want 0", it.MovieID, it.Score)
		}
	}
}

func TestByPredictedRatingsWeightedAverage(t *testing.T) {
	// objetivo calificó m1 y m2; dos vecinos idénticos en común (sim 1).
	// Para m3: vecino 2 la calificó 8, vecino 3 la tiene en 0, y su
	// similitud igual entra al denominador: predicción = (8+0)/2 = 4
	ratings := []models.UserRatings{
		{UserID: 1, Ratings: models.RatingVector{6, 4, 0}},
		{UserID: 2, Ratings: models.RatingVector{6, 4, 8}},
		{UserID: 3, Ratings: models.RatingVector{6, 4, 0}},
	}
	movies := []models.Movie{
		{MovieID: 1, Title: "X", AvgRating: 5},
		{MovieID: 2, Title: "Y", AvgRating: 5},
		{MovieID: 3, Title: "Z", AvgRating: 5},
	}
	svc := newTestService(movies, ratings, nil, nil)

	items, err := svc.ByPredictedRatings(context.Background(), 1, false)
	if err != nil {
		t.Fatalf("ByPredictedRatings: %v", err)
	}

	if len(items) != 1 || items[0].MovieID != 3 {
		t.Fatalf("solo m3 estaba sin calificar, got %v", items)
	}
	if math.Abs(items[0].Score-4.0) > 1e-9 {
		t.Errorf("predicción de m3 = %v, want 4 (el vecino sin rating diluye)", items[0].Score)
	}
}

func TestFindSimilarUsers(t *testing.T) {
	ratings := []models.UserRatings{
		{UserID: 1, Ratings: models.RatingVector{5, 5, 0}},
		{UserID: 2, Ratings: models.RatingVector{5, 5, 1}},
		{UserID: 3, Ratings: models.RatingVector{0, 0, 9}},
		{UserID: 4, Ratings: models.RatingVector{5, 5, 0}},
	}
	svc := newTestService(popularityCatalog(), ratings, nil, nil)

	got, err := svc.FindSimilarUsers(1, 2)
	if err != nil {
		t.Fatalf("FindSimilarUsers: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d vecinos, want 2", len(got))
	}
	for _, id := range got {
		if id == 1 {
			t.Fatalf("el objetivo apareció entre sus vecinos")
		}
	}
	// 2 y 4 empatan en sim 1: id ascendente
	if got[0] != 2 || got[1] != 4 {
		t.Errorf("vecinos = %v, want [2 4]", got)
	}
}

func TestBySimilarMovies(t *testing.T) {
	matrix, err := similarity.NewMatrix(
		[]int{1, 2, 3, 4},
		[][]float64{
			{1.0, 0.8, 0.4, 0.1},
			{0.8, 1.0, 0.5, 0.2},
			{0.4, 0.5, 1.0, 0.9},
			{0.1, 0.2, 0.9, 1.0},
		},
	)
	if err != nil {
		t.Fatalf("NewMatrix: %v", err)
	}

	movies := []models.Movie{
		{MovieID: 1, Title: "M1", AvgRating: 5},
		{MovieID: 2, Title: "M2", AvgRating: 5},
		{MovieID: 3, Title: "M3", AvgRating: 5},
		{MovieID: 4, Title: "M4", AvgRating: 5},
	}
	// calificó m1=10 y m3=5; los aportes se suman por película candidata:
	//   m2: 0.8*10 + 0.5*5 = 10.5
	//   m3: 0.4*10         =  4.0 (también recibe aporte aunque esté calificada)
	//   m4: 0.1*10 + 0.9*5 =  5.5
	//   m1: 0.4*5          =  2.0
	ratings := []models.UserRatings{
		{UserID: 1, Ratings: models.RatingVector{10, 0, 5, 0}},
	}
	svc := newTestService(movies, ratings, nil, matrix)

	items, err := svc.BySimilarMovies(context.Background(), 1, false)
	if err != nil {
		t.Fatalf("BySimilarMovies: %v", err)
	}

	want := []int{2, 4, 3, 1}
	if got := itemIDs(items); !equalIDs(got, want) {
		t.Errorf("BySimilarMovies = %v, want %v", got, want)
	}
	if math.Abs(items[0].Score-10.5) > 1e-9 {
		t.Errorf("score de m2 = %v, want 10.5", items[0].Score)
	}
}

func TestBySimilarMoviesNoRatings(t *testing.T) {
	matrix, _ := similarity.NewMatrix([]int{1}, [][]float64{{1}})
	ratings := []models.UserRatings{
		{UserID: 1, Ratings: models.RatingVector{0}},
	}
	svc := newTestService(popularityCatalog(), ratings, nil, matrix)

	// señal explícita, no lista vacía
	if _, err := svc.BySimilarMovies(context.Background(), 1, false); !errors.Is(err, apperr.ErrNoRecommendations) {
		t.Errorf("sin ratings en rango: got %v, want ErrNoRecommendations", err)
	}
}

func TestBySimilarMoviesWithoutMatrix(t *testing.T) {
	ratings := []models.UserRatings{
		{UserID: 1, Ratings: models.RatingVector{5}},
	}
	svc := newTestService(popularityCatalog(), ratings, nil, nil)

	_, err := svc.BySimilarMovies(context.Background(), 1, false)
	if err == nil || errors.Is(err, apperr.ErrNoRecommendations) {
		t.Errorf("sin matriz cargada debía fallar con error propio, got %v", err)
	}
}

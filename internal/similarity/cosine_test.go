package similarity

import (
	"math"
	"testing"

	"github.com/chang085/Recommendation-system/internal/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b models.RatingVector
		want float64
	}{
		{
			name: "vectores idénticos dan 1",
			a:    models.RatingVector{5, 3, 0, 8},
			b:    models.RatingVector{5, 3, 0, 8},
			want: 1,
		},
		{
			name: "sin posiciones en común da 0",
			a:    models.RatingVector{5, 0, 3, 0},
			b:    models.RatingVector{0, 7, 0, 2},
			want: 0,
		},
		{
			name: "ambos vacíos da 0",
			a:    models.RatingVector{0, 0, 0},
			b:    models.RatingVector{0, 0, 0},
			want: 0,
		},
		{
			name: "solo cuentan las posiciones calificadas por ambos",
			// en común solo el slot 0: coseno de escalares iguales = 1
			a:    models.RatingVector{4, 9, 0},
			b:    models.RatingVector{8, 0, 5},
			want: 1,
		},
		{
			name: "valor conocido sobre dos posiciones",
			// a=[3,4], b=[4,3] => (12+12)/(5*5) = 0.96
			a:    models.RatingVector{3, 4},
			b:    models.RatingVector{4, 3},
			want: 0.96,
		},
		{
			name: "tolera vector corto ignorando la cola",
			a:    models.RatingVector{6, 2},
			b:    models.RatingVector{6, 2, 9, 9, 9},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cosine(tt.a, tt.b)
			if !almostEqual(got, tt.want) {
				t.Errorf("Cosine() = %v, want %v", got, tt.want)
			}

			// simetría, para todo par
			if rev := Cosine(tt.b, tt.a); !almostEqual(got, rev) {
				t.Errorf("Cosine no es simétrica: %v vs %v", got, rev)
			}
		})
	}
}

func TestTopSimilarUsers(t *testing.T) {
	target := models.RatingVector{8, 6, 0, 0}
	all := []models.UserRatings{
		{UserID: 1, Ratings: target},
		{UserID: 2, Ratings: models.RatingVector{8, 6, 2, 0}}, // idéntico en común: sim 1
		{UserID: 3, Ratings: models.RatingVector{0, 0, 5, 5}}, // sin común: sim 0
		{UserID: 4, Ratings: models.RatingVector{8, 6, 0, 1}}, // también sim 1, empata con 2
		{UserID: 5, Ratings: models.RatingVector{6, 8, 0, 0}}, // sim < 1
	}

	got := TopSimilarUsers(target, all, 1, 3)

	if len(got) > 3 {
		t.Fatalf("se pidieron 3 vecinos, llegaron %d", len(got))
	}
	for _, r := range got {
		if r.UserID == 1 {
			t.Fatalf("el objetivo no puede ser su propio vecino")
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i].Sim > got[i-1].Sim {
			t.Fatalf("similitudes fuera de orden: %v", got)
		}
	}

	// empate en sim=1 entre 2 y 4: gana el id menor
	wantOrder := []int{2, 4, 5}
	for i, want := range wantOrder {
		if got[i].UserID != want {
			t.Errorf("posición %d: got usuario %d, want %d (orden completo %v)", i, got[i].UserID, want, got)
		}
	}
}

func TestTopSimilarUsersFewerThanK(t *testing.T) {
	target := models.RatingVector{5}
	all := []models.UserRatings{
		{UserID: 1, Ratings: target},
		{UserID: 2, Ratings: models.RatingVector{5}},
	}

	got := TopSimilarUsers(target, all, 1, 5)
	if len(got) != 1 {
		t.Fatalf("got %d vecinos, want 1", len(got))
	}
	if got[0].UserID != 2 {
		t.Errorf("got usuario %d, want 2", got[0].UserID)
	}
}

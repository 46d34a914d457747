// Package similarity implementa el motor de similitud: coseno usuario-usuario
// sobre posiciones calificadas en común, y la matriz ítem-ítem precalculada.
package similarity

import (
	"math"
	"sort"

	"github.com/chang085/Recommendation-system/internal/models"
)

// Cosine es la similitud coseno entre dos vectores de ratings restringida a
// las posiciones donde ambos tienen un valor distinto de 0. Si no comparten
// ninguna posición calificada devuelve 0 (el coseno no está definido ahí).
// Es simétrica: Cosine(a,b) == Cosine(b,a). Tolera vectores de distinto
// largo ignorando la cola del más largo.
func Cosine(a, b models.RatingVector) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		if a[i] == 0 || b[i] == 0 {
			continue
		}
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		// sin ratings en común
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// RankedUser es un usuario con su similitud al objetivo.
type RankedUser struct {
	UserID int
	Sim    float64
}

// TopSimilarUsers devuelve los k usuarios más parecidos al objetivo, orden
// descendente por similitud. El objetivo nunca se incluye. Los empates se
// resuelven por el orden de `all` (orden de inserción de los stores, id
// ascendente) gracias al sort estable.
func TopSimilarUsers(target models.RatingVector, all []models.UserRatings, userID, k int) []RankedUser {
	ranked := make([]RankedUser, 0, len(all))
	for _, ur := range all {
		if ur.UserID == userID {
			continue
		}
		ranked = append(ranked, RankedUser{
			UserID: ur.UserID,
			Sim:    Cosine(target, ur.Ratings),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Sim > ranked[j].Sim })

	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}

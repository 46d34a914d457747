// simgen genera offline la matriz de similitud ítem-ítem que el API carga
// al arrancar: one-hot del género, escalado min-max de release_year y
// rating, y coseno par a par sobre los vectores de features.
package main

import (
	"encoding/csv"
	"flag"
	"log"
	"math"
	"os"
	"sort"
	"strconv"

	"github.com/chang085/Recommendation-system/internal/dataset"
	"github.com/chang085/Recommendation-system/internal/models"
)

func main() {
	dataPath := flag.String("data", "data.csv", "CSV del catálogo de películas")
	outPath := flag.String("out", "movie_similarity_matrix.csv", "CSV de salida con la matriz")
	flag.Parse()

	movies, err := dataset.ReadMoviesFile(*dataPath)
	if err != nil {
		log.Fatalf("[simgen] no se pudo leer %s: %v", *dataPath, err)
	}
	if len(movies) == 0 {
		log.Fatalf("[simgen] catálogo vacío en %s", *dataPath)
	}

	// el header y el desempate del API asumen ids ascendentes
	sort.Slice(movies, func(i, j int) bool { return movies[i].MovieID < movies[j].MovieID })

	features := buildFeatures(movies)

	matrix := make([][]float64, len(movies))
	for i := range movies {
		matrix[i] = make([]float64, len(movies))
		for j := range movies {
			matrix[i][j] = cosine(features[i], features[j])
		}
	}

	if err := writeMatrix(*outPath, movies, matrix); err != nil {
		log.Fatalf("[simgen] no se pudo escribir %s: %v", *outPath, err)
	}
	log.Printf("[simgen] matriz %dx%d escrita en %s", len(movies), len(movies), *outPath)
}

// buildFeatures arma el vector de features de cada película: one-hot del
// string de género completo (un "Action|Crime" es una categoría propia,
// no se separa por "|") + año y rating escalados a [0,1].
func buildFeatures(movies []models.Movie) [][]float64 {
	genres := make(map[string]int)
	for _, m := range movies {
		if _, ok := genres[m.Genre]; !ok {
			genres[m.Genre] = len(genres)
		}
	}

	minYear, maxYear := math.Inf(1), math.Inf(-1)
	minRating, maxRating := math.Inf(1), math.Inf(-1)
	for _, m := range movies {
		minYear = math.Min(minYear, float64(m.Year))
		maxYear = math.Max(maxYear, float64(m.Year))
		minRating = math.Min(minRating, m.AvgRating)
		maxRating = math.Max(maxRating, m.AvgRating)
	}

	features := make([][]float64, len(movies))
	for i, m := range movies {
		vec := make([]float64, len(genres)+2)
		vec[genres[m.Genre]] = 1
		vec[len(genres)] = minMax(float64(m.Year), minYear, maxYear)
		vec[len(genres)+1] = minMax(m.AvgRating, minRating, maxRating)
		features[i] = vec
	}
	return features
}

func minMax(v, lo, hi float64) float64 {
	if hi == lo {
		return 0
	}
	return (v - lo) / (hi - lo)
}

func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func writeMatrix(path string, movies []models.Movie, matrix [][]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := make([]string, 0, len(movies)+1)
	header = append(header, "id")
	for _, m := range movies {
		header = append(header, strconv.Itoa(m.MovieID))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, m := range movies {
		row := make([]string, 0, len(movies)+1)
		row = append(row, strconv.Itoa(m.MovieID))
		for _, v := range matrix[i] {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

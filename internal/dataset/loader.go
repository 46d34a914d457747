// Package dataset lee y escribe los CSV del sistema: data.csv
// (películas), user.csv (perfiles), ratings.csv (vectores de ratings) y
// movie_similarity_matrix.csv. Las filas malas se saltan con log y la carga
// continúa; nunca se aborta el load completo por una fila.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/chang085/Recommendation-system/internal/models"
	"github.com/chang085/Recommendation-system/internal/similarity"
)

// ReadMovies parsea filas id,title,genre,release_year,view,rating.
// Se salta el header y cualquier fila con id vacío o campos no parseables.
func ReadMovies(r io.Reader) ([]models.Movie, error) {
	rows, err := readAll(r)
	if err != nil {
		return nil, err
	}

	var out []models.Movie
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) < 6 || row[0] == "" {
			log.Printf("[dataset] fila de película incompleta, se salta: %v", row)
			continue
		}
		id, err := strconv.Atoi(row[0])
		if err != nil {
			log.Printf("[dataset] id de película inválido %q, se salta: %v", row[0], err)
			continue
		}
		year, err := strconv.Atoi(row[3])
		if err != nil {
			log.Printf("[dataset] release_year inválido en película %d, se salta: %v", id, err)
			continue
		}
		views, err := strconv.Atoi(row[4])
		if err != nil {
			log.Printf("[dataset] view inválido en película %d, se salta: %v", id, err)
			continue
		}
		rating, err := strconv.ParseFloat(row[5], 64)
		if err != nil {
			log.Printf("[dataset] rating inválido en película %d, se salta: %v", id, err)
			continue
		}

		out = append(out, models.Movie{
			MovieID:   id,
			Title:     row[1],
			Genre:     row[2],
			Year:      year,
			ViewCount: views,
			AvgRating: rating,
		})
	}
	return out, nil
}

// ReadUsers parsea filas id,name,password,age,gender con la misma política
// de saltar filas malas.
func ReadUsers(r io.Reader) ([]models.User, error) {
	rows, err := readAll(r)
	if err != nil {
		return nil, err
	}

	var out []models.User
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) < 5 || row[0] == "" {
			log.Printf("[dataset] fila de usuario incompleta, se salta: %v", row)
			continue
		}
		id, err := strconv.Atoi(row[0])
		if err != nil {
			log.Printf("[dataset] id de usuario inválido %q, se salta: %v", row[0], err)
			continue
		}
		age, err := strconv.Atoi(row[3])
		if err != nil {
			log.Printf("[dataset] edad inválida en usuario %d, se salta: %v", id, err)
			continue
		}

		out = append(out, models.User{
			UserID:   id,
			Name:     row[1],
			Password: row[2],
			Age:      age,
			Gender:   row[4],
		})
	}
	return out, nil
}

// ReadRatings parsea filas user_id,r1,r2,...,rN. Filas con menos de 2
// campos o con celdas no enteras se saltan completas. Los vectores pueden
// quedar de largos distintos si el archivo viene irregular; los consumidores
// indexan defensivamente.
func ReadRatings(r io.Reader) ([]models.UserRatings, error) {
	rows, err := readAll(r)
	if err != nil {
		return nil, err
	}

	var out []models.UserRatings
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) < 2 {
			log.Printf("[dataset] fila de ratings incompleta, se salta: %v", row)
			continue
		}

		userID, err := strconv.Atoi(row[0])
		if err != nil {
			log.Printf("[dataset] user_id inválido %q, se salta: %v", row[0], err)
			continue
		}

		vec := make(models.RatingVector, 0, len(row)-1)
		ok := true
		for _, cell := range row[1:] {
			v, err := strconv.Atoi(cell)
			if err != nil {
				log.Printf("[dataset] rating inválido %q en usuario %d, se salta la fila: %v", cell, userID, err)
				ok = false
				break
			}
			vec = append(vec, v)
		}
		if !ok {
			continue
		}

		out = append(out, models.UserRatings{UserID: userID, Ratings: vec})
	}
	return out, nil
}

// ReadSimilarityMatrix parsea la tabla cuadrada: header con los movieIds,
// primera columna de cada fila también con el movieId. A diferencia de los
// otros loaders, acá una fila mala sí invalida la carga completa: la matriz
// es todo-o-nada.
func ReadSimilarityMatrix(r io.Reader) (*similarity.Matrix, error) {
	rows, err := readAll(r)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("matriz de similitud vacía")
	}

	header := rows[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("header de la matriz sin ids")
	}
	// la primera celda del header es el nombre del índice ("id"), se ignora
	ids := make([]int, 0, len(header)-1)
	for _, cell := range header[1:] {
		id, err := strconv.Atoi(cell)
		if err != nil {
			return nil, fmt.Errorf("id inválido %q en el header de la matriz: %w", cell, err)
		}
		ids = append(ids, id)
	}

	cells := make([][]float64, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != len(ids)+1 {
			return nil, fmt.Errorf("fila de la matriz con %d columnas, se esperaban %d", len(row), len(ids)+1)
		}
		vals := make([]float64, 0, len(ids))
		for _, cell := range row[1:] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("celda inválida %q en la matriz: %w", cell, err)
			}
			vals = append(vals, v)
		}
		cells = append(cells, vals)
	}

	return similarity.NewMatrix(ids, cells)
}

// ===== helpers de archivo =====

func ReadMoviesFile(path string) ([]models.Movie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadMovies(f)
}

func ReadUsersFile(path string) ([]models.User, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadUsers(f)
}

func ReadRatingsFile(path string) ([]models.UserRatings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadRatings(f)
}

func ReadSimilarityMatrixFile(path string) (*similarity.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadSimilarityMatrix(f)
}

func readAll(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // los archivos reales vienen irregulares
	return cr.ReadAll()
}

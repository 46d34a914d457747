package similarity

import (
	"fmt"
	"sort"
)

// Matrix es la matriz ítem-ítem precalculada, densa y de solo lectura.
// Se indexa con un mapeo movieId -> posición validado una sola vez en la
// carga.
type Matrix struct {
	ids   []int // movieIds del header, orden ascendente
	index map[int]int
	cells [][]float64
}

// Neighbor es una película vecina con su similitud a la consultada.
type Neighbor struct {
	MovieID int     `json:"movieId"`
	Sim     float64 `json:"sim"`
}

// NewMatrix valida que la tabla sea cuadrada y sin ids repetidos.
func NewMatrix(ids []int, cells [][]float64) (*Matrix, error) {
	if len(cells) != len(ids) {
		return nil, fmt.Errorf("matriz no cuadrada: %d ids, %d filas", len(ids), len(cells))
	}
	index := make(map[int]int, len(ids))
	for i, id := range ids {
		if _, dup := index[id]; dup {
			return nil, fmt.Errorf("movieId repetido en el header: %d", id)
		}
		index[id] = i
	}
	for i, row := range cells {
		if len(row) != len(ids) {
			return nil, fmt.Errorf("fila %d con %d columnas, se esperaban %d", i, len(row), len(ids))
		}
	}

	// el desempate de TopK depende de recorrer ids en orden ascendente
	if !sort.IntsAreSorted(ids) {
		return nil, fmt.Errorf("ids del header fuera de orden ascendente")
	}

	return &Matrix{ids: ids, index: index, cells: cells}, nil
}

// Has indica si la película está en la matriz.
func (m *Matrix) Has(movieID int) bool {
	_, ok := m.index[movieID]
	return ok
}

// Sim devuelve la similitud entre dos películas, o 0 si alguna no está.
func (m *Matrix) Sim(a, b int) float64 {
	i, ok := m.index[a]
	if !ok {
		return 0
	}
	j, ok := m.index[b]
	if !ok {
		return 0
	}
	return m.cells[i][j]
}

// TopK devuelve las k películas más similares a movieID, excluyéndola a
// ella misma, descendente por similitud. Empates: movieId ascendente
// (los vecinos se arman en orden de ids y el sort es estable).
func (m *Matrix) TopK(movieID, k int) []Neighbor {
	row, ok := m.index[movieID]
	if !ok {
		return nil
	}

	neighbors := make([]Neighbor, 0, len(m.ids)-1)
	for col, id := range m.ids {
		if id == movieID {
			continue
		}
		neighbors = append(neighbors, Neighbor{MovieID: id, Sim: m.cells[row][col]})
	}

	sort.SliceStable(neighbors, func(i, j int) bool { return neighbors[i].Sim > neighbors[j].Sim })

	if len(neighbors) > k {
		neighbors = neighbors[:k]
	}
	return neighbors
}

package models

// RatingVector es el vector denso de ratings de un usuario: un slot por
// película (slot i = movieId i+1), valores 0..10 donde 0 = sin calificar.
// Los vectores cargados de CSV pueden venir cortos si la fila estaba mala,
// por eso el acceso va siempre por At.
type RatingVector []int

// At devuelve el rating del slot i, o 0 si el vector viene corto.
func (v RatingVector) At(i int) int {
	if i < 0 || i >= len(v) {
		return 0
	}
	return v[i]
}

// UserRatings asocia un vector a su usuario; se conserva el orden de
// inserción (orden del archivo) para que los empates sean deterministas.
type UserRatings struct {
	UserID  int          `json:"userId"`
	Ratings RatingVector `json:"ratings"`
}

package dataset

import (
	"strings"
	"testing"
)

func TestReadMoviesSkipsBadRows(t *testing.T) {
	in := strings.NewReader(
		"id,title,genre,release_year,view,rating\n" +
			"1,Inception,Action,2010,500,8.8\n" +
			",SinID,Drama,2000,10,5.0\n" +
			"abc,IDMalo,Drama,2000,10,5.0\n" +
			"2,Titanic,Drama,1997,900,7.9\n" +
			"3,Corta,Drama\n" +
			"4,RatingMalo,Crime,1999,10,xx\n")

	movies, err := ReadMovies(in)
	if err != nil {
		t.Fatalf("ReadMovies: %v", err)
	}

	if len(movies) != 2 {
		t.Fatalf("got %d películas, want 2: %v", len(movies), movies)
	}
	if movies[0].MovieID != 1 || movies[0].Title != "Inception" || movies[0].ViewCount != 500 {
		t.Errorf("primera película mal parseada: %+v", movies[0])
	}
	if movies[1].MovieID != 2 || movies[1].AvgRating != 7.9 || movies[1].Year != 1997 {
		t.Errorf("segunda película mal parseada: %+v", movies[1])
	}
}

func TestReadUsersSkipsBadRows(t *testing.T) {
	in := strings.NewReader(
		"id,name,password,age,gender\n" +
			"1,ana,secreta,30,Female\n" +
			"2,beto,clave,treinta,Male\n" +
			"3,carla,pw,25,Female\n")

	users, err := ReadUsers(in)
	if err != nil {
		t.Fatalf("ReadUsers: %v", err)
	}

	if len(users) != 2 {
		t.Fatalf("got %d usuarios, want 2", len(users))
	}
	if users[0].Name != "ana" || users[0].Password != "secreta" || users[0].Gender != "Female" {
		t.Errorf("usuario mal parseado: %+v", users[0])
	}
	if users[1].UserID != 3 {
		t.Errorf("se esperaba que la fila con edad inválida se saltara, got %+v", users[1])
	}
}

func TestReadRatings(t *testing.T) {
	in := strings.NewReader(
		"user_id,1,2,3\n" +
			"1,5,0,8\n" +
			"2\n" + // menos de 2 campos
			"3,5,x,8\n" + // celda no entera
			"4,7,7\n") // vector corto, se acepta

	entries, err := ReadRatings(in)
	if err != nil {
		t.Fatalf("ReadRatings: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("got %d filas, want 2: %v", len(entries), entries)
	}
	if entries[0].UserID != 1 || len(entries[0].Ratings) != 3 || entries[0].Ratings[2] != 8 {
		t.Errorf("fila 1 mal parseada: %+v", entries[0])
	}
	if entries[1].UserID != 4 || len(entries[1].Ratings) != 2 {
		t.Errorf("la fila corta debía aceptarse tal cual: %+v", entries[1])
	}
}

func TestReadSimilarityMatrix(t *testing.T) {
	in := strings.NewReader(
		"id,1,2\n" +
			"1,1.0,0.5\n" +
			"2,0.5,1.0\n")

	m, err := ReadSimilarityMatrix(in)
	if err != nil {
		t.Fatalf("ReadSimilarityMatrix: %v", err)
	}
	if got := m.Sim(1, 2); got != 0.5 {
		t.Errorf("Sim(1,2) = %v, want 0.5", got)
	}
}

func TestReadSimilarityMatrixAllOrNothing(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"celda inválida", "id,1,2\n1,1.0,xx\n2,0.5,1.0\n"},
		{"fila incompleta", "id,1,2\n1,1.0\n2,0.5,1.0\n"},
		{"vacía", ""},
		{"id de header inválido", "id,1,b\n1,1.0,0.5\n2,0.5,1.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadSimilarityMatrix(strings.NewReader(tt.in)); err == nil {
				t.Errorf("una matriz inválida debe fallar la carga completa")
			}
		})
	}
}

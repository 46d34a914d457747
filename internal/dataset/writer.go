package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/chang085/Recommendation-system/internal/models"
)

// AppendUser agrega una línea al CSV de usuarios, mismo formato que el
// archivo de carga (id,name,password,age,gender).
func AppendUser(path string, u models.User) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "\n%d,%s,%s,%d,%s", u.UserID, u.Name, u.Password, u.Age, u.Gender)
	return err
}

// AppendRatings agrega la fila user_id,r1,...,rN al CSV de ratings.
func AppendRatings(path string, userID int, vec models.RatingVector) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	row := make([]string, 0, len(vec)+1)
	row = append(row, strconv.Itoa(userID))
	for _, v := range vec {
		row = append(row, strconv.Itoa(v))
	}

	w := csv.NewWriter(f)
	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

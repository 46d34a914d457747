package models

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

type User struct {
	UserID   int    `json:"userId"`
	Name     string `json:"name"`
	Password string `json:"-"` // comparación en texto plano, nunca sale por API
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
}

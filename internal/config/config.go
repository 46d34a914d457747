package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort  string
	JWTSecret string

	// archivos de datos (se cargan una sola vez al arrancar)
	MoviesCSV     string
	UsersCSV      string
	RatingsCSV    string
	SimilarityCSV string

	// Mongo (historial de recomendaciones) y Redis (cache) son opcionales:
	// con URI/Addr vacíos el servicio corre solo en memoria.
	MongoURI  string
	MongoDB   string
	RedisAddr string
	RedisPass string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		HTTPPort:  getEnv("HTTP_PORT", "8080"),
		JWTSecret: getEnv("JWT_SECRET", "super-secret"),

		MoviesCSV:     getEnv("MOVIES_CSV", "data.csv"),
		UsersCSV:      getEnv("USERS_CSV", "user.csv"),
		RatingsCSV:    getEnv("RATINGS_CSV", "ratings.csv"),
		SimilarityCSV: getEnv("SIMILARITY_CSV", "movie_similarity_matrix.csv"),

		MongoURI:  os.Getenv("MONGO_URI"),
		MongoDB:   getEnv("MONGO_DB", "movierec"),
		RedisAddr: os.Getenv("REDIS_ADDR"),
		RedisPass: os.Getenv("REDIS_PASSWORD"),
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Printf("[config] %s no está seteado, usando valor por defecto\n", key)
		return def
	}
	return v
}

package main

import (
	"log"
	"net/http"

	_ "github.com/chang085/Recommendation-system/docs" // swagger docs

	"github.com/chang085/Recommendation-system/internal/cache"
	"github.com/chang085/Recommendation-system/internal/config"
	"github.com/chang085/Recommendation-system/internal/dataset"
	"github.com/chang085/Recommendation-system/internal/db"
	"github.com/chang085/Recommendation-system/internal/handler"
	"github.com/chang085/Recommendation-system/internal/repository"
	"github.com/chang085/Recommendation-system/internal/service"
	"github.com/chang085/Recommendation-system/internal/similarity"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Movie Recommendation API
// @version 1.0
// @description Recomendador de películas (popularidad, vecinos por coseno, matriz ítem-ítem)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo (historial, opcional) y Redis (cache, opcional)
	mongoDB := db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// repos en memoria
	movieRepo := repository.NewMovieRepository()
	userRepo := repository.NewUserRepository()
	ratingRepo := repository.NewRatingRepository()
	recRepo := repository.NewRecommendationRepository(mongoDB)

	// ============================
	// Carga única de los datasets
	// ============================
	movies, err := dataset.ReadMoviesFile(cfg.MoviesCSV)
	if err != nil {
		log.Fatalf("[dataset] no se pudo leer %s: %v", cfg.MoviesCSV, err)
	}
	movieRepo.Load(movies)
	log.Printf("[dataset] %d películas cargadas", movieRepo.Count())

	users, err := dataset.ReadUsersFile(cfg.UsersCSV)
	if err != nil {
		log.Fatalf("[dataset] no se pudo leer %s: %v", cfg.UsersCSV, err)
	}
	userRepo.Load(users)
	log.Printf("[dataset] %d usuarios cargados", userRepo.Count())

	ratings, err := dataset.ReadRatingsFile(cfg.RatingsCSV)
	if err != nil {
		log.Fatalf("[dataset] no se pudo leer %s: %v", cfg.RatingsCSV, err)
	}
	ratingRepo.Load(ratings)

	// la matriz es opcional: sin ella la estrategia ítem-ítem responde error
	var matrix *similarity.Matrix
	if m, err := dataset.ReadSimilarityMatrixFile(cfg.SimilarityCSV); err != nil {
		log.Printf("[dataset] matriz de similitud no disponible (%v), estrategia ítem-ítem deshabilitada", err)
	} else {
		matrix = m
	}

	// services
	authSvc := service.NewAuthService(userRepo, ratingRepo, movieRepo, cfg.UsersCSV, cfg.RatingsCSV, cfg.JWTSecret)
	movieSvc := service.NewMovieService(movieRepo)
	ratingSvc := service.NewRatingService(ratingRepo, movieRepo)
	recSvc := service.NewRecommendService(movieRepo, userRepo, ratingRepo, recRepo, matrix)

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	movieH := handler.NewMovieHandler(movieSvc)
	ratingH := handler.NewRatingHandler(ratingSvc)
	recH := handler.NewRecommendHandler(recSvc, recRepo)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)

	r.Post("/auth/register", authH.Register)
	r.Post("/auth/login", authH.Login)

	r.Get("/movies", movieH.ListMovies)
	r.Get("/movies/top", movieH.Top)
	r.Get("/movies/{id}", movieH.GetMovie)

	// cold-start y demográfica no requieren sesión (la demográfica
	// anónima recibe el género explícito por query)
	r.Get("/recommendations/new", recH.NewUser)
	r.Get("/recommendations/genre", recH.ByGenderExplicit)

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	authMw := handler.JWTAuth(cfg.JWTSecret)

	r.Group(func(r chi.Router) {
		r.Use(authMw)

		r.Route("/me", func(r chi.Router) {
			r.Get("/", authH.Me)

			r.Get("/ratings", ratingH.GetMyRatings)
			r.Put("/ratings", ratingH.PutMyRating)

			r.Get("/recommendations/history", recH.ByHistory)
			r.Get("/recommendations/predicted", recH.Predicted)
			r.Get("/recommendations/genre", recH.ByProfileGender)
			r.Get("/recommendations/similar", recH.BySimilarMovies)
			r.Get("/recommendations/log", recH.Log)

			// WebSocket
			r.Get("/ws/recommendations", recH.PredictedWS)
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}

package db

import (
	"context"
	"log"
	"time"

	"github.com/chang085/Recommendation-system/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InitMongo conecta a Mongo para el historial de recomendaciones.
// Con MONGO_URI vacío el historial queda deshabilitado y devuelve nil.
// Si la URI está configurada pero la conexión falla, sí es fatal: una
// dependencia declarada que no responde es un error de despliegue.
func InitMongo(cfg *config.Config) *mongo.Database {
	if cfg.MongoURI == "" {
		log.Println("[mongo] MONGO_URI vacío, historial de recomendaciones deshabilitado")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("[mongo] error conectando: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("[mongo] ping falló: %v", err)
	}

	log.Printf("[mongo] conectado a %s / DB=%s\n", cfg.MongoURI, cfg.MongoDB)
	return client.Database(cfg.MongoDB)
}

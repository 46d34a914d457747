package repository

import (
	"context"
	"time"

	"github.com/chang085/Recommendation-system/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RecommendationRepository persiste el historial de recomendaciones en
// Mongo. Es opcional: con db == nil el constructor devuelve nil y los
// servicios lo tratan como "sin historial".
type RecommendationRepository struct {
	col *mongo.Collection
}

func NewRecommendationRepository(db *mongo.Database) *RecommendationRepository {
	if db == nil {
		return nil
	}
	return &RecommendationRepository{col: db.Collection("recommendations")}
}

func (r *RecommendationRepository) Insert(ctx context.Context, rec *models.Recommendation) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	if rec.ID == "" {
		// _id como hex string para poder decodificarlo de vuelta
		rec.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.col.InsertOne(ctx, rec)
	return err
}

// FindByUser lista el historial de un usuario, más reciente primero.
func (r *RecommendationRepository) FindByUser(ctx context.Context, userID int, limit int64) ([]models.Recommendation, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cur, err := r.col.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Recommendation
	for cur.Next(ctx) {
		var rec models.Recommendation
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, cur.Err()
}

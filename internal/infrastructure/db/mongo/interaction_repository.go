package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikelm2020/estatehub/internal/core/domain"
)

const collectionInteractions = "interactions"

type InteractionRepository struct {
	col *mongo.Collection
}

func NewInteractionRepository(db *mongo.Database) *InteractionRepository {
	return &InteractionRepository{col: db.Collection(collectionInteractions)}
}

func (r *InteractionRepository) Insert(ctx context.Context, e *domain.InteractionEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, e)
	return err
}

func (r *InteractionRepository) FindByProperty(ctx context.Context, propertyID string) ([]*domain.InteractionEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"property_id": propertyID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []*domain.InteractionEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// EnsureIndexes creates the index backing per-property queries.
func (r *InteractionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "property_id", Value: 1}, {Key: "timestamp", Value: -1}},
	})
	return err
}

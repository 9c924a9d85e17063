package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikelm2020/estatehub/internal/core/domain"
)

const collectionAgents = "agents"

// AgentRepository is the Mongo-backed credential store.
type AgentRepository struct {
	col *mongo.Collection
}

func NewAgentRepository(db *mongo.Database) *AgentRepository {
	return &AgentRepository{col: db.Collection(collectionAgents)}
}

type agentDoc struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	Username     string    `bson:"username"`
	PasswordHash string    `bson:"password_hash"`
	Phone        string    `bson:"phone"`
	Role         string    `bson:"role"`
	IsActive     bool      `bson:"is_active"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func toAgentDoc(a *domain.Agent) agentDoc {
	return agentDoc{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		Username:     a.Username,
		PasswordHash: a.PasswordHash,
		Phone:        a.Phone,
		Role:         string(a.Role),
		IsActive:     a.IsActive,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (d agentDoc) toDomain() *domain.Agent {
	return &domain.Agent{
		ID:           d.ID,
		Name:         d.Name,
		Email:        d.Email,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		Phone:        d.Phone,
		Role:         domain.Role(d.Role),
		IsActive:     d.IsActive,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (r *AgentRepository) Create(ctx context.Context, agent *domain.Agent) (*domain.Agent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, toAgentDoc(agent)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAgentExists
		}
		return nil, fmt.Errorf("insert agent: %w", err)
	}
	return agent, nil
}

func (r *AgentRepository) FindByUsername(ctx context.Context, username string) (*domain.Agent, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *AgentRepository) FindByID(ctx context.Context, id string) (*domain.Agent, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *AgentRepository) findOne(ctx context.Context, filter bson.M) (*domain.Agent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc agentDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAgentNotFound
		}
		return nil, fmt.Errorf("find agent: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AgentRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"password_hash": passwordHash,
		"updated_at":    time.Now().UTC(),
	}})
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAgentNotFound
	}
	return nil
}

// EnsureIndexes creates the unique indexes backing username and email
// uniqueness.
func (r *AgentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

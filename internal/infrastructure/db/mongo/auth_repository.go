package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ser-kenya/ser-api/internal/core/domain"
)

const (
	adminsCollection = "admins"
	usersCollection  = "users"
)

// MongoAuthRepository persists the two disjoint principal classes. Admins
// and users live in separate collections with independent id sequences;
// emails are stored lowercased and carry a unique index per collection.
type MongoAuthRepository struct {
	db     *mongo.Database
	admins *mongo.Collection
	users  *mongo.Collection
}

func NewAuthRepository(db *mongo.Database) *MongoAuthRepository {
	return &MongoAuthRepository{
		db:     db,
		admins: db.Collection(adminsCollection),
		users:  db.Collection(usersCollection),
	}
}

func (r *MongoAuthRepository) FindAdminByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var admin domain.Admin
	if err := r.admins.FindOne(ctx, bson.M{"email": email}).Decode(&admin); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPrincipalNotFound
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	return &admin, nil
}

func (r *MongoAuthRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var user domain.User
	if err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPrincipalNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (r *MongoAuthRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, usersCollection)
	if err != nil {
		return nil, err
	}

	created := *user
	created.ID = id
	if _, err := r.users.InsertOne(ctx, &created); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &created, nil
}

// EnsureIndexes creates the unique email indexes on both principal
// collections. The index, not application code, is what rejects a second
// registration with an already-used email.
func (r *MongoAuthRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	emailUnique := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	if _, err := r.admins.Indexes().CreateOne(ctx, emailUnique); err != nil {
		return fmt.Errorf("admins email index: %w", err)
	}
	if _, err := r.users.Indexes().CreateOne(ctx, emailUnique); err != nil {
		return fmt.Errorf("users email index: %w", err)
	}
	return nil
}

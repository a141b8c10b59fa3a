package mongo

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"systemfit/leveling-app/internal/domain"
	"systemfit/leveling-app/internal/repository"
)

const accountCollectionName = "accounts"

// mongoAccountStore implements repository.AccountStore using MongoDB.
type mongoAccountStore struct {
	collection *mongo.Collection
}

// NewMongoAccountStore creates a store backed by the accounts collection of
// the given database.
func NewMongoAccountStore(db *mongo.Database) repository.AccountStore {
	return &mongoAccountStore{
		collection: db.Collection(accountCollectionName),
	}
}

// Create inserts a new account. The unique username index turns concurrent
// registrations of the same name into ErrAlreadyExists.
func (r *mongoAccountStore) Create(ctx context.Context, account *domain.Account) error {
	if account.Username == "" || account.PasswordHash == "" {
		return errors.New("account username and password hash are required")
	}

	account.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, account)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByUsername retrieves an account and normalizes the embedded player so
// snapshots written by older versions stay loadable.
func (r *mongoAccountStore) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	var account domain.Account
	filter := bson.M{"username": username}

	err := r.collection.FindOne(ctx, filter).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	account.Player.Normalize()
	return &account, nil
}

// SavePlayer writes the whole player snapshot back. One writer per account
// is assumed; last write wins.
func (r *mongoAccountStore) SavePlayer(ctx context.Context, username string, player *domain.Player) error {
	filter := bson.M{"username": username}
	update := bson.M{
		"$set": bson.M{
			"player":    player,
			"updatedAt": time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureAccountIndexes creates the unique username index. Call once during
// application startup.
func EnsureAccountIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		// Not fatal, but duplicate-username safety is lost until it exists.
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}

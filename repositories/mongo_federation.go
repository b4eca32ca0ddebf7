package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Dosada05/chess-registry/models"
)

type mongoFederationRepository struct {
	coll *mongo.Collection
}

func NewMongoFederationRepository(db *mongo.Database) FederationRepository {
	return &mongoFederationRepository{coll: db.Collection(federationsCollection)}
}

func (r *mongoFederationRepository) Create(ctx context.Context, f *models.Federation) error {
	if _, err := r.coll.InsertOne(ctx, f); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrFederationCodeConflict
		}
		return err
	}
	return nil
}

func (r *mongoFederationRepository) GetByCode(ctx context.Context, code string) (*models.Federation, error) {
	var f models.Federation
	err := r.coll.FindOne(ctx, bson.M{"code": code}).Decode(&f)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrFederationNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *mongoFederationRepository) List(ctx context.Context, search string, limit int) ([]models.Federation, error) {
	cursor, err := r.coll.Find(ctx, containsFilter(search, "name", "code"), options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}

	federations := make([]models.Federation, 0)
	if err := cursor.All(ctx, &federations); err != nil {
		return nil, err
	}
	return federations, nil
}

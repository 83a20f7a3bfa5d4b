package lawyers

import (
	"context"

	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/contracts"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/models"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/constvars"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/exceptions"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type lawyerMongoRepository struct {
	Collection *mongo.Collection
}

func NewLawyerMongoRepository(db *mongo.Database) contracts.LawyerRepository {
	return &lawyerMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionLawyers),
	}
}

func (r *lawyerMongoRepository) FindByID(ctx context.Context, lawyerID string) (*models.Lawyer, error) {
	objectID, err := primitive.ObjectIDFromHex(lawyerID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var lawyer models.Lawyer
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&lawyer)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &lawyer, nil
}

func (r *lawyerMongoRepository) FindAll(ctx context.Context) ([]models.Lawyer, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	lawyers := make([]models.Lawyer, 0)
	if err := cursor.All(ctx, &lawyers); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return lawyers, nil
}

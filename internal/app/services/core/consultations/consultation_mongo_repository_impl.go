package consultations

import (
	"context"
	"time"

	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/contracts"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/models"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/constvars"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/exceptions"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type consultationMongoRepository struct {
	Collection *mongo.Collection
}

func NewConsultationMongoRepository(db *mongo.Database) contracts.ConsultationRepository {
	return &consultationMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionConsultations),
	}
}

// Stored statuses that count as accepted. Legacy documents keep the
// deprecated rescheduled value on disk, so filters guarding on accepted
// must match both.
var acceptedOnDisk = bson.A{models.ConsultationAccepted, models.ConsultationRescheduled}

func statusList(statuses []models.ConsultationStatus) bson.A {
	list := make(bson.A, 0, len(statuses))
	for _, status := range statuses {
		list = append(list, status)
	}
	return list
}

func (r *consultationMongoRepository) Create(ctx context.Context, consultation *models.Consultation) (string, error) {
	result, err := r.Collection.InsertOne(ctx, consultation)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", exceptions.ErrMongoDBInsertDocument(mongo.ErrNilDocument)
	}
	return insertedID.Hex(), nil
}

func (r *consultationMongoRepository) FindByID(ctx context.Context, consultationID string) (*models.Consultation, error) {
	objectID, err := primitive.ObjectIDFromHex(consultationID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var consultation models.Consultation
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&consultation)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &consultation, nil
}

func (r *consultationMongoRepository) FindByLawyerID(ctx context.Context, lawyerID string) ([]models.Consultation, error) {
	objectID, err := primitive.ObjectIDFromHex(lawyerID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	return r.findAll(ctx, bson.M{"lawyerId": objectID})
}

func (r *consultationMongoRepository) FindByClientID(ctx context.Context, clientID string) ([]models.Consultation, error) {
	objectID, err := primitive.ObjectIDFromHex(clientID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	return r.findAll(ctx, bson.M{"clientId": objectID})
}

func (r *consultationMongoRepository) findAll(ctx context.Context, filter bson.M) ([]models.Consultation, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "scheduledDateTime", Value: -1}})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	consultations := make([]models.Consultation, 0)
	if err := cursor.All(ctx, &consultations); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return consultations, nil
}

func (r *consultationMongoRepository) UpdateStatusIf(ctx context.Context, consultationID string, expected []models.ConsultationStatus, target models.ConsultationStatus, fields contracts.StatusUpdateFields) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(consultationID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{
		"_id":    objectID,
		"status": bson.M{"$in": statusList(expected)},
	}
	setFields := bson.M{
		"status":    target,
		"updatedAt": time.Now().UTC(),
	}
	if fields.UnreadByClient != nil {
		setFields["unreadByClient"] = *fields.UnreadByClient
	}
	if fields.Message != nil {
		setFields["message"] = *fields.Message
	}

	result, err := r.Collection.UpdateOne(ctx, filter, bson.M{"$set": setFields})
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount == 1, nil
}

func (r *consultationMongoRepository) AppendRescheduleIf(ctx context.Context, consultationID string, expected []models.ConsultationStatus, entry models.RescheduleRequest, newInstant time.Time, newStatus models.ConsultationStatus, message string, unreadByClient bool) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(consultationID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	// The single-reschedule cap is part of the filter so the limit check and
	// the append cannot be separated by a concurrent writer.
	filter := bson.M{
		"_id":                  objectID,
		"status":               bson.M{"$in": statusList(expected)},
		"paid":                 true,
		"rescheduleRequests.0": bson.M{"$exists": false},
	}
	update := bson.M{
		"$push": bson.M{"rescheduleRequests": entry},
		"$set": bson.M{
			"scheduledDateTime": newInstant,
			"date":              entry.Date,
			"time":              entry.Time,
			"status":            newStatus,
			"message":           message,
			"unreadByClient":    unreadByClient,
			"updatedAt":         time.Now().UTC(),
		},
	}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount == 1, nil
}

func (r *consultationMongoRepository) SetPaymentOrderIf(ctx context.Context, consultationID string, details *models.PaymentDetails) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(consultationID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{
		"_id":    objectID,
		"status": bson.M{"$in": acceptedOnDisk},
		"paid":   false,
	}
	update := bson.M{
		"$set": bson.M{
			"paymentDetails": details,
			"updatedAt":      time.Now().UTC(),
		},
	}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount == 1, nil
}

func (r *consultationMongoRepository) MarkPaymentSucceededIf(ctx context.Context, consultationID string, details *models.PaymentDetails) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(consultationID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	// Status rides in the filter so a cancel or reject landing after the
	// usecase's read cannot be marked paid.
	filter := bson.M{
		"_id":    objectID,
		"status": bson.M{"$in": acceptedOnDisk},
		"paid":   false,
	}
	update := bson.M{
		"$set": bson.M{
			"paid":           true,
			"paymentDetails": details,
			"updatedAt":      time.Now().UTC(),
		},
	}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount == 1, nil
}

func (r *consultationMongoRepository) MarkPaymentFailed(ctx context.Context, consultationID, orderID, paymentID string) error {
	objectID, err := primitive.ObjectIDFromHex(consultationID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{
		"$set": bson.M{
			"paymentDetails.status":    models.PaymentFailed,
			"paymentDetails.orderId":   orderID,
			"paymentDetails.paymentId": paymentID,
			"updatedAt":                time.Now().UTC(),
		},
	}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *consultationMongoRepository) Delete(ctx context.Context, consultationID string) error {
	objectID, err := primitive.ObjectIDFromHex(consultationID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *consultationMongoRepository) CompleteDue(ctx context.Context, now time.Time) (int64, error) {
	filter := bson.M{
		"status":            bson.M{"$in": acceptedOnDisk},
		"scheduledDateTime": bson.M{"$lte": now},
	}
	update := bson.M{
		"$set": bson.M{
			"status":    models.ConsultationCompleted,
			"updatedAt": now,
		},
	}

	result, err := r.Collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount, nil
}

func (r *consultationMongoRepository) CountUnreadByClient(ctx context.Context, clientID string) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(clientID)
	if err != nil {
		return 0, exceptions.ErrMongoDBNotObjectID(err)
	}

	count, err := r.Collection.CountDocuments(ctx, bson.M{
		"clientId":       objectID,
		"unreadByClient": true,
	})
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return count, nil
}

func (r *consultationMongoRepository) MarkAllReadForClient(ctx context.Context, clientID string) error {
	objectID, err := primitive.ObjectIDFromHex(clientID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = r.Collection.UpdateMany(ctx,
		bson.M{"clientId": objectID, "unreadByClient": true},
		bson.M{"$set": bson.M{"unreadByClient": false}},
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

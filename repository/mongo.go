package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"MediSlot/constants"
	"MediSlot/models"

	db "github.com/KanapuramVaishnavi/Core/config/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func scopeFilter(f Filter) bson.M {
	filter := bson.M{}
	if f.TenantId != "" {
		filter["tenantId"] = f.TenantId
	}
	if f.HospitalId != "" {
		filter["hospitalId"] = f.HospitalId
	}
	return filter
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) ([]T, error) {
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	out := []T{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, notFound string) (*T, error) {
	var doc T
	err := coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: %s", constants.ErrNotFound, notFound)
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// idFilter accepts both ObjectID hex ids and plain string ids.
func idFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": oid}
	}
	return bson.M{"_id": id}
}

type MongoAvailabilityRepository struct{}

func NewMongoAvailabilityRepository() *MongoAvailabilityRepository {
	return &MongoAvailabilityRepository{}
}

func (r *MongoAvailabilityRepository) collection() *mongo.Collection {
	return db.OpenCollections(constants.AvailabilityCollection)
}

func (r *MongoAvailabilityRepository) FindAll(ctx context.Context, f Filter) ([]models.Availability, error) {
	filter := scopeFilter(f)
	if f.DoctorId != "" {
		filter["doctorId"] = f.DoctorId
	}
	return findAll[models.Availability](ctx, r.collection(), filter)
}

func (r *MongoAvailabilityRepository) FindDay(ctx context.Context, doctorId string, dayOfWeek int) (*models.Availability, error) {
	filter := bson.M{"doctorId": doctorId, "dayOfWeek": dayOfWeek}
	return findOne[models.Availability](ctx, r.collection(), filter, constants.AVAILABILITY_NOT_FOUND)
}

/*
* Upsert on doctorId + dayOfWeek
* The whole slot list is overwritten, nothing is merged
* createdAt is only written on insert
* Read back the stored record
 */
func (r *MongoAvailabilityRepository) ReplaceDay(ctx context.Context, record models.Availability) (*models.Availability, error) {
	coll := r.collection()
	filter := bson.M{"doctorId": record.DoctorId, "dayOfWeek": record.DayOfWeek}
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"hospitalId":  record.HospitalId,
			"tenantId":    record.TenantId,
			"isAvailable": record.IsAvailable,
			"isActive":    record.IsActive,
			"slots":       record.Slots,
			"addedBy":     record.AddedBy,
			"updatedAt":   now,
		},
		"$setOnInsert": bson.M{
			"createdAt": now,
		},
	}
	res, err := coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		log.Println("Error from updateOne(upsert availability): ", err)
		return nil, err
	}
	log.Println("matched: ", res.MatchedCount, " upserted: ", res.UpsertedID)
	return findOne[models.Availability](ctx, coll, filter, constants.AVAILABILITY_NOT_FOUND)
}

func (r *MongoAvailabilityRepository) DeleteDay(ctx context.Context, doctorId string, dayOfWeek int) error {
	filter := bson.M{"doctorId": doctorId, "dayOfWeek": dayOfWeek}
	deleted, err := db.DeleteOne(ctx, r.collection(), filter)
	if err != nil {
		log.Println("Error from deleteOne: ", err)
		return err
	}
	if deleted.DeletedCount == 0 {
		return fmt.Errorf("%w: %s", constants.ErrNotFound, constants.AVAILABILITY_NOT_FOUND)
	}
	return nil
}

type MongoDoctorRepository struct{}

func NewMongoDoctorRepository() *MongoDoctorRepository {
	return &MongoDoctorRepository{}
}

func (r *MongoDoctorRepository) collection() *mongo.Collection {
	return db.OpenCollections(constants.DoctorCollection)
}

// FindAll matches the branch whether the doctor stores it as an id or as
// a populated branch document.
func (r *MongoDoctorRepository) FindAll(ctx context.Context, f Filter) ([]models.Doctor, error) {
	filter := scopeFilter(f)
	if f.BranchId != "" {
		ids := bson.A{f.BranchId}
		if oid, err := primitive.ObjectIDFromHex(f.BranchId); err == nil {
			ids = append(ids, oid)
		}
		filter["$or"] = bson.A{
			bson.M{"branchId": bson.M{"$in": ids}},
			bson.M{"branchId._id": bson.M{"$in": ids}},
		}
	}
	return findAll[models.Doctor](ctx, r.collection(), filter)
}

func (r *MongoDoctorRepository) FindByID(ctx context.Context, id string) (*models.Doctor, error) {
	return findOne[models.Doctor](ctx, r.collection(), idFilter(id), constants.DOCTOR_NOT_FOUND)
}

type MongoBranchRepository struct{}

func NewMongoBranchRepository() *MongoBranchRepository {
	return &MongoBranchRepository{}
}

func (r *MongoBranchRepository) collection() *mongo.Collection {
	return db.OpenCollections(constants.BranchCollection)
}

func (r *MongoBranchRepository) FindAll(ctx context.Context, f Filter) ([]models.Branch, error) {
	return findAll[models.Branch](ctx, r.collection(), scopeFilter(f))
}

func (r *MongoBranchRepository) FindByID(ctx context.Context, id string) (*models.Branch, error) {
	return findOne[models.Branch](ctx, r.collection(), idFilter(id), constants.BRANCH_NOT_FOUND)
}

func (r *MongoBranchRepository) Delete(ctx context.Context, id string) error {
	deleted, err := db.DeleteOne(ctx, r.collection(), idFilter(id))
	if err != nil {
		log.Println("Error from deleteOne: ", err)
		return err
	}
	if deleted.DeletedCount == 0 {
		return fmt.Errorf("%w: %s", constants.ErrNotFound, constants.BRANCH_NOT_FOUND)
	}
	return nil
}

// MongoStaffRepository reads from whichever collection the token names,
// doctors, nurses, receptionists and the admin collections alike.
type MongoStaffRepository struct{}

func NewMongoStaffRepository() *MongoStaffRepository {
	return &MongoStaffRepository{}
}

func (r *MongoStaffRepository) FindByCode(ctx context.Context, collection, code string) (*models.Staff, error) {
	coll := db.OpenCollections(collection)
	return findOne[models.Staff](ctx, coll, bson.M{"code": code}, constants.STAFF_NOT_FOUND)
}

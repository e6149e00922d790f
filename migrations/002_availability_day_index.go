package migrations

import (
	"context"
	"log"

	"MediSlot/constants"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// One record per doctor and day, so replacing a day is a single upsert.
func CreateAvailabilityDayIndex(ctx context.Context) error {
	coll := db.DB.Collection(constants.AvailabilityCollection)
	name, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "doctorId", Value: 1}, {Key: "dayOfWeek", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("doctor_day_unique"),
	})
	if err != nil {
		log.Println("Migration failed for doctor_day_unique: ", err)
		return err
	}
	log.Println("Index ready: ", name)

	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "hospitalId", Value: 1}},
		Options: options.Index().SetName("hospital"),
	})
	if err != nil {
		log.Println("Migration failed for hospital index: ", err)
		return err
	}
	return nil
}

// Run applies every migration in order and stops at the first failure.
func Run(ctx context.Context) error {
	steps := []func(context.Context) error{
		BackfillAvailabilityFlags,
		CreateAvailabilityDayIndex,
	}
	for _, step := range steps {
		if err := step(ctx); err != nil {
			return err
		}
	}
	log.Println("Migrations applied")
	return nil
}

package migrations

import (
	"context"
	"log"

	"MediSlot/constants"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	"go.mongodb.org/mongo-driver/bson"
)

/*
* Records written before the flags existed count as active and available
* Missing bookedTokens become an empty list
 */
func BackfillAvailabilityFlags(ctx context.Context) error {
	coll := db.DB.Collection(constants.AvailabilityCollection)
	for _, field := range []string{"isActive", "isAvailable"} {
		result, err := coll.UpdateMany(ctx,
			bson.M{field: bson.M{"$exists": false}},
			bson.M{"$set": bson.M{field: true}},
		)
		if err != nil {
			log.Println("Migration failed for ", field, ": ", err)
			return err
		}
		log.Printf("Migration applied: %s set on %d documents\n", field, result.ModifiedCount)
	}
	return backfillBookedTokens(ctx)
}

func backfillBookedTokens(ctx context.Context) error {
	coll := db.DB.Collection(constants.AvailabilityCollection)
	filter := bson.M{"slots": bson.M{"$elemMatch": bson.M{"bookedTokens": bson.M{"$exists": false}}}}
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		log.Println("Error from Find: ", err)
		return err
	}
	defer cursor.Close(ctx)
	count := 0
	for cursor.Next(ctx) {
		var record struct {
			ID    interface{} `bson:"_id"`
			Slots []bson.M    `bson:"slots"`
		}
		if err := cursor.Decode(&record); err != nil {
			log.Println("Error decoding availability: ", err)
			continue
		}
		for _, slot := range record.Slots {
			if _, ok := slot["bookedTokens"]; !ok {
				slot["bookedTokens"] = bson.A{}
			}
		}
		_, err := coll.UpdateOne(ctx, bson.M{"_id": record.ID}, bson.M{"$set": bson.M{"slots": record.Slots}})
		if err != nil {
			log.Println("Error updating availability: ", err)
			return err
		}
		count++
	}
	log.Printf("Migration applied: bookedTokens set on %d documents\n", count)
	return cursor.Err()
}

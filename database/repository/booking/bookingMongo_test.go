package bookingRepo

import (
	"context"
	"testing"

	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func candidate() *models.Booking {
	return &models.Booking{
		Treatment:    "Cavity Protection",
		Date:         "May 17, 2022",
		Slot:         "10:00 AM",
		PatientName:  "Jane Doe",
		PatientEmail: "jane@example.com",
	}
}

func bookingDoc(id primitive.ObjectID, slot string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "treatment", Value: "Cavity Protection"},
		{Key: "date", Value: "May 17, 2022"},
		{Key: "slot", Value: slot},
		{Key: "patientName", Value: "Jane Doe"},
		{Key: "patient", Value: "jane@example.com"},
	}
}

func TestInsertUnique(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("inserts when key is free", func(mt *mtest.T) {
		repo := &MongoBookingRepo{coll: mt.Coll, uniqueKey: true}
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "value", Value: nil},
			bson.E{Key: "lastErrorObject", Value: bson.D{{Key: "n", Value: 1}, {Key: "updatedExisting", Value: false}}},
		))

		b := candidate()
		conflict, err := repo.InsertUnique(context.Background(), b)

		require.NoError(t, err)
		assert.Nil(t, conflict)
		assert.False(t, b.ID.IsZero())
	})

	mt.Run("returns existing booking on key match", func(mt *mtest.T) {
		repo := &MongoBookingRepo{coll: mt.Coll, uniqueKey: true}
		existingID := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "value", Value: bookingDoc(existingID, "9:00 AM")},
			bson.E{Key: "lastErrorObject", Value: bson.D{{Key: "n", Value: 1}, {Key: "updatedExisting", Value: true}}},
		))

		b := candidate()
		conflict, err := repo.InsertUnique(context.Background(), b)

		require.NoError(t, err)
		require.NotNil(t, conflict)
		assert.Equal(t, existingID, conflict.ID)
		assert.Equal(t, "9:00 AM", conflict.Slot)
		assert.True(t, b.ID.IsZero())
	})

	mt.Run("race loser reads back the winner", func(mt *mtest.T) {
		repo := &MongoBookingRepo{coll: mt.Coll, uniqueKey: true}
		winnerID := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCommandErrorResponse(mtest.CommandError{
				Code:    11000,
				Name:    "DuplicateKey",
				Message: "E11000 duplicate key error collection: bookings index: booking_key_unique",
			}),
			mtest.CreateCursorResponse(0, "portal.bookings", mtest.FirstBatch, bookingDoc(winnerID, "8:00 AM")),
		)

		conflict, err := repo.InsertUnique(context.Background(), candidate())

		require.NoError(t, err)
		require.NotNil(t, conflict)
		assert.Equal(t, winnerID, conflict.ID)
	})
}

func TestGetByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		repo := &MongoBookingRepo{coll: mt.Coll}
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "portal.bookings", mtest.FirstBatch, bookingDoc(id, "10:00 AM")))

		b, err := repo.GetByID(context.Background(), id)

		require.NoError(t, err)
		require.NotNil(t, b)
		assert.Equal(t, "jane@example.com", b.PatientEmail)
	})

	mt.Run("missing is nil", func(mt *mtest.T) {
		repo := &MongoBookingRepo{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "portal.bookings", mtest.FirstBatch))

		b, err := repo.GetByID(context.Background(), primitive.NewObjectID())

		require.NoError(t, err)
		assert.Nil(t, b)
	})
}

func TestMarkPaid_Missing(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("no booking", func(mt *mtest.T) {
		repo := &MongoBookingRepo{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		b, err := repo.MarkPaid(context.Background(), primitive.NewObjectID(), "txn_1")

		require.NoError(t, err)
		assert.Nil(t, b)
	})
}

func TestFindByDate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes batch", func(mt *mtest.T) {
		repo := &MongoBookingRepo{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "portal.bookings", mtest.FirstBatch,
			bookingDoc(primitive.NewObjectID(), "8:00 AM"),
			bookingDoc(primitive.NewObjectID(), "9:00 AM"),
		))

		got, err := repo.FindByDate(context.Background(), "May 17, 2022")

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})
}

func TestEnsureIndexes_DropsOtherModeKeyIndex(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("legacy drops unique index", func(mt *mtest.T) {
		repo := &MongoBookingRepo{coll: mt.Coll, uniqueKey: false}
		mt.AddMockResponses(mtest.CreateSuccessResponse(), mtest.CreateSuccessResponse())

		require.NoError(t, repo.ensureIndexes())

		drop := mt.GetStartedEvent()
		require.NotNil(t, drop)
		assert.Equal(t, "dropIndexes", drop.CommandName)
		assert.Equal(t, keyIndexUnique, drop.Command.Lookup("index").StringValue())
		create := mt.GetStartedEvent()
		require.NotNil(t, create)
		assert.Equal(t, "createIndexes", create.CommandName)
	})

	mt.Run("atomic drops plain index", func(mt *mtest.T) {
		repo := &MongoBookingRepo{coll: mt.Coll, uniqueKey: true}
		mt.AddMockResponses(mtest.CreateSuccessResponse(), mtest.CreateSuccessResponse())

		require.NoError(t, repo.ensureIndexes())

		drop := mt.GetStartedEvent()
		require.NotNil(t, drop)
		assert.Equal(t, keyIndexPlain, drop.Command.Lookup("index").StringValue())
	})

	mt.Run("missing stale index is ignored", func(mt *mtest.T) {
		repo := &MongoBookingRepo{coll: mt.Coll, uniqueKey: false}
		mt.AddMockResponses(
			mtest.CreateCommandErrorResponse(mtest.CommandError{Code: codeIndexNotFound, Name: "IndexNotFound", Message: "index not found with name [booking_key_unique]"}),
			mtest.CreateSuccessResponse(),
		)

		assert.NoError(t, repo.ensureIndexes())
	})
}

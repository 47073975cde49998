package booking

import (
	"testing"

	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAdmitBooking(t *testing.T) {
	stored := models.Booking{
		ID:          primitive.NewObjectID(),
		Treatment:   "Cleaning",
		Date:        "May 17, 2022",
		Slot:        "9:00 AM",
		PatientName: "Jane Doe",
	}

	tests := []struct {
		name      string
		candidate models.Booking
		existing  []models.Booking
		accepted  bool
	}{
		{
			name:      "identical key is rejected",
			candidate: models.Booking{Treatment: "Cleaning", Date: "May 17, 2022", PatientName: "Jane Doe", Slot: "9:00 AM"},
			existing:  []models.Booking{stored},
		},
		{
			name:      "identical key with another slot is rejected",
			candidate: models.Booking{Treatment: "Cleaning", Date: "May 17, 2022", PatientName: "Jane Doe", Slot: "10:00 AM"},
			existing:  []models.Booking{stored},
		},
		{
			name:      "other patient on a claimed slot is accepted",
			candidate: models.Booking{Treatment: "Cleaning", Date: "May 17, 2022", PatientName: "John Roe", Slot: "9:00 AM"},
			existing:  []models.Booking{stored},
			accepted:  true,
		},
		{
			name:      "other date is accepted",
			candidate: models.Booking{Treatment: "Cleaning", Date: "May 18, 2022", PatientName: "Jane Doe", Slot: "9:00 AM"},
			existing:  []models.Booking{stored},
			accepted:  true,
		},
		{
			name:      "no bookings",
			candidate: models.Booking{Treatment: "Cleaning", Date: "May 17, 2022", PatientName: "Jane Doe", Slot: "9:00 AM"},
			accepted:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdmitBooking(tt.candidate, tt.existing)
			assert.Equal(t, tt.accepted, got.Accepted)
			if tt.accepted {
				assert.Nil(t, got.Conflict)
				return
			}
			require.NotNil(t, got.Conflict)
			assert.Equal(t, stored, *got.Conflict)
		})
	}
}

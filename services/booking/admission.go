package booking

import "doctorsportal/models"

// Admission is the outcome of the duplicate-booking guard.
type Admission struct {
	Accepted bool
	// Conflict is the stored booking sharing the candidate's key when rejected.
	Conflict *models.Booking
}

// AdmitBooking rejects candidate when existing already holds a booking with the
// same (treatment, date, patientName) key. The slot is not checked: two
// patients can be admitted for the same slot.
func AdmitBooking(candidate models.Booking, existing []models.Booking) Admission {
	key := candidate.Key()
	for i := range existing {
		if existing[i].Key() == key {
			conflict := existing[i]
			return Admission{Accepted: false, Conflict: &conflict}
		}
	}
	return Admission{Accepted: true}
}

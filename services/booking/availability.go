package booking

import "doctorsportal/models"

// AvailableSlots returns, for every service in catalog order, a copy whose Slots
// holds only the labels not claimed by a booking of that treatment on date.
// Services with no free slots are kept. Bookings for other dates or for
// treatments missing from the catalog are ignored. Inputs are never modified.
func AvailableSlots(date string, services []models.Service, bookings []models.Booking) []models.Service {
	claimed := make(map[string]map[string]struct{})
	for _, b := range bookings {
		if b.Date != date {
			continue
		}
		slots, ok := claimed[b.Treatment]
		if !ok {
			slots = make(map[string]struct{})
			claimed[b.Treatment] = slots
		}
		slots[b.Slot] = struct{}{}
	}

	out := make([]models.Service, 0, len(services))
	for _, svc := range services {
		taken := claimed[svc.Name]
		free := make([]string, 0, len(svc.Slots))
		for _, slot := range svc.Slots {
			if _, ok := taken[slot]; ok {
				continue
			}
			free = append(free, slot)
		}
		svc.Slots = free
		out = append(out, svc)
	}
	return out
}

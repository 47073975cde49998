package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Service is a treatment offered by the clinic together with its bookable slot labels.
// Slots is always serialized, so a fully booked service reports "slots": [].
type Service struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Slots []string           `bson:"slots,omitempty" json:"slots"`
	Price float64            `bson:"price,omitempty" json:"price,omitempty"`
}

// ServiceName is the GET /services?fields=name view of a service.
type ServiceName struct {
	ID   primitive.ObjectID `json:"_id,omitempty"`
	Name string             `json:"name"`
}

// ServiceNames projects services to their names.
func ServiceNames(services []Service) []ServiceName {
	out := make([]ServiceName, 0, len(services))
	for _, s := range services {
		out = append(out, ServiceName{ID: s.ID, Name: s.Name})
	}
	return out
}

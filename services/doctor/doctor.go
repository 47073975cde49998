package doctor

import (
	"context"
	"errors"

	doctorRepo "doctorsportal/database/repository/doctor"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidDoctorID is returned for identifiers that are not ObjectID hex strings.
var ErrInvalidDoctorID = errors.New("invalid doctor id")

type DoctorService interface {
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	AddDoctor(ctx context.Context, d models.Doctor) (*models.Doctor, error)
	DeleteDoctor(ctx context.Context, id string) (int64, error)
}

type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}

func (s *DefaultDoctorService) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultDoctorService) AddDoctor(ctx context.Context, d models.Doctor) (*models.Doctor, error) {
	d.ID = primitive.NilObjectID
	if err := s.Repo.Create(ctx, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// DeleteDoctor removes the doctor and returns how many records were deleted.
func (s *DefaultDoctorService) DeleteDoctor(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidDoctorID
	}
	return s.Repo.Delete(ctx, oid)
}

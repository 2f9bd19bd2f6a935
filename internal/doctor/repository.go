package doctor

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DoctorRepository handles DB operations for doctor profiles.
type DoctorRepository struct {
	doctorsCollection *mongo.Collection
}

func NewDoctorRepository(db *mongo.Database) *DoctorRepository {
	return &DoctorRepository{doctorsCollection: db.Collection("doctors")}
}

func (r *DoctorRepository) CreateDoctor(ctx context.Context, doc *Doctor) error {
	_, err := r.doctorsCollection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrAlreadyApplied
		}
		return err
	}
	return nil
}

func (r *DoctorRepository) FindByEmail(ctx context.Context, email string) (*Doctor, error) {
	var doc Doctor
	err := r.doctorsCollection.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

func (r *DoctorRepository) FindByUserID(ctx context.Context, userID string) (*Doctor, error) {
	var doc Doctor
	err := r.doctorsCollection.FindOne(ctx, bson.M{"userId": userID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

func (r *DoctorRepository) FindAll(ctx context.Context) ([]*Doctor, error) {
	cursor, err := r.doctorsCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var doctors []*Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *DoctorRepository) FindByStatus(ctx context.Context, status Status) ([]*Doctor, error) {
	cursor, err := r.doctorsCollection.Find(ctx, bson.M{"status": status})
	if err != nil {
		return nil, err
	}
	var doctors []*Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

// UpdateByUserID applies the profile edits and returns the updated document.
// Only fields present in the payload are written; an omitted field never
// clobbers the stored value.
func (r *DoctorRepository) UpdateByUserID(ctx context.Context, userID string, req UpdateRequest) (*Doctor, error) {
	set := bson.M{"updatedAt": time.Now()}
	if req.Prefix != "" {
		set["prefix"] = req.Prefix
	}
	if req.FullName != "" {
		set["fullName"] = req.FullName
	}
	if req.PhoneNumber != "" {
		set["phoneNumber"] = req.PhoneNumber
	}
	if req.Website != "" {
		set["website"] = req.Website
	}
	if req.Address != "" {
		set["address"] = req.Address
	}
	if req.Specialization != "" {
		set["specialization"] = req.Specialization
	}
	if req.Experience != "" {
		set["experience"] = req.Experience
	}
	if req.FeePerConsultation != 0 {
		set["feePerConsultation"] = req.FeePerConsultation
	}
	if req.FromTime != "" {
		set["fromTime"] = req.FromTime
	}
	if req.ToTime != "" {
		set["toTime"] = req.ToTime
	}
	update := bson.M{"$set": set}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc Doctor
	err := r.doctorsCollection.FindOneAndUpdate(ctx, bson.M{"userId": userID}, update, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

// UpdateStatus sets the application status by doctor id.
func (r *DoctorRepository) UpdateStatus(ctx context.Context, id string, status Status) (*Doctor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc Doctor
	err = r.doctorsCollection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

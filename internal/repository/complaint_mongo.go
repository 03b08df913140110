package repository

import (
	"context"
	"errors"

	"github.com/umalmyha/crm/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const complaintsCollection = "complaints"

type mongoComplaintRepository struct {
	coll *mongo.Collection
}

// NewMongoComplaintRepository builds mongo ComplaintRepository
func NewMongoComplaintRepository(db *mongo.Database) ComplaintRepository {
	return &mongoComplaintRepository{coll: db.Collection(complaintsCollection)}
}

func (r *mongoComplaintRepository) FindByID(ctx context.Context, id string) (*model.Complaint, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoComplaintRepository) FindByReference(ctx context.Context, ref string) (*model.Complaint, error) {
	return r.findOne(ctx, bson.M{"reference": ref})
}

func (r *mongoComplaintRepository) Find(ctx context.Context, f *model.ComplaintFilter) ([]*model.Complaint, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if f != nil && f.Limit > 0 {
		opts.SetLimit(f.Limit)
	}

	if f != nil && f.Offset > 0 {
		opts.SetSkip(f.Offset)
	}

	cur, err := r.coll.Find(ctx, complaintBsonFilter(f), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	complaints := make([]*model.Complaint, 0)
	if err := cur.All(ctx, &complaints); err != nil {
		return nil, err
	}
	return complaints, nil
}

func (r *mongoComplaintRepository) Count(ctx context.Context, f *model.ComplaintFilter) (int64, error) {
	return r.coll.CountDocuments(ctx, complaintBsonFilter(f))
}

func (r *mongoComplaintRepository) Create(ctx context.Context, c *model.Complaint) error {
	if _, err := r.coll.InsertOne(ctx, withEmptyCollections(c)); err != nil {
		return duplicateOr(err)
	}
	return nil
}

func (r *mongoComplaintRepository) Update(ctx context.Context, c *model.Complaint) error {
	upd := *withEmptyCollections(c)
	upd.Version = c.Version + 1

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": c.ID, "version": c.Version}, &upd)
	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return concurrentComplaintModification(c.ID)
	}

	c.Version = upd.Version
	return nil
}

func (r *mongoComplaintRepository) findOne(ctx context.Context, filter bson.M) (*model.Complaint, error) {
	var c model.Complaint
	if err := r.coll.FindOne(ctx, filter).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// notes and emails are stored as arrays even if empty, so $push and array queries keep working
func withEmptyCollections(c *model.Complaint) *model.Complaint {
	cp := *c
	if cp.Notes == nil {
		cp.Notes = make([]model.Note, 0)
	}

	if cp.EmailsSent == nil {
		cp.EmailsSent = make([]model.EmailRecord, 0)
	}
	return &cp
}

func complaintBsonFilter(f *model.ComplaintFilter) bson.M {
	filter := bson.M{}
	if f == nil {
		return filter
	}

	if len(f.Statuses) > 0 {
		filter["status"] = bson.M{"$in": f.Statuses}
	}

	if len(f.Priorities) > 0 {
		filter["priority"] = bson.M{"$in": f.Priorities}
	}

	if f.AssignedTo != "" {
		filter["assignedTo"] = f.AssignedTo
	}

	if f.Category != "" {
		filter["category"] = f.Category
	}

	if f.Email != "" {
		filter["email"] = f.Email
	}

	if f.Reference != "" {
		filter["reference"] = f.Reference
	}

	if f.CreatedNotAfter != nil {
		filter["date"] = bson.M{"$lte": *f.CreatedNotAfter}
	}
	return filter
}

package mongo

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"liftboard/workout-planner/internal/domain"
	"liftboard/workout-planner/internal/repository"
)

const planCollectionName = "plans"

// planDoc is the stored form of a plan document. BSON maps need string
// keys, so day numbers are stringified on the way in and parsed on the way
// out; non-numeric keys in old documents are dropped.
type planDoc struct {
	UserID       string                              `bson:"_id"`
	TrainingDays int                                 `bson:"trainingDays"`
	WorkoutPlan  map[string][]domain.WorkoutExercise `bson:"workoutPlan"`
	Version      int                                 `bson:"version"`
	LastUpdated  time.Time                           `bson:"lastUpdated"`
}

// mongoPlanRepository implements repository.PlanRepository.
type mongoPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoPlanRepository creates a plan repository backed by MongoDB.
func NewMongoPlanRepository(db *mongo.Database) repository.PlanRepository {
	return &mongoPlanRepository{
		collection: db.Collection(planCollectionName),
	}
}

// Load fetches the plan document for a user.
func (r *mongoPlanRepository) Load(ctx context.Context, userID string) (*domain.PlanDocument, error) {
	var doc planDoc
	filter := bson.M{"_id": userID}

	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return docToDomain(&doc), nil
}

// Save upserts the plan document for a user.
func (r *mongoPlanRepository) Save(ctx context.Context, doc *domain.PlanDocument) error {
	if doc.UserID == "" {
		return repository.ErrSaveFailed
	}

	stored := domainToDoc(doc)
	filter := bson.M{"_id": doc.UserID}
	opts := options.Replace().SetUpsert(true)

	if _, err := r.collection.ReplaceOne(ctx, filter, stored, opts); err != nil {
		return err
	}
	return nil
}

func domainToDoc(doc *domain.PlanDocument) *planDoc {
	plan := make(map[string][]domain.WorkoutExercise, len(doc.WorkoutPlan))
	for day, entries := range doc.WorkoutPlan {
		plan[strconv.Itoa(day)] = entries
	}
	return &planDoc{
		UserID:       doc.UserID,
		TrainingDays: doc.TrainingDays,
		WorkoutPlan:  plan,
		Version:      doc.Version,
		LastUpdated:  doc.LastUpdated,
	}
}

func docToDomain(doc *planDoc) *domain.PlanDocument {
	plan := make(domain.WorkoutPlan, len(doc.WorkoutPlan))
	for key, entries := range doc.WorkoutPlan {
		day, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		plan[day] = entries
	}
	return &domain.PlanDocument{
		UserID:       doc.UserID,
		TrainingDays: doc.TrainingDays,
		WorkoutPlan:  plan,
		Version:      doc.Version,
		LastUpdated:  doc.LastUpdated,
	}
}

package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/loopservices/talent-platform/internal/core/domain"
)

const applicantsCollection = "applicant_profiles"

type MongoApplicantRepository struct {
	coll *mongo.Collection
}

func NewApplicantRepository(db *mongo.Database) *MongoApplicantRepository {
	return &MongoApplicantRepository{coll: db.Collection(applicantsCollection)}
}

// mongoApplicant mirrors domain.ApplicantProfile. The profile id is a uuid
// assigned by the service, so it is stored as _id directly.
type mongoApplicant struct {
	ID             string                   `bson:"_id"`
	UserID         string                   `bson:"user_id"`
	FirstName      string                   `bson:"first_name,omitempty"`
	LastName       string                   `bson:"last_name,omitempty"`
	Phone          string                   `bson:"phone,omitempty"`
	Location       string                   `bson:"location,omitempty"`
	Headline       string                   `bson:"headline,omitempty"`
	Summary        string                   `bson:"summary,omitempty"`
	ResumeURL      string                   `bson:"resume_url,omitempty"`
	VideoCvURL     string                   `bson:"video_cv_url,omitempty"`
	PortfolioURL   string                   `bson:"portfolio_url,omitempty"`
	LinkedinURL    string                   `bson:"linkedin_url,omitempty"`
	GithubURL      string                   `bson:"github_url,omitempty"`
	Skills         []string                 `bson:"skills"`
	Experience     []domain.ExperienceEntry `bson:"experience,omitempty"`
	Education      []domain.EducationEntry  `bson:"education,omitempty"`
	Certifications []domain.Certification   `bson:"certifications,omitempty"`
	ExpectedRate   float64                  `bson:"expected_rate,omitempty"`
	Availability   string                   `bson:"availability,omitempty"`
	Timezone       string                   `bson:"timezone,omitempty"`
	Languages      []string                 `bson:"languages"`
	Status         string                   `bson:"status"`
	AdminNotes     string                   `bson:"admin_notes,omitempty"`
	SubmittedAt    int64                    `bson:"submitted_at,omitempty"`
	CreatedAt      int64                    `bson:"created_at"`
	UpdatedAt      int64                    `bson:"updated_at"`
}

func (r *MongoApplicantRepository) Create(ctx context.Context, profile *domain.ApplicantProfile) (*domain.ApplicantProfile, error) {
	if _, err := r.coll.InsertOne(ctx, toMongoApplicant(profile)); err != nil {
		return nil, fmt.Errorf("insert applicant profile: %w", err)
	}
	created := *profile
	return &created, nil
}

func (r *MongoApplicantRepository) Update(ctx context.Context, profile *domain.ApplicantProfile) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": profile.ID}, toMongoApplicant(profile))
	if err != nil {
		return fmt.Errorf("update applicant profile: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *MongoApplicantRepository) FindByUserID(ctx context.Context, userID string) (*domain.ApplicantProfile, error) {
	return r.findOne(ctx, bson.M{"user_id": userID})
}

func (r *MongoApplicantRepository) FindByID(ctx context.Context, id string) (*domain.ApplicantProfile, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoApplicantRepository) FindAll(ctx context.Context) ([]*domain.ApplicantProfile, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list applicant profiles: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.ApplicantProfile
	for cursor.Next(ctx) {
		var ma mongoApplicant
		if err := cursor.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode applicant profile: %w", err)
		}
		out = append(out, ma.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate applicant profiles: %w", err)
	}
	return out, nil
}

// EnsureIndexes creates the unique user_id index, one dossier per account.
func (r *MongoApplicantRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("ensure applicant indexes: %w", err)
	}
	return nil
}

func (r *MongoApplicantRepository) findOne(ctx context.Context, filter bson.M) (*domain.ApplicantProfile, error) {
	var ma mongoApplicant
	if err := r.coll.FindOne(ctx, filter).Decode(&ma); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find applicant profile: %w", err)
	}
	return ma.toDomain(), nil
}

func toMongoApplicant(p *domain.ApplicantProfile) mongoApplicant {
	ma := mongoApplicant{
		ID:             p.ID,
		UserID:         p.UserID,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Phone:          p.Phone,
		Location:       p.Location,
		Headline:       p.Headline,
		Summary:        p.Summary,
		ResumeURL:      p.ResumeURL,
		VideoCvURL:     p.VideoCvURL,
		PortfolioURL:   p.PortfolioURL,
		LinkedinURL:    p.LinkedinURL,
		GithubURL:      p.GithubURL,
		Skills:         p.Skills,
		Experience:     p.Experience,
		Education:      p.Education,
		Certifications: p.Certifications,
		ExpectedRate:   p.ExpectedRate,
		Availability:   p.Availability,
		Timezone:       p.Timezone,
		Languages:      p.Languages,
		Status:         string(p.Status),
		AdminNotes:     p.AdminNotes,
		CreatedAt:      p.CreatedAt.Unix(),
		UpdatedAt:      p.UpdatedAt.Unix(),
	}
	if p.SubmittedAt != nil {
		ma.SubmittedAt = p.SubmittedAt.Unix()
	}
	return ma
}

func (ma *mongoApplicant) toDomain() *domain.ApplicantProfile {
	p := &domain.ApplicantProfile{
		ID:             ma.ID,
		UserID:         ma.UserID,
		FirstName:      ma.FirstName,
		LastName:       ma.LastName,
		Phone:          ma.Phone,
		Location:       ma.Location,
		Headline:       ma.Headline,
		Summary:        ma.Summary,
		ResumeURL:      ma.ResumeURL,
		VideoCvURL:     ma.VideoCvURL,
		PortfolioURL:   ma.PortfolioURL,
		LinkedinURL:    ma.LinkedinURL,
		GithubURL:      ma.GithubURL,
		Skills:         ma.Skills,
		Experience:     ma.Experience,
		Education:      ma.Education,
		Certifications: ma.Certifications,
		ExpectedRate:   ma.ExpectedRate,
		Availability:   ma.Availability,
		Timezone:       ma.Timezone,
		Languages:      ma.Languages,
		Status:         domain.ApplicationStatus(ma.Status),
		AdminNotes:     ma.AdminNotes,
		CreatedAt:      unixToTime(ma.CreatedAt),
		UpdatedAt:      unixToTime(ma.UpdatedAt),
	}
	if ma.SubmittedAt != 0 {
		t := time.Unix(ma.SubmittedAt, 0).UTC()
		p.SubmittedAt = &t
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Languages == nil {
		p.Languages = []string{}
	}
	return p
}

package category

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/blognest/core/internal/database"
	"github.com/blognest/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrCategoryExists   = errors.New("Category already exists")
	ErrCategoryNotFound = errors.New("Category not found")
	ErrTransferTarget   = errors.New("Transfer target category not found")
	ErrTransferToSelf   = errors.New("Cannot transfer blogs to the category being deleted")
)

// RequiresActionError gates a delete that would orphan blogs. The handler
// surfaces BlogCount so the client can ask the user what to do.
type RequiresActionError struct {
	BlogCount int64
}

func (e *RequiresActionError) Error() string {
	return fmt.Sprintf("Category has %d associated blogs", e.BlogCount)
}

type CreateCategoryDTO struct {
	Name string `json:"name" binding:"required"`
}

type UpdateCategoryDTO struct {
	Name     string `json:"name" binding:"required"`
	IsActive *bool  `json:"isActive"`
}

type Service struct {
	categories *mongo.Collection
	blogs      *mongo.Collection
}

func NewService(db *mongo.Database) *Service {
	return &Service{
		categories: db.Collection(database.Categories),
		blogs:      db.Collection(database.Blogs),
	}
}

// nameFilter matches a category name case-insensitively and exactly.
func nameFilter(name string) bson.M {
	return bson.M{"name": bson.M{
		"$regex":   "^" + regexp.QuoteMeta(name) + "$",
		"$options": "i",
	}}
}

func (s *Service) Create(ctx context.Context, dto *CreateCategoryDTO) (*models.Category, error) {
	count, err := s.categories.CountDocuments(ctx, nameFilter(dto.Name))
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCategoryExists
	}

	cat := models.Category{Name: dto.Name, IsActive: true}
	res, err := s.categories.InsertOne(ctx, cat)
	if err != nil {
		return nil, err
	}
	cat.ID = res.InsertedID.(primitive.ObjectID)
	return &cat, nil
}

// List returns active categories sorted by name.
func (s *Service) List(ctx context.Context) ([]models.Category, error) {
	cursor, err := s.categories.Find(ctx, bson.M{"isActive": true},
		options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	cats := []models.Category{}
	if err := cursor.All(ctx, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (s *Service) Update(ctx context.Context, idHex string, dto *UpdateCategoryDTO) (*models.Category, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, ErrCategoryNotFound
	}

	filter := nameFilter(dto.Name)
	filter["_id"] = bson.M{"$ne": id}
	count, err := s.categories.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCategoryExists
	}

	set := bson.M{"name": dto.Name}
	if dto.IsActive != nil {
		set["isActive"] = *dto.IsActive
	}
	res, err := s.categories.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrCategoryNotFound
	}

	var cat models.Category
	if err := s.categories.FindOne(ctx, bson.M{"_id": id}).Decode(&cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Delete removes a category with a plan-then-commit cascade over its blogs.
// The two steps are separate writes, not a transaction; a crash between them
// can leave blogs re-typed with the source category still present.
func (s *Service) Delete(ctx context.Context, idHex, action, transferTo string) error {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return ErrCategoryNotFound
	}
	var cat models.Category
	if err := s.categories.FindOne(ctx, bson.M{"_id": id}).Decode(&cat); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrCategoryNotFound
		}
		return err
	}

	blogCount, err := s.blogs.CountDocuments(ctx, bson.M{"blogType": cat.Name})
	if err != nil {
		return err
	}

	plan, err := resolveCascade(blogCount, action, transferTo)
	if err != nil {
		return err
	}

	switch plan {
	case planRequiresAction:
		return &RequiresActionError{BlogCount: blogCount}
	case planDeleteBlogs:
		if _, err := s.blogs.DeleteMany(ctx, bson.M{"blogType": cat.Name}); err != nil {
			return err
		}
	case planTransfer:
		target, err := s.transferTarget(ctx, cat.ID, transferTo)
		if err != nil {
			return err
		}
		if _, err := s.blogs.UpdateMany(ctx,
			bson.M{"blogType": cat.Name},
			bson.M{"$set": bson.M{"blogType": target.Name, "updatedAt": time.Now()}},
		); err != nil {
			return err
		}
	}

	_, err = s.categories.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// transferTarget resolves the destination category, rejecting the source
// itself and unknown ids.
func (s *Service) transferTarget(ctx context.Context, sourceID primitive.ObjectID, transferTo string) (*models.Category, error) {
	targetID, err := primitive.ObjectIDFromHex(transferTo)
	if err != nil {
		return nil, ErrTransferTarget
	}
	if targetID == sourceID {
		return nil, ErrTransferToSelf
	}
	var target models.Category
	if err := s.categories.FindOne(ctx, bson.M{"_id": targetID}).Decode(&target); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTransferTarget
		}
		return nil, err
	}
	return &target, nil
}

// Package catalog provides the product model, the listing query planner
// and the MongoDB-backed catalog store.
package catalog

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mcastellanos/storefront/internal/apperr"
)

var (
	ErrNotFound     = errors.New("product not found")
	ErrDuplicateSKU = errors.New("sku already exists")
)

type Store interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, q ListQuery) (*Page, error)
	Update(ctx context.Context, id string, upd Update) (*Product, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type MongoStore struct{ col *mongo.Collection }

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{col: db.Collection("products")}
}

// EnsureIndexes creates the unique sku index plus the listing indexes.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "sku", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
		{Keys: bson.D{{Key: "updatedAt", Value: -1}}},
	})
	return err
}

func (s *MongoStore) Create(ctx context.Context, p *Product) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	_, err := s.col.InsertOne(ctx, p)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateSKU
	}
	return err
}

func (s *MongoStore) GetByID(ctx context.Context, id string) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p Product
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// filterFor builds the conjunction of the search and category predicates.
// The search string is escaped so metacharacters match literally; the
// store still sees a case-insensitive substring match on name.
func filterFor(q ListQuery) bson.M {
	filter := bson.M{}
	if q.Search != "" {
		filter["name"] = bson.M{"$regex": regexp.QuoteMeta(q.Search), "$options": "i"}
	}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	return filter
}

func sortDoc(d SortDirective) bson.D {
	dir := 1
	if d.Desc {
		dir = -1
	}
	return bson.D{{Key: d.Field, Value: dir}}
}

func (s *MongoStore) List(ctx context.Context, q ListQuery) (*Page, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := filterFor(q)
	opts := options.Find().
		SetSort(sortDoc(q.Sort)).
		SetSkip(int64(q.Skip())).
		SetLimit(int64(q.Limit))

	cur, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperr.Wrap(apperr.StoreUnavailable, "cannot fetch products", err)
	}
	products := []Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, apperr.Wrap(apperr.StoreUnavailable, "cannot fetch products", err)
	}

	// Count runs against the same filter, unaffected by pagination.
	total, err := s.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, apperr.Wrap(apperr.StoreUnavailable, "cannot count products", err)
	}

	return &Page{
		Products: products,
		Total:    total,
		Page:     q.Page,
		Pages:    PageCount(total, q.Limit),
	}, nil
}

func (s *MongoStore) Update(ctx context.Context, id string, upd Update) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Price != nil {
		set["price"] = *upd.Price
	}
	if upd.Category != nil {
		set["category"] = *upd.Category
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Image != nil {
		set["image"] = *upd.Image
	}
	if upd.Stock != nil {
		set["stock"] = *upd.Stock
	}

	var p Product
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

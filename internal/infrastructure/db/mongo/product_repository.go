package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/storefront/admin-api/internal/core/domain"
)

const collectionProducts = "products"

type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(collectionProducts)}
}

type mongoProduct struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Image           string             `bson:"image"`
	Name            string             `bson:"name"`
	Category        string             `bson:"category"`
	Price           float64            `bson:"price"`
	Stock           int                `bson:"stock"`
	AvailableColors []string           `bson:"available_colors,omitempty"`
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoProduct
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	products := make([]domain.Product, len(docs))
	for i, d := range docs {
		products[i] = d.toDomain()
	}
	return products, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoProduct{
		Image:           p.Image,
		Name:            p.Name,
		Category:        p.Category,
		Price:           p.Price,
		Stock:           p.Stock,
		AvailableColors: p.AvailableColors,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	created := *p
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// UpdateByID applies a $set document built from the patch's present fields.
// Updating an id that does not exist is a no-op, not an error.
func (r *ProductRepository) UpdateByID(ctx context.Context, id string, patch domain.ProductPatch) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidProductID
	}
	if patch.IsEmpty() {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Stock != nil {
		set["stock"] = *patch.Stock
	}
	if patch.AvailableColors != nil {
		set["available_colors"] = *patch.AvailableColors
	}

	if _, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": set}); err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// DeleteByID removes a product document. Deleting an absent id is a no-op.
func (r *ProductRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidProductID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// EnsureIndexes creates secondary indexes on the products collection.
func (r *ProductRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "category", Value: 1}},
	})
	return err
}

func (d mongoProduct) toDomain() domain.Product {
	return domain.Product{
		ID:              d.ID.Hex(),
		Image:           d.Image,
		Name:            d.Name,
		Category:        d.Category,
		Price:           d.Price,
		Stock:           d.Stock,
		AvailableColors: d.AvailableColors,
	}
}

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

const collectionSalesReports = "sales_reports"

type SalesRepository struct {
	coll *mongo.Collection
}

func NewSalesRepository(db *mongo.Database) *SalesRepository {
	return &SalesRepository{coll: db.Collection(collectionSalesReports)}
}

type mongoSalesReport struct {
	ID           primitive.ObjectID      `bson:"_id,omitempty"`
	Month        string                  `bson:"month"`
	TotalUsers   int                     `bson:"total_users"`
	TotalSales   float64                 `bson:"total_sales"`
	TotalOrders  int                     `bson:"total_orders"`
	TotalPending int                     `bson:"total_pending"`
	Breakdown    []domain.BreakdownEntry `bson:"breakdown,omitempty"`
}

// FindByMonth returns reports for the given month in stored order.
// An empty month matches every report.
func (r *SalesRepository) FindByMonth(ctx context.Context, month string) ([]domain.SalesReport, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if month != "" {
		filter["month"] = month
	}

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find sales reports: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoSalesReport
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode sales reports: %w", err)
	}

	reports := make([]domain.SalesReport, len(docs))
	for i, d := range docs {
		reports[i] = domain.SalesReport{
			ID:           d.ID.Hex(),
			Month:        d.Month,
			TotalUsers:   d.TotalUsers,
			TotalSales:   d.TotalSales,
			TotalOrders:  d.TotalOrders,
			TotalPending: d.TotalPending,
			Breakdown:    d.Breakdown,
		}
	}
	return reports, nil
}

// EnsureIndexes creates the month index on the sales collection.
func (r *SalesRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "month", Value: 1}},
	})
	return err
}

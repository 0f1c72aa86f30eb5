package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/storefront/admin-api/internal/core/domain"
)

const seedPassword = "admin123"

const watchImage = "https://e7.pngegg.com/pngimages/486/490/png-clipart-apple-watch-series-3-smartwatch-apple-watch-accessory-apple-watch.png"

// SeedSampleData wipes the users, products, and sales_reports collections and
// inserts the demo dataset: an admin and a regular account (both with the
// demo password), nine catalog products, and one report per month.
func SeedSampleData(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	for _, name := range []string{collectionUsers, collectionProducts, collectionSalesReports} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			return fmt.Errorf("seed: clear %s: %w", name, err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), 10)
	if err != nil {
		return fmt.Errorf("seed: hash password: %w", err)
	}

	now := time.Now().UTC().Unix()
	users := []any{
		mongoUser{Username: "admin", PasswordHash: string(hash), Role: domain.RoleAdmin, CreatedAt: now},
		mongoUser{Username: "user", PasswordHash: string(hash), Role: domain.RoleUser, CreatedAt: now},
	}
	if _, err := db.Collection(collectionUsers).InsertMany(ctx, users); err != nil {
		return fmt.Errorf("seed: insert users: %w", err)
	}

	if _, err := db.Collection(collectionProducts).InsertMany(ctx, sampleProducts()); err != nil {
		return fmt.Errorf("seed: insert products: %w", err)
	}

	if _, err := db.Collection(collectionSalesReports).InsertMany(ctx, sampleReports()); err != nil {
		return fmt.Errorf("seed: insert sales reports: %w", err)
	}

	return nil
}

func sampleProducts() []any {
	return []any{
		mongoProduct{Image: watchImage, Name: "Samsung Watch", Category: "Electronics", Price: 100, Stock: 50, AvailableColors: []string{"Red", "Blue"}},
		mongoProduct{Image: watchImage, Name: "Apple Watch", Category: "Electronics", Price: 200, Stock: 30, AvailableColors: []string{"Black", "White"}},
		mongoProduct{Image: watchImage, Name: "Mi Watch", Category: "Electronics", Price: 150, Stock: 20, AvailableColors: []string{"Green", "Yellow"}},
		mongoProduct{Image: watchImage, Name: "Women's Dress", Category: "Fashion", Price: 100, Stock: 50, AvailableColors: []string{"Red", "Blue"}},
		mongoProduct{Image: watchImage, Name: "Men's Dress", Category: "Fashion", Price: 200, Stock: 30, AvailableColors: []string{"Black", "White"}},
		mongoProduct{Image: watchImage, Name: "Kid's Dress", Category: "Fashion", Price: 150, Stock: 20, AvailableColors: []string{"Green", "Yellow"}},
		mongoProduct{Image: watchImage, Name: "Camera", Category: "Home", Price: 100, Stock: 50, AvailableColors: []string{"Red", "Blue"}},
		mongoProduct{Image: watchImage, Name: "Camera", Category: "Home", Price: 200, Stock: 30, AvailableColors: []string{"Black", "White"}},
		mongoProduct{Image: watchImage, Name: "Camera", Category: "Home", Price: 150, Stock: 20, AvailableColors: []string{"Green", "Yellow"}},
	}
}

func sampleReports() []any {
	months := []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}

	// The demo dataset cycles through three profiles across the year.
	profiles := []mongoSalesReport{
		{TotalUsers: 10, TotalSales: 5000, TotalOrders: 50, TotalPending: 5},
		{TotalUsers: 15, TotalSales: 7000, TotalOrders: 65, TotalPending: 8},
		{TotalUsers: 20, TotalSales: 10000, TotalOrders: 80, TotalPending: 10},
	}

	reports := make([]any, 0, len(months))
	for i, month := range months {
		r := profiles[i%len(profiles)]
		r.Month = month
		r.Breakdown = []domain.BreakdownEntry{
			{Label: "Electronics", Value: r.TotalSales * 0.5},
			{Label: "Fashion", Value: r.TotalSales * 0.3},
			{Label: "Home", Value: r.TotalSales * 0.2},
		}
		reports = append(reports, r)
	}
	return reports
}

package main

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/carzone/spareparts-shop/shared/config"
	"github.com/carzone/spareparts-shop/shared/models"
)

// Development seeder: cleans the sparepart collection and loads a small
// sample catalog so the search endpoints have something to return.
func main() {
	cfg := config.Load()
	config.InitLogger(cfg.LogMode)
	defer func() { _ = zap.L().Sync() }()

	zap.S().Info("Starting database seeder...")

	client, err := config.ConnectMongoDB(cfg)
	if err != nil {
		zap.S().Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.DatabaseName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cleanSpareParts(ctx, db)
	seedSpareParts(ctx, db)

	zap.S().Info("Database seeding completed successfully!")
}

func cleanSpareParts(ctx context.Context, db *mongo.Database) {
	zap.S().Infof("Cleaning collection: %s", models.CollectionSparePart)
	if _, err := db.Collection(models.CollectionSparePart).DeleteMany(ctx, bson.M{}); err != nil {
		zap.S().Errorf("Failed to clean collection %s: %v", models.CollectionSparePart, err)
	}
}

func seedSpareParts(ctx context.Context, db *mongo.Database) {
	zap.S().Info("Seeding spare parts...")
	collection := db.Collection(models.CollectionSparePart)

	parts := []models.SparePart{
		{
			Name:          "Brake Pad Set",
			SKU:           "BP-100",
			Brand:         "Bosch",
			Category:      "Brakes",
			Price:         29.99,
			Stock:         40,
			Compatibility: []string{"Toyota Corolla", "Honda Civic"},
			Description:   "Ceramic front brake pads",
		},
		{
			Name:          "Oil Filter",
			SKU:           "OF-210",
			Brand:         "Mann",
			Category:      "Filters",
			Price:         8.50,
			Stock:         120,
			Compatibility: []string{"Volkswagen Golf", "Skoda Octavia"},
			Description:   "Spin-on engine oil filter",
		},
		{
			Name:          "Air Filter",
			SKU:           "AF-330",
			Brand:         "Bosch",
			Category:      "Filters",
			Price:         12.75,
			Stock:         85,
			Compatibility: []string{"Ford Focus"},
			Description:   "Panel engine air filter",
		},
		{
			Name:          "Spark Plug",
			SKU:           "SP-415",
			Brand:         "NGK",
			Category:      "Ignition",
			Price:         6.20,
			Stock:         300,
			Compatibility: []string{"Toyota Corolla", "Mazda 3", "Honda Civic"},
			Description:   "Iridium spark plug",
		},
		{
			Name:          "Shock Absorber",
			SKU:           "SA-520",
			Brand:         "Monroe",
			Category:      "Suspension",
			Price:         54.00,
			Stock:         25,
			Compatibility: []string{"Volkswagen Passat"},
			Description:   "Gas-charged rear shock absorber",
		},
	}

	for _, part := range parts {
		if _, err := collection.InsertOne(ctx, part); err != nil {
			zap.S().Errorf("Failed to insert part %s: %v", part.Name, err)
		}
	}

	zap.S().Infof("Inserted %d spare parts", len(parts))
}

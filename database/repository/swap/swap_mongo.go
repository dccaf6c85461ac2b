package swapRepo

import (
	"context"
	"fmt"
	"time"

	"slotswapper/config"
	"slotswapper/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoSwapRepo implements SwapRepository using MongoDB. It holds both the
// swapRequests and slots collections because propose/resolve must write
// them inside one transaction.
type MongoSwapRepo struct {
	requestColl *mongo.Collection
	slotColl    *mongo.Collection
}

// NewMongoSwapRepo constructs a new instance of MongoSwapRepo.
func NewMongoSwapRepo() SwapRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &MongoSwapRepo{
		requestColl: db.Collection("swapRequests"),
		slotColl:    db.Collection("slots"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create swap request indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

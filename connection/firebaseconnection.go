package connection

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/option"

	"planner/config"
	"planner/store"
)

// FBConnection opens a Firestore client from the service account file.
func FBConnection(ctx context.Context, serviceAccountKeyPath string) (*firestore.Client, error) {
	if serviceAccountKeyPath == "" {
		return nil, fmt.Errorf("environment variable GOOGLE_APPLICATION_CREDENTIALS_1 is not set")
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(serviceAccountKeyPath))
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting firestore client: %w", err)
	}

	log.Println("Firestore connection successful")
	return client, nil
}

// OpenStore connects the document store selected by cfg.StoreDriver.
func OpenStore(ctx context.Context, cfg config.Config) (store.DocumentStore, error) {
	switch cfg.StoreDriver {
	case config.DriverFirestore:
		client, err := FBConnection(ctx, cfg.FirebaseCredential)
		if err != nil {
			return nil, err
		}
		return store.NewFirestoreStore(client), nil
	case config.DriverMongo:
		if cfg.MongoURI == "" {
			return nil, fmt.Errorf("MONGODB_URI is required for the mongo store")
		}
		s, err := store.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		log.Printf("MongoDB connection successful (database %s)", cfg.MongoDatabase)
		return s, nil
	case config.DriverSQLite:
		s, err := store.NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Printf("SQLite store opened at %s", cfg.SQLitePath)
		return s, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

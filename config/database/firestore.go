package database

import (
	"context"
	"encoding/base64"
	"log"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/option"

	"github.com/malik-shaik/DevHub/config/environment"
)

// InitFirestore initializes the Firebase app and returns the Firestore client.
func InitFirestore(ctx context.Context, cfg *environment.Config) *firestore.Client {
	if cfg.FirebaseCredentialsBase64 == "" {
		log.Fatal("FIREBASE_CREDENTIALS_BASE64 environment variable is missing")
	}
	if cfg.FirebaseProjectID == "" {
		log.Fatal("FIREBASE_PROJECT_ID environment variable is missing")
	}

	credentials, err := base64.StdEncoding.DecodeString(cfg.FirebaseCredentialsBase64)
	if err != nil {
		log.Fatalf("Failed to decode Firebase credentials: %v", err)
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID}, option.WithCredentialsJSON(credentials))
	if err != nil {
		log.Fatalf("Failed to initialize Firebase app: %v", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	log.Println("Firestore initialized successfully")

	return client
}

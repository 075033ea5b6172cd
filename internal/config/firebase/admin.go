package firebase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

var (
	app        *firebase.App
	authClient *auth.Client
)

// InitializeFirebase initializes the Firebase Admin SDK
func InitializeFirebase() error {
	serviceAccountKeyPath := os.Getenv("FIREBASE_CREDENTIALS_FILE")
	if serviceAccountKeyPath == "" {
		serviceAccountKeyPath = filepath.Join("internal", "config", "firebase", "service-account.json")
	}

	opt := option.WithCredentialsFile(serviceAccountKeyPath)
	var err error
	app, err = firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		return fmt.Errorf("failed to initialize Firebase app: %v", err)
	}

	authClient, err = app.Auth(context.Background())
	if err != nil {
		return fmt.Errorf("failed to get Firebase Auth client: %v", err)
	}

	return nil
}

// GetAuthClient returns the Firebase Auth client
func GetAuthClient() *auth.Client {
	return authClient
}

// VerifyToken verifies a Firebase ID token and returns the user ID
func VerifyToken(ctx context.Context, idToken string) (string, error) {
	if authClient == nil {
		return "", fmt.Errorf("Firebase Auth client not initialized")
	}

	token, err := authClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", fmt.Errorf("failed to verify ID token: %v", err)
	}

	return token.UID, nil
}

// GetUserByUID retrieves a user by their Firebase UID
func GetUserByUID(ctx context.Context, uid string) (*auth.UserRecord, error) {
	if authClient == nil {
		return nil, fmt.Errorf("Firebase Auth client not initialized")
	}

	user, err := authClient.GetUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %v", err)
	}

	return user, nil
}

// Package auth initializes the Firebase Admin SDK used to verify admin ID
// tokens. Identity lives entirely in Firebase; this service stores no user
// records of its own.
package auth

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// NewVerifier builds the Auth client that admin middleware verifies tokens
// against. Callers running without Firebase (dev mode) skip this and pass a
// nil client to the middleware instead.
func NewVerifier(ctx context.Context, credentialsPath string) (*auth.Client, error) {
	if credentialsPath == "" {
		return nil, fmt.Errorf("credentials path is required")
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth client: %w", err)
	}

	return client, nil
}

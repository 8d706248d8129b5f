package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

// AuthClient wraps the Firebase Admin auth client with the operations the
// marketplace needs.
type AuthClient struct {
	client *auth.Client
}

func NewAuthClient(client *auth.Client) *AuthClient {
	return &AuthClient{
		client: client,
	}
}

func (f *AuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}

	return result.UID, nil
}

// GetUser returns the Firebase user record, used to mirror identity fields
// into the users collection on first sign-in.
func (f *AuthClient) GetUser(ctx context.Context, uid string) (*auth.UserRecord, error) {
	return f.client.GetUser(ctx, uid)
}

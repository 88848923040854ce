package client

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"
)

type AuthClient interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// disabledAuthClient stands in when no Firebase credentials are configured.
// Every federated login attempt is rejected.
type disabledAuthClient struct{}

func (disabledAuthClient) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	return nil, fmt.Errorf("federated login is not configured")
}

package client

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"github.com/sirupsen/logrus"
	"github.com/voteflow/backend/internal/dto"
	"google.golang.org/api/option"
)

type Clients interface {
	AuthClient() AuthClient
	Mailer() Mailer
}

type clients struct {
	authClient AuthClient
	mailer     Mailer
}

func (c clients) AuthClient() AuthClient {
	return c.authClient
}

func (c clients) Mailer() Mailer {
	return c.mailer
}

func NewClients(cfg dto.Config) Clients {
	return &clients{
		authClient: newAuthClient(cfg),
		mailer:     NewLogMailer(),
	}
}

func newAuthClient(cfg dto.Config) AuthClient {
	if cfg.FirebaseKeyBase64 == "" {
		logrus.Warn("No Firebase credentials configured, federated login disabled")
		return disabledAuthClient{}
	}

	decodedFirebaseKey, err := cfg.DecodeFirebaseKey()
	if err != nil {
		logrus.Panic(err)
	}
	app, err := firebase.NewApp(context.Background(), nil, option.WithCredentialsJSON(decodedFirebaseKey))
	if err != nil {
		logrus.Panic(err)
	}

	authClient, err := app.Auth(context.Background())
	if err != nil {
		logrus.Panic(err)
	}

	return authClient
}

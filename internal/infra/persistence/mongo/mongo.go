// Package mongo contains the concrete implementation of the persistence layer
// using the official MongoDB driver. One client is created at process start,
// shared by every repository, and disconnected on shutdown.
package mongo

import (
	"context"
	"log/slog"

	"bazar/config"
	"bazar/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

const (
	usersCollection    = "users"
	productsCollection = "products"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the shared MongoDB database handle with lifecycle management.
func New(params Params) (*mongo.Database, error) {
	if params.Config.Mongo == nil || params.Config.Mongo.URI == "" {
		return nil, errors.New("mongo uri must be provided")
	}

	// Connect is lazy in the v1 driver; the OnStart ping below performs the
	// actual reachability check inside the fx startup window.
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(params.Config.Mongo.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	connectTimeout := params.Config.Mongo.ConnectTimeout

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, connectTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			params.Logger.Info("Connected to MongoDB",
				slog.String("database", params.Config.Mongo.Database))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			params.Logger.Info("Disconnecting from MongoDB")

			return errors.WithStack(client.Disconnect(stopCtx))
		},
	})

	return client.Database(params.Config.Mongo.Database), nil
}

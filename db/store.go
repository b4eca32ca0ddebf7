package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/Dosada05/chess-registry/config"
	"github.com/Dosada05/chess-registry/repositories"
)

// Store bundles the repositories of one storage driver together with the
// process-wide connection they share.
type Store struct {
	Driver      string
	Federations repositories.FederationRepository
	Players     repositories.PlayerRepository
	Tournaments repositories.TournamentRepository
	Results     repositories.ResultRepository

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// Ping checks that the underlying connection is usable.
func (s *Store) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

// Close releases the underlying connection.
func (s *Store) Close(ctx context.Context) error {
	return s.close(ctx)
}

// Open connects the storage driver selected in cfg and prepares it for use:
// postgres gets its migrations, mongo gets its indexes.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Store, error) {
	switch cfg.StorageDriver {
	case config.DriverMongo:
		client, err := ConnectMongo(cfg.MongoURL, cfg.DBConnectTimeout)
		if err != nil {
			return nil, err
		}
		database := client.Database(cfg.DatabaseName)
		if err := repositories.EnsureMongoIndexes(ctx, database); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		return &Store{
			Driver:      config.DriverMongo,
			Federations: repositories.NewMongoFederationRepository(database),
			Players:     repositories.NewMongoPlayerRepository(database),
			Tournaments: repositories.NewMongoTournamentRepository(database),
			Results:     repositories.NewMongoResultRepository(database),
			ping: func(ctx context.Context) error {
				return client.Ping(ctx, readpref.Primary())
			},
			close: client.Disconnect,
		}, nil

	case config.DriverPostgres:
		conn, err := Connect(cfg.DatabaseURL, cfg.DBConnectTimeout)
		if err != nil {
			return nil, err
		}
		if err := Migrate(ctx, conn, logger); err != nil {
			_ = conn.Close()
			return nil, err
		}
		return &Store{
			Driver:      config.DriverPostgres,
			Federations: repositories.NewPostgresFederationRepository(conn),
			Players:     repositories.NewPostgresPlayerRepository(conn),
			Tournaments: repositories.NewPostgresTournamentRepository(conn),
			Results:     repositories.NewPostgresResultRepository(conn),
			ping:        conn.PingContext,
			close: func(context.Context) error {
				return conn.Close()
			},
		}, nil

	case config.DriverMemory:
		return NewMemoryStore(), nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}

// NewMemoryStore returns a Store backed by process memory.
func NewMemoryStore() *Store {
	mem := repositories.NewMemoryStore()
	return &Store{
		Driver:      config.DriverMemory,
		Federations: repositories.NewMemoryFederationRepository(mem),
		Players:     repositories.NewMemoryPlayerRepository(mem),
		Tournaments: repositories.NewMemoryTournamentRepository(mem),
		Results:     repositories.NewMemoryResultRepository(mem),
		ping:        mem.Ping,
		close:       func(context.Context) error { return nil },
	}
}

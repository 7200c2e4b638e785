package database

import (
	"context"
	"fmt"
	"time"

	"github.com/learnhub/course-enroll/config"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.uber.org/zap"
)

// MongoDB wraps a single pooled client for MongoDB Driver v2. The client is
// created once at startup and shared by every request; the driver's internal
// connection pool handles concurrency.
type MongoDB struct {
	config *config.MongoConfig
	client *mongo.Client
	db     *mongo.Database
	logger *zap.Logger
}

func NewMongoDB(config *config.MongoConfig) *MongoDB {
	if config.ConnectTimeout <= 0 {
		config.ConnectTimeout = 30
	}
	return &MongoDB{
		config: config,
		logger: zap.L(),
	}
}

func (m *MongoDB) Connect() error {
	m.logger.Info("Starting MongoDB connection",
		zap.String("database", m.config.Database),
		zap.Int("connect_timeout_seconds", m.config.ConnectTimeout))

	ctx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(m.config.ConnectTimeout)*time.Second,
	)
	defer cancel()

	clientOptions := options.Client().ApplyURI(m.config.URI)
	if m.config.MaxPoolSize > 0 {
		clientOptions.SetMaxPoolSize(m.config.MaxPoolSize)
	}
	if m.config.MinPoolSize > 0 {
		clientOptions.SetMinPoolSize(m.config.MinPoolSize)
	}
	clientOptions.SetRetryReads(true)
	clientOptions.SetRetryWrites(true)
	clientOptions.SetConnectTimeout(time.Duration(m.config.ConnectTimeout) * time.Second)
	clientOptions.SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(clientOptions)
	if err != nil {
		m.logger.Error("Failed to connect to MongoDB", zap.Error(err))
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		m.logger.Error("Failed to ping MongoDB", zap.Error(err))
		client.Disconnect(ctx)
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	m.client = client
	m.db = client.Database(m.config.Database)

	m.logger.Info("Successfully connected to MongoDB",
		zap.String("database", m.config.Database))
	return nil
}

// Collection returns a handle to the named collection in the configured database.
func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// EnsureIndexes creates the indexes the application relies on. Email uniqueness
// on users is enforced here rather than in application code.
func (m *MongoDB) EnsureIndexes(ctx context.Context) error {
	m.logger.Debug("Ensuring MongoDB indexes")

	_, err := m.db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		m.logger.Error("Failed to create unique email index", zap.Error(err))
		return fmt.Errorf("failed to create unique email index: %w", err)
	}

	m.logger.Info("MongoDB indexes ensured")
	return nil
}

func (m *MongoDB) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if m.client == nil {
		return fmt.Errorf("mongo client not initialized")
	}
	if err := m.client.Ping(ctx, readpref.Primary()); err != nil {
		m.logger.Error("MongoDB ping failed", zap.Error(err))
		return fmt.Errorf("mongo ping failed: %w", err)
	}
	return nil
}

func (m *MongoDB) IsConnected() bool {
	return m.client != nil
}

func (m *MongoDB) Close() error {
	m.logger.Info("Closing MongoDB connection")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if m.client == nil {
		return nil
	}
	if err := m.client.Disconnect(ctx); err != nil {
		m.logger.Error("MongoDB disconnect error", zap.Error(err))
		return fmt.Errorf("mongo disconnect error: %w", err)
	}

	m.logger.Info("MongoDB connection closed successfully")
	return nil
}

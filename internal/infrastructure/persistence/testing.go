//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Test constants
const (
	TestBitLength512  = 512
	TestBitLength1024 = 1024
)

// TestContext holds test database and repositories
type TestContext struct {
	DB          *gorm.DB
	KeyPairRepo keys.KeyPairRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  sqliteInMemoryDSN,
		}
		cleanupFunc = func() {}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	keyPairRepo, err := NewGormKeyPairRepository(db, testutil.SetupTestLogger(t))
	require.NoError(t, err, "Failed to create key pair repository")

	return &TestContext{
		DB:          db,
		KeyPairRepo: keyPairRepo,
	}
}

// CreateTestKeyPairMeta creates key pair metadata with default values
func CreateTestKeyPairMeta(t *testing.T, bitLength int) *keys.KeyPairMeta {
	t.Helper()

	id := uuid.NewString()
	return &keys.KeyPairMeta{
		ID:              id,
		BitLength:       bitLength,
		ModulusBits:     2 * bitLength,
		Modulus:         "3233",
		PublicExponent:  "17",
		PublicKeyPath:   id + "-public_key.txt",
		PrivateKeyPath:  id + "-private_key.txt",
		DateTimeCreated: time.Now(),
	}
}

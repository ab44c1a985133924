//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/stretchr/testify/mock"
)

// MockKeyPairRepository is a mock for keys.KeyPairRepository
type MockKeyPairRepository struct {
	mock.Mock
}

func (m *MockKeyPairRepository) Create(ctx context.Context, keyPair *keys.KeyPairMeta) error {
	args := m.Called(ctx, keyPair)
	return args.Error(0)
}

func (m *MockKeyPairRepository) List(ctx context.Context, query *keys.KeyPairQuery) ([]*keys.KeyPairMeta, error) {
	args := m.Called(ctx, query)
	if v := args.Get(0); v != nil {
		return v.([]*keys.KeyPairMeta), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockKeyPairRepository) GetByID(ctx context.Context, keyPairID string) (*keys.KeyPairMeta, error) {
	args := m.Called(ctx, keyPairID)
	if v := args.Get(0); v != nil {
		return v.(*keys.KeyPairMeta), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockKeyPairRepository) DeleteByID(ctx context.Context, keyPairID string) error {
	args := m.Called(ctx, keyPairID)
	return args.Error(0)
}

// blockingProcessor holds GenerateKeys until release is closed
type blockingProcessor struct {
	cryptoalg.TextbookRSAProcessor
	started chan struct{}
	release chan struct{}
}

func (p *blockingProcessor) GenerateKeys(bitLength int) (*cryptoalg.KeyPair, error) {
	close(p.started)
	<-p.release
	return p.TextbookRSAProcessor.GenerateKeys(bitLength)
}

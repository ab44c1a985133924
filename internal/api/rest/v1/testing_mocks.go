//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"

	"github.com/stretchr/testify/mock"
)

// MockKeyPairService is a mock implementation of KeyPairService
type MockKeyPairService struct {
	mock.Mock
}

func (m *MockKeyPairService) Generate(ctx context.Context, bitLength int) (*keys.KeyPairMeta, error) {
	args := m.Called(ctx, bitLength)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyPairMeta), args.Error(1)
}

func (m *MockKeyPairService) List(ctx context.Context, query *keys.KeyPairQuery) ([]*keys.KeyPairMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.KeyPairMeta), args.Error(1)
}

func (m *MockKeyPairService) GetByID(ctx context.Context, keyPairID string) (*keys.KeyPairMeta, error) {
	args := m.Called(ctx, keyPairID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyPairMeta), args.Error(1)
}

func (m *MockKeyPairService) DeleteByID(ctx context.Context, keyPairID string) error {
	args := m.Called(ctx, keyPairID)
	return args.Error(0)
}

// MockCipherService is a mock implementation of CipherService
type MockCipherService struct {
	mock.Mock
}

func (m *MockCipherService) Encrypt(ctx context.Context, keyPairID, message string, blockSize int) (string, error) {
	args := m.Called(ctx, keyPairID, message, blockSize)
	return args.String(0), args.Error(1)
}

func (m *MockCipherService) Decrypt(ctx context.Context, keyPairID, ciphertext string) (string, error) {
	args := m.Called(ctx, keyPairID, ciphertext)
	return args.String(0), args.Error(1)
}

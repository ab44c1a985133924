//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyPairPsqlRepository_CreateGetDelete(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	keyPair := CreateTestKeyPairMeta(t, TestBitLength1024)
	require.NoError(t, ctx.KeyPairRepo.Create(context.Background(), keyPair))

	fetched, err := ctx.KeyPairRepo.GetByID(context.Background(), keyPair.ID)
	require.NoError(t, err)
	assert.Equal(t, keyPair.Modulus, fetched.Modulus)

	listed, err := ctx.KeyPairRepo.List(context.Background(), keys.NewKeyPairQuery())
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	require.NoError(t, ctx.KeyPairRepo.DeleteByID(context.Background(), keyPair.ID))

	_, err = ctx.KeyPairRepo.GetByID(context.Background(), keyPair.ID)
	assert.ErrorIs(t, err, keys.ErrKeyPairNotFound)
}

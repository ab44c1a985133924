package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormKeyPairRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormKeyPairRepository creates a new GORM-based KeyPairRepository implementation
func NewGormKeyPairRepository(db *gorm.DB, logger logger.Logger) (keys.KeyPairRepository, error) {
	return &gormKeyPairRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormKeyPairRepository) Create(ctx context.Context, keyPair *keys.KeyPairMeta) error {
	if err := keyPair.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.KeyPairModel{}
	model.FromDomain(keyPair)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create key pair metadata: %w", err)
	}

	r.logger.Info("Created key pair metadata with id ", keyPair.ID)
	return nil
}

func (r *gormKeyPairRepository) List(ctx context.Context, query *keys.KeyPairQuery) ([]*keys.KeyPairMeta, error) {
	if query == nil {
		query = keys.NewKeyPairQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.KeyPairModel
	dbQuery := r.db.WithContext(ctx).Model(&models.KeyPairModel{})

	if query.BitLength > 0 {
		dbQuery = dbQuery.Where("bit_length = ?", query.BitLength)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch key pair metadata: %w", err)
	}

	domainList := make([]*keys.KeyPairMeta, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormKeyPairRepository) GetByID(ctx context.Context, keyPairID string) (*keys.KeyPairMeta, error) {
	var model models.KeyPairModel
	if err := r.db.WithContext(ctx).Where("id = ?", keyPairID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", keys.ErrKeyPairNotFound, keyPairID)
		}
		return nil, fmt.Errorf("failed to fetch key pair metadata: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormKeyPairRepository) DeleteByID(ctx context.Context, keyPairID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", keyPairID).Delete(&models.KeyPairModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete key pair metadata: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", keys.ErrKeyPairNotFound, keyPairID)
	}

	r.logger.Info("Deleted key pair metadata with id ", keyPairID)
	return nil
}

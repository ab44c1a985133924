package models

import (
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
)

// KeyPairModel is the GORM database model for key pair metadata (infrastructure concern)
type KeyPairModel struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)"`
	BitLength       int       `gorm:"not null;index"`
	ModulusBits     int       `gorm:"not null"`
	Modulus         string    `gorm:"type:text;not null"`
	PublicExponent  string    `gorm:"type:text;not null"`
	PublicKeyPath   string    `gorm:"type:varchar(1024);not null"`
	PrivateKeyPath  string    `gorm:"type:varchar(1024);not null"`
	DateTimeCreated time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (KeyPairModel) TableName() string {
	return "key_pairs"
}

// ToDomain converts GORM model to domain entity
func (m *KeyPairModel) ToDomain() *keys.KeyPairMeta {
	return &keys.KeyPairMeta{
		ID:              m.ID,
		BitLength:       m.BitLength,
		ModulusBits:     m.ModulusBits,
		Modulus:         m.Modulus,
		PublicExponent:  m.PublicExponent,
		PublicKeyPath:   m.PublicKeyPath,
		PrivateKeyPath:  m.PrivateKeyPath,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *KeyPairModel) FromDomain(k *keys.KeyPairMeta) {
	m.ID = k.ID
	m.BitLength = k.BitLength
	m.ModulusBits = k.ModulusBits
	m.Modulus = k.Modulus
	m.PublicExponent = k.PublicExponent
	m.PublicKeyPath = k.PublicKeyPath
	m.PrivateKeyPath = k.PrivateKeyPath
	m.DateTimeCreated = k.DateTimeCreated
}

// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer to store key pair metadata in SQLite or
// PostgreSQL. Key material itself never reaches the database.
package persistence

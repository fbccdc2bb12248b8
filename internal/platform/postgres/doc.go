// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package, plus the shared
// connection pool construction. It handles query execution, transaction
// scoping, and mapping between domain entities and database records.
package postgres

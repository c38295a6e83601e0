// Package postgres provides the PostgreSQL implementations of the data
// storage interfaces defined in the internal/store package. It handles
// query execution and data mapping between domain entities and database
// records; connection lifecycle is owned by the caller.
package postgres

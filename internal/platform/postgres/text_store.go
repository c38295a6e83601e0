package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/ktiva/ktiva-api/internal/domain"
	"github.com/ktiva/ktiva-api/internal/platform/logger"
	"github.com/ktiva/ktiva-api/internal/store"
)

// psql builds queries with PostgreSQL dollar placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var textColumns = []string{
	"id", "title", "content", "text_type", "style",
	"tags", "metadata", "created_at", "updated_at",
}

// PostgresTextStore implements the store.TextStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTextStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresTextStore creates a new PostgreSQL implementation of the
// TextStore interface. It accepts a database connection that should be
// initialized and managed by the caller. If log is nil, a default
// logger will be used.
func NewPostgresTextStore(db *sql.DB, log *slog.Logger) *PostgresTextStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresTextStore{
		db:     db,
		logger: log.With(slog.String("component", "text_store")),
	}
}

// Ensure PostgresTextStore implements store.TextStore interface
var _ store.TextStore = (*PostgresTextStore)(nil)

// CreateText implements store.TextStore.CreateText
// It saves a new text record to the database, handling domain validation.
func (s *PostgresTextStore) CreateText(ctx context.Context, record *domain.TextRecord) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := record.Validate(); err != nil {
		log.Warn("text validation failed during create",
			slog.String("error", err.Error()),
			slog.String("text_id", record.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	tagsJSON, metadataJSON, err := marshalTextFields(record)
	if err != nil {
		return store.NewStoreError("text", "create", "failed to encode fields", err)
	}

	query := `
		INSERT INTO texts (id, title, content, text_type, style, tags, metadata, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		record.ID,
		record.Title,
		record.Content,
		string(record.TextType),
		string(record.Style),
		tagsJSON,
		metadataJSON,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create text",
			slog.String("error", err.Error()),
			slog.String("text_id", record.ID.String()))
		return mapError(err)
	}

	log.Info("text created successfully",
		slog.String("text_id", record.ID.String()),
		slog.String("text_type", string(record.TextType)))
	return nil
}

// ListTexts implements store.TextStore.ListTexts
// It returns records ordered by creation time descending. The tag
// filter matches records containing any of the given tags.
func (s *PostgresTextStore) ListTexts(
	ctx context.Context,
	filter store.TextFilter,
) ([]*domain.TextRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	builder := psql.Select(textColumns...).
		From("texts").
		OrderBy("created_at DESC")

	if filter.TextType != "" {
		builder = builder.Where(sq.Eq{"text_type": string(filter.TextType)})
	}
	if len(filter.Tags) > 0 {
		// jsonb_exists_any is the function form of the ?| operator,
		// which cannot appear literally in a builder expression.
		builder = builder.Where(sq.Expr("jsonb_exists_any(tags, ?)", filter.Tags))
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, store.NewStoreError("text", "list", "failed to build query", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list texts", slog.String("error", err.Error()))
		return nil, mapError(err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	var records []*domain.TextRecord
	for rows.Next() {
		record, err := scanText(rows)
		if err != nil {
			return nil, store.NewStoreError("text", "list", "failed to scan row", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	log.Debug("texts listed", slog.Int("count", len(records)))
	return records, nil
}

// GetText implements store.TextStore.GetText
// Returns store.ErrTextNotFound if the record does not exist.
func (s *PostgresTextStore) GetText(ctx context.Context, id uuid.UUID) (*domain.TextRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	record, err := getTextBy(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("text not found", slog.String("text_id", id.String()))
			return nil, store.ErrTextNotFound
		}
		log.Error("failed to get text by ID",
			slog.String("error", err.Error()),
			slog.String("text_id", id.String()))
		return nil, mapError(err)
	}

	return record, nil
}

// UpdateText implements store.TextStore.UpdateText
// It merges the provided fields inside a transaction so the read and
// the write see the same row, refreshing updated_at.
// Returns store.ErrTextNotFound if the record does not exist.
func (s *PostgresTextStore) UpdateText(
	ctx context.Context,
	id uuid.UUID,
	update domain.TextUpdate,
) (*domain.TextRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, store.NewStoreError("text", "update", "failed to begin transaction", err)
	}
	defer func() {
		// Rollback is a no-op after a successful commit.
		if rerr := tx.Rollback(); rerr != nil && !errors.Is(rerr, sql.ErrTxDone) {
			log.Warn("failed to roll back transaction", slog.String("error", rerr.Error()))
		}
	}()

	record, err := getTextBy(ctx, tx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("text not found for update", slog.String("text_id", id.String()))
			return nil, store.ErrTextNotFound
		}
		return nil, mapError(err)
	}

	if err := record.ApplyUpdate(update); err != nil {
		log.Warn("text validation failed during update",
			slog.String("error", err.Error()),
			slog.String("text_id", id.String()))
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	tagsJSON, metadataJSON, err := marshalTextFields(record)
	if err != nil {
		return nil, store.NewStoreError("text", "update", "failed to encode fields", err)
	}

	query := `
		UPDATE texts
		SET title = $1, content = $2, text_type = $3, style = $4,
		    tags = $5, metadata = $6, updated_at = $7
		WHERE id = $8
	`
	_, err = tx.ExecContext(
		ctx,
		query,
		record.Title,
		record.Content,
		string(record.TextType),
		string(record.Style),
		tagsJSON,
		metadataJSON,
		record.UpdatedAt,
		record.ID,
	)
	if err != nil {
		log.Error("failed to update text",
			slog.String("error", err.Error()),
			slog.String("text_id", id.String()))
		return nil, mapError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, store.NewStoreError("text", "update", "failed to commit transaction", err)
	}

	log.Info("text updated successfully", slog.String("text_id", id.String()))
	return record, nil
}

// DeleteText implements store.TextStore.DeleteText
// Deleting an unknown id fails with store.ErrTextNotFound. Learning
// data referencing the text is untouched: the log is historical.
func (s *PostgresTextStore) DeleteText(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM texts WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete text",
			slog.String("error", err.Error()),
			slog.String("text_id", id.String()))
		return mapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return store.NewStoreError("text", "delete", "failed to read affected rows", err)
	}
	if affected == 0 {
		log.Debug("text not found for delete", slog.String("text_id", id.String()))
		return store.ErrTextNotFound
	}

	log.Info("text deleted successfully", slog.String("text_id", id.String()))
	return nil
}

// getTextBy fetches one text row through the given connection or
// transaction.
func getTextBy(ctx context.Context, db store.DBTX, id uuid.UUID) (*domain.TextRecord, error) {
	query := `
		SELECT id, title, content, text_type, style, tags, metadata, created_at, updated_at
		FROM texts
		WHERE id = $1
	`
	return scanText(db.QueryRowContext(ctx, query, id))
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanText maps one database row onto a domain.TextRecord.
func scanText(row rowScanner) (*domain.TextRecord, error) {
	var record domain.TextRecord
	var textType, style string
	var tagsJSON, metadataJSON []byte

	err := row.Scan(
		&record.ID,
		&record.Title,
		&record.Content,
		&textType,
		&style,
		&tagsJSON,
		&metadataJSON,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.TextType = domain.TextType(textType)
	record.Style = domain.Style(style)

	if err := json.Unmarshal(tagsJSON, &record.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}
	if len(metadataJSON) > 0 {
		if err := json.Unmarshal(metadataJSON, &record.Metadata); err != nil {
			return nil, fmt.Errorf("failed to decode metadata: %w", err)
		}
	}

	return &record, nil
}

// marshalTextFields encodes the JSONB columns of a text record.
func marshalTextFields(record *domain.TextRecord) (tagsJSON, metadataJSON []byte, err error) {
	tags := record.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err = json.Marshal(tags)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode tags: %w", err)
	}

	metadata := record.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	metadataJSON, err = json.Marshal(metadata)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode metadata: %w", err)
	}

	return tagsJSON, metadataJSON, nil
}

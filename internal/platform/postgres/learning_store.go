package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/ktiva/ktiva-api/internal/domain"
	"github.com/ktiva/ktiva-api/internal/platform/logger"
	"github.com/ktiva/ktiva-api/internal/store"
)

// PostgresLearningStore implements the store.LearningStore interface
// using a PostgreSQL database as the storage backend.
type PostgresLearningStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresLearningStore creates a new PostgreSQL implementation of
// the LearningStore interface. If log is nil, a default logger will be
// used.
func NewPostgresLearningStore(db *sql.DB, log *slog.Logger) *PostgresLearningStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresLearningStore{
		db:     db,
		logger: log.With(slog.String("component", "learning_store")),
	}
}

// Ensure PostgresLearningStore implements store.LearningStore interface
var _ store.LearningStore = (*PostgresLearningStore)(nil)

// CreateLearningData implements store.LearningStore.CreateLearningData
// CreatedAt comes from the record as supplied by the caller; the store
// never stamps it.
func (s *PostgresLearningStore) CreateLearningData(
	ctx context.Context,
	record *domain.LearningData,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := record.Validate(); err != nil {
		log.Warn("learning data validation failed during create",
			slog.String("error", err.Error()),
			slog.String("learning_id", record.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO learning_data
			(id, user_id, text_id, improvement_type, original_text, improved_text, feedback, rating, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		record.ID,
		record.UserID,
		record.TextID,
		string(record.ImprovementType),
		record.OriginalText,
		record.ImprovedText,
		record.Feedback,
		record.Rating,
		record.CreatedAt,
	)
	if err != nil {
		log.Error("failed to create learning data",
			slog.String("error", err.Error()),
			slog.String("learning_id", record.ID.String()),
			slog.String("user_id", record.UserID))
		return mapError(err)
	}

	log.Info("learning data created successfully",
		slog.String("learning_id", record.ID.String()),
		slog.String("user_id", record.UserID),
		slog.String("improvement_type", string(record.ImprovementType)))
	return nil
}

// ListLearningData implements store.LearningStore.ListLearningData
// It returns the user's feedback records ordered by creation time
// descending. A limit of 0 means no limit.
func (s *PostgresLearningStore) ListLearningData(
	ctx context.Context,
	userID string,
	limit int,
) ([]*domain.LearningData, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	builder := psql.Select(
		"id", "user_id", "text_id", "improvement_type",
		"original_text", "improved_text", "feedback", "rating", "created_at",
	).
		From("learning_data").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, store.NewStoreError("learning_data", "list", "failed to build query", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list learning data",
			slog.String("error", err.Error()),
			slog.String("user_id", userID))
		return nil, mapError(err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	var records []*domain.LearningData
	for rows.Next() {
		var record domain.LearningData
		var improvementType string

		err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.TextID,
			&improvementType,
			&record.OriginalText,
			&record.ImprovedText,
			&record.Feedback,
			&record.Rating,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, store.NewStoreError("learning_data", "list", "failed to scan row", err)
		}

		record.ImprovementType = domain.ImprovementType(improvementType)
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	log.Debug("learning data listed",
		slog.String("user_id", userID),
		slog.Int("count", len(records)))
	return records, nil
}

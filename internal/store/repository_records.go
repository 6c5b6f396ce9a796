package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/akalinin/go-worklog/internal/logger"
	"github.com/akalinin/go-worklog/models"
)

type recordRepository struct {
	*DB
	logger *logger.Logger
}

// NewRecordRepository constructs the SQLite-backed [RecordStore].
func NewRecordRepository(db *DB, logger *logger.Logger) RecordStore {
	return &recordRepository{
		DB:     db,
		logger: logger,
	}
}

var recordColumns = []string{"id", "entity_type", "payload", "synced", "created_at", "updated_at"}

func (r *recordRepository) SaveRecords(ctx context.Context, records ...models.Record) error {
	log := logger.FromContext(ctx)

	for _, rec := range records {
		query, args, err := sq.Insert("records").
			Columns(recordColumns...).
			Values(rec.ID, rec.EntityType, string(rec.Payload), rec.Synced, rec.CreatedAt, rec.UpdatedAt).
			Suffix(`ON CONFLICT(id) DO UPDATE SET
				payload = excluded.payload,
				synced = excluded.synced,
				updated_at = excluded.updated_at`).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: save record: %s", ErrBuildingSQLQuery, err)
		}

		if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "recordRepository.SaveRecords").
				Str("id", rec.ID).
				Str("entity_type", string(rec.EntityType)).
				Msg("failed to execute upsert for record")
			return fmt.Errorf("%w: save record (id=%s): %s", ErrExecutingQuery, rec.ID, err)
		}
	}

	return nil
}

func (r *recordRepository) GetRecord(ctx context.Context, entityType models.EntityType, id string) (models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(recordColumns...).
		From("records").
		Where(sq.Eq{"entity_type": entityType, "id": id}).
		ToSql()
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: get record: %s", ErrBuildingSQLQuery, err)
	}

	rec, err := scanRecord(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Record{}, fmt.Errorf("%w: %s/%s", ErrRecordNotFound, entityType, id)
		}
		log.Err(err).
			Str("func", "recordRepository.GetRecord").
			Str("id", id).
			Msg("failed to scan record row")
		return models.Record{}, fmt.Errorf("%w: get record: %s", ErrScanningRow, err)
	}

	return rec, nil
}

func (r *recordRepository) ListRecords(ctx context.Context, entityType models.EntityType) ([]models.Record, error) {
	query, args, err := sq.Select(recordColumns...).
		From("records").
		Where(sq.Eq{"entity_type": entityType}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: list records: %s", ErrBuildingSQLQuery, err)
	}

	return r.queryRecords(ctx, "recordRepository.ListRecords", query, args)
}

func (r *recordRepository) ListUnsynced(ctx context.Context, entityType models.EntityType, cursor models.Cursor, limit int) ([]models.Record, error) {
	builder := sq.Select(recordColumns...).
		From("records").
		Where(sq.Eq{"entity_type": entityType, "synced": false}).
		OrderBy("id ASC").
		Limit(uint64(limit))
	if !cursor.IsZero() {
		builder = builder.Where(sq.Gt{"id": cursor.LastID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: list unsynced: %s", ErrBuildingSQLQuery, err)
	}

	return r.queryRecords(ctx, "recordRepository.ListUnsynced", query, args)
}

func (r *recordRepository) MarkSynced(ctx context.Context, entityType models.EntityType, id string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Update("records").
		Set("synced", true).
		Where(sq.Eq{"entity_type": entityType, "id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: mark synced: %s", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.MarkSynced").
			Str("id", id).
			Msg("failed to mark record synced")
		return false, fmt.Errorf("%w: mark synced (id=%s): %s", ErrExecutingQuery, id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: mark synced rows affected: %s", ErrExecutingQuery, err)
	}

	return affected > 0, nil
}

func (r *recordRepository) CountUnsynced(ctx context.Context, entityType models.EntityType) (int64, error) {
	query, args, err := sq.Select("COUNT(*)").
		From("records").
		Where(sq.Eq{"entity_type": entityType, "synced": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: count unsynced: %s", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: count unsynced: %s", ErrScanningRow, err)
	}

	return count, nil
}

func (r *recordRepository) OverwriteMirrored(ctx context.Context, entityType models.EntityType, records []models.Record) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: overwrite mirrored: %s", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	delQuery, delArgs, err := sq.Delete("records").
		Where(sq.Eq{"entity_type": entityType}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: overwrite mirrored delete: %s", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, delQuery, delArgs...); err != nil {
		log.Err(err).
			Str("func", "recordRepository.OverwriteMirrored").
			Str("entity_type", string(entityType)).
			Msg("failed to clear mirrored records")
		return fmt.Errorf("%w: overwrite mirrored delete: %s", ErrExecutingQuery, err)
	}

	for _, rec := range records {
		// mirrored data is remote-owned, it is never pushed back
		insQuery, insArgs, err := sq.Insert("records").
			Columns(recordColumns...).
			Values(rec.ID, entityType, string(rec.Payload), true, rec.CreatedAt, rec.UpdatedAt).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: overwrite mirrored insert: %s", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, insQuery, insArgs...); err != nil {
			return fmt.Errorf("%w: overwrite mirrored insert (id=%s): %s", ErrExecutingQuery, rec.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: overwrite mirrored: %s", ErrCommittingTransaction, err)
	}

	return nil
}

func (r *recordRepository) queryRecords(ctx context.Context, caller, query string, args []any) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", caller).Msg("failed to execute records query")
		return nil, fmt.Errorf("%w: %s: %s", ErrExecutingQuery, caller, err)
	}
	defer rows.Close()

	var records []models.Record
	for rows.Next() {
		rec, scanErr := scanRecord(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", caller).Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %s: %s", ErrScanningRow, caller, scanErr)
		}
		records = append(records, rec)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrExecutingQuery, caller, rowsErr)
	}

	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (models.Record, error) {
	var rec models.Record
	var payload []byte

	if err := row.Scan(
		&rec.ID,
		&rec.EntityType,
		&payload,
		&rec.Synced,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	); err != nil {
		return models.Record{}, err
	}

	rec.Payload = payload
	return rec, nil
}

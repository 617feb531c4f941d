package rawstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/samber/lo"
	_ "github.com/stoolap/stoolap/pkg/driver"

	"datagen/internal/repository"
)

// 組み込みSQLエンジン(stoolap)上のrawデータストア。
// memory:// ならプロセス内、file://<path> なら永続化。
type Store struct {
	db  *sql.DB
	seq atomic.Int64
}

var _ repository.RawStore = (*Store)(nil)
var _ repository.JobTracker = (*Store)(nil)

// Open はDSNで組み込みストアを開いてスキーマを作る。
func Open(dsn string) (*Store, error) {
	if dsn == "" {
		dsn = "memory://"
	}

	db, err := sql.Open("stoolap", dsn)
	if err != nil {
		return nil, fmt.Errorf("rawstore: open %s: %w", dsn, err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS raw_rows (
			seq INTEGER PRIMARY KEY,
			layer TEXT,
			user_id TEXT,
			parent_job_id TEXT,
			job_id TEXT,
			table_name TEXT,
			payload TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS job_completions (
			seq INTEGER PRIMARY KEY,
			parent_job_id TEXT,
			job_id TEXT
		)`,
	}
	for _, q := range ddl {
		if _, err := s.db.Exec(q); err != nil {
			return fmt.Errorf("rawstore: migrate: %w", err)
		}
	}

	// 再起動後もseqが衝突しないように最大値から続ける
	var maxSeq sql.NullInt64
	row := s.db.QueryRow(`SELECT MAX(seq) FROM raw_rows`)
	if err := row.Scan(&maxSeq); err == nil && maxSeq.Valid {
		s.seq.Store(maxSeq.Int64)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) SaveRows(ctx context.Context, layer, userID, parentJobID, jobID, table string, rows []json.RawMessage) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO raw_rows (seq, layer, user_id, parent_job_id, job_id, table_name, payload)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.ExecContext(ctx, s.seq.Add(1), layer, userID, parentJobID, jobID, table, string(r)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// 投入順で返す
func (s *Store) ListRows(ctx context.Context, layer, userID, parentJobID, table string, limit int) ([]json.RawMessage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT payload FROM raw_rows
		 WHERE layer = ? AND user_id = ? AND parent_job_id = ? AND table_name = ?
		 ORDER BY seq LIMIT ?`,
		layer, userID, parentJobID, table, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []json.RawMessage
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		out = append(out, json.RawMessage(payload))
	}
	return out, rows.Err()
}

func (s *Store) HasFolder(ctx context.Context, userID, parentJobID string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM raw_rows
		 WHERE layer = ? AND user_id = ? AND parent_job_id = ?`,
		repository.LayerRaw, userID, parentJobID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) ListParentJobs(ctx context.Context, userID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT parent_job_id FROM raw_rows WHERE layer = ? AND user_id = ?`,
		repository.LayerRaw, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	ids = lo.Uniq(ids)
	sort.Strings(ids)
	return ids, nil
}

// raw/cleaned両レイヤーから消す
func (s *Store) DeleteFolder(ctx context.Context, userID, parentJobID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM raw_rows WHERE user_id = ? AND parent_job_id = ?`,
		userID, parentJobID)
	return err
}

// 同じ(parent, job)の二重登録は無視する。
func (s *Store) MarkCompleted(ctx context.Context, parentJobID, jobID string) error {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM job_completions WHERE parent_job_id = ? AND job_id = ?`,
		parentJobID, jobID).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO job_completions (seq, parent_job_id, job_id) VALUES (?, ?, ?)`,
		s.seq.Add(1), parentJobID, jobID)
	return err
}

func (s *Store) CompletedCount(ctx context.Context, parentJobID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM job_completions WHERE parent_job_id = ?`,
		parentJobID).Scan(&count)
	return count, err
}

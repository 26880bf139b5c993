package repository

import (
	"context"

	"go-event-scheduler/internal/audit"
	"go-event-scheduler/internal/model"
	apperrors "go-event-scheduler/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

// EventMutation 在同一個 transaction 內收到鎖定中的目前資料，回傳要寫回的資料
// 回傳 error 時整筆 transaction rollback，資料不會有任何變動
type EventMutation func(current *model.Event) (*model.Event, error)

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*model.Event, error)
	// Update 讀取-修改-寫入為單一原子操作：欄位變更與新增的 update log 一起 commit
	Update(ctx context.Context, id uuid.UUID, mutate EventMutation) (*model.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// querier pgxpool.Pool 與 pgx.Tx 共用的查詢介面
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const eventColumns = `id, event_name, event_details, timezone, start_date_time, end_date_time, created_at, updated_at`

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "begin tx")
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = tx.Exec(ctx, query,
		event.ID, event.EventName, event.EventDetails, event.Timezone,
		event.StartDateTime, event.EndDateTime, event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		return nil, errors.Wrap(err, "insert event")
	}

	if err := r.insertProfiles(ctx, tx, event.ID, event.Profiles); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errors.Wrap(err, "commit create event")
	}

	return event.Clone(), nil
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	return r.findByID(ctx, r.pool, id, false)
}

func (r *EventRepositoryImpl) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*model.Event, error) {
	query := `
		SELECT e.id, e.event_name, e.event_details, e.timezone,
				e.start_date_time, e.end_date_time, e.created_at, e.updated_at
		FROM events e
		JOIN event_profiles ep ON ep.event_id = e.id
		WHERE ep.profile_id = $1
		ORDER BY e.start_date_time ASC, e.created_at ASC, e.id ASC
	`
	rows, err := r.pool.Query(ctx, query, profileID)
	if err != nil {
		return nil, errors.Wrap(err, "list events by profile")
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate events")
	}

	if err := r.loadRelations(ctx, r.pool, events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventRepositoryImpl) Update(ctx context.Context, id uuid.UUID, mutate EventMutation) (*model.Event, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "begin tx")
	}
	defer tx.Rollback(ctx)

	current, err := r.findByID(ctx, tx, id, true)
	if err != nil {
		return nil, err
	}

	updated, err := mutate(current.Clone())
	if err != nil {
		return nil, err
	}
	if !audit.IsAppendOnly(current.UpdateLogs, updated.UpdateLogs) {
		return nil, apperrors.ErrAuditLogRewrite
	}

	query := `
		UPDATE events
		SET event_name = $1, event_details = $2, timezone = $3,
			start_date_time = $4, end_date_time = $5, updated_at = $6
		WHERE id = $7
	`
	_, err = tx.Exec(ctx, query,
		updated.EventName, updated.EventDetails, updated.Timezone,
		updated.StartDateTime, updated.EndDateTime, updated.UpdatedAt, id,
	)
	if err != nil {
		return nil, errors.Wrap(err, "update event")
	}

	if !sameProfiles(current.Profiles, updated.Profiles) {
		if _, err := tx.Exec(ctx, `DELETE FROM event_profiles WHERE event_id = $1`, id); err != nil {
			return nil, errors.Wrap(err, "clear event profiles")
		}
		if err := r.insertProfiles(ctx, tx, id, updated.Profiles); err != nil {
			return nil, err
		}
	}

	for _, entry := range updated.UpdateLogs[len(current.UpdateLogs):] {
		query := `
			INSERT INTO event_update_logs (event_id, updated_by, changes, "timestamp")
			VALUES ($1, $2, $3, $4)
		`
		if _, err := tx.Exec(ctx, query, id, entry.UpdatedBy, entry.Changes, entry.Timestamp); err != nil {
			return nil, errors.Wrap(err, "insert update log")
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errors.Wrap(err, "commit update event")
	}

	return updated, nil
}

func (r *EventRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	// event_profiles 與 event_update_logs 透過 ON DELETE CASCADE 一併刪除
	result, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "delete event")
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

func (r *EventRepositoryImpl) findByID(ctx context.Context, q querier, id uuid.UUID, forUpdate bool) (*model.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1
	`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	event, err := scanEvent(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	if err := r.loadRelations(ctx, q, []*model.Event{event}); err != nil {
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) insertProfiles(ctx context.Context, q querier, eventID uuid.UUID, profiles []uuid.UUID) error {
	query := `
		INSERT INTO event_profiles (event_id, profile_id, position)
		VALUES ($1, $2, $3)
	`
	for i, profileID := range profiles {
		if _, err := q.Exec(ctx, query, eventID, profileID, i); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
				return apperrors.NewValidationError("Profile %s does not exist", profileID)
			}
			return errors.Wrap(err, "insert event profile")
		}
	}
	return nil
}

// loadRelations 一次載入多筆 event 的 profiles 與 update logs
func (r *EventRepositoryImpl) loadRelations(ctx context.Context, q querier, events []*model.Event) error {
	if len(events) == 0 {
		return nil
	}

	ids := make([]string, len(events))
	byID := make(map[uuid.UUID]*model.Event, len(events))
	for i, e := range events {
		ids[i] = e.ID.String()
		e.Profiles = []uuid.UUID{}
		e.UpdateLogs = []model.UpdateLogEntry{}
		byID[e.ID] = e
	}

	profileRows, err := q.Query(ctx, `
		SELECT event_id, profile_id
		FROM event_profiles
		WHERE event_id = ANY($1::uuid[])
		ORDER BY event_id, position
	`, ids)
	if err != nil {
		return errors.Wrap(err, "load event profiles")
	}
	for profileRows.Next() {
		var eventID, profileID uuid.UUID
		if err := profileRows.Scan(&eventID, &profileID); err != nil {
			profileRows.Close()
			return errors.Wrap(err, "scan event profile")
		}
		if e, ok := byID[eventID]; ok {
			e.Profiles = append(e.Profiles, profileID)
		}
	}
	profileRows.Close()
	if err := profileRows.Err(); err != nil {
		return errors.Wrap(err, "iterate event profiles")
	}

	logRows, err := q.Query(ctx, `
		SELECT event_id, updated_by, changes, "timestamp"
		FROM event_update_logs
		WHERE event_id = ANY($1::uuid[])
		ORDER BY id
	`, ids)
	if err != nil {
		return errors.Wrap(err, "load update logs")
	}
	defer logRows.Close()
	for logRows.Next() {
		var eventID uuid.UUID
		var entry model.UpdateLogEntry
		if err := logRows.Scan(&eventID, &entry.UpdatedBy, &entry.Changes, &entry.Timestamp); err != nil {
			return errors.Wrap(err, "scan update log")
		}
		entry.Timestamp = entry.Timestamp.UTC()
		if e, ok := byID[eventID]; ok {
			e.UpdateLogs = append(e.UpdateLogs, entry)
		}
	}
	return errors.Wrap(logRows.Err(), "iterate update logs")
}

func scanEvent(row pgx.Row) (*model.Event, error) {
	var event model.Event
	err := row.Scan(
		&event.ID,
		&event.EventName,
		&event.EventDetails,
		&event.Timezone,
		&event.StartDateTime,
		&event.EndDateTime,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	event.StartDateTime = event.StartDateTime.UTC()
	event.EndDateTime = event.EndDateTime.UTC()
	event.CreatedAt = event.CreatedAt.UTC()
	event.UpdatedAt = event.UpdatedAt.UTC()
	return &event, nil
}

func sameProfiles(a, b []uuid.UUID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

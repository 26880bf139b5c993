package repository

import (
	"context"
	"strings"

	"go-event-scheduler/internal/model"
	apperrors "go-event-scheduler/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *model.Profile) (*model.Profile, error)
	List(ctx context.Context) ([]*model.Profile, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	// FindByName 名稱比對不分大小寫
	FindByName(ctx context.Context, name string) (*model.Profile, error)
	// FindByIDs 不存在的 id 直接略過，順序不保證
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Profile, error)
	// FindMissing 回傳 ids 中不存在的 profile id (保持輸入順序)
	FindMissing(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
	UpdateTimezone(ctx context.Context, id uuid.UUID, tz string) (*model.Profile, error)
}

type ProfileRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) ProfileRepository {
	return &ProfileRepositoryImpl{
		pool: pool,
	}
}

func (r *ProfileRepositoryImpl) Create(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	query := `
		INSERT INTO profiles (id, name, timezone, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, timezone, created_at
	`
	created, err := scanProfile(r.pool.QueryRow(ctx, query,
		profile.ID, profile.Name, profile.Timezone, profile.CreatedAt,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, &apperrors.DuplicateNameError{Name: profile.Name}
		}
		return nil, errors.Wrap(err, "insert profile")
	}
	return created, nil
}

func (r *ProfileRepositoryImpl) List(ctx context.Context) ([]*model.Profile, error) {
	query := `
		SELECT id, name, timezone, created_at
		FROM profiles
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "list profiles")
	}
	defer rows.Close()

	profiles := make([]*model.Profile, 0)
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan profile")
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate profiles")
	}
	return profiles, nil
}

func (r *ProfileRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	query := `
		SELECT id, name, timezone, created_at
		FROM profiles
		WHERE id = $1
	`
	profile, err := scanProfile(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, errors.Wrap(err, "find profile")
	}
	return profile, nil
}

func (r *ProfileRepositoryImpl) FindByName(ctx context.Context, name string) (*model.Profile, error) {
	query := `
		SELECT id, name, timezone, created_at
		FROM profiles
		WHERE lower(name) = lower($1)
		LIMIT 1
	`
	profile, err := scanProfile(r.pool.QueryRow(ctx, query, strings.TrimSpace(name)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, errors.Wrap(err, "find profile by name")
	}
	return profile, nil
}

func (r *ProfileRepositoryImpl) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Profile, error) {
	profiles := make([]*model.Profile, 0, len(ids))
	if len(ids) == 0 {
		return profiles, nil
	}

	query := `
		SELECT id, name, timezone, created_at
		FROM profiles
		WHERE id = ANY($1::uuid[])
	`
	rows, err := r.pool.Query(ctx, query, uuidStrings(ids))
	if err != nil {
		return nil, errors.Wrap(err, "find profiles by ids")
	}
	defer rows.Close()

	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan profile")
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate profiles")
	}
	return profiles, nil
}

func (r *ProfileRepositoryImpl) FindMissing(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, `SELECT id FROM profiles WHERE id = ANY($1::uuid[])`, uuidStrings(ids))
	if err != nil {
		return nil, errors.Wrap(err, "find profiles")
	}
	defer rows.Close()

	found := make(map[uuid.UUID]struct{}, len(ids))
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Wrap(err, "scan profile id")
		}
		found[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate profile ids")
	}

	return missingIDs(ids, found), nil
}

func (r *ProfileRepositoryImpl) UpdateTimezone(ctx context.Context, id uuid.UUID, tz string) (*model.Profile, error) {
	query := `
		UPDATE profiles
		SET timezone = $1
		WHERE id = $2
		RETURNING id, name, timezone, created_at
	`
	profile, err := scanProfile(r.pool.QueryRow(ctx, query, tz, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, errors.Wrap(err, "update profile timezone")
	}
	return profile, nil
}

func scanProfile(row pgx.Row) (*model.Profile, error) {
	var profile model.Profile
	err := row.Scan(
		&profile.ID,
		&profile.Name,
		&profile.Timezone,
		&profile.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	profile.CreatedAt = profile.CreatedAt.UTC()
	return &profile, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func missingIDs(ids []uuid.UUID, found map[uuid.UUID]struct{}) []uuid.UUID {
	var missing []uuid.UUID
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/puddle/v2"

	"accounts-api/internal/domain"
	"accounts-api/internal/repository"
)

const userColumns = `id, name, email, password_hash, created_at, updated_at`

// UserRepository persists users in PostgreSQL. All queries are
// parameterized; no SQL is built from request input.
type UserRepository struct {
	db      DB
	timeout time.Duration
}

// NewUserRepository wraps a pool-backed DB. timeout bounds every
// operation, including the wait for a free connection when the pool is
// exhausted; zero disables the bound.
func NewUserRepository(db DB, timeout time.Duration) repository.UserRepository {
	return &UserRepository{db: db, timeout: timeout}
}

func (r *UserRepository) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	err := r.db.QueryRow(ctx, `
INSERT INTO users (name, email, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		return 0, mapError("insert user", err)
	}
	return user.ID, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	row := r.db.QueryRow(ctx, `
SELECT `+userColumns+`
FROM users
WHERE email = $1`,
		email,
	)
	return scanUser(row)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	row := r.db.QueryRow(ctx, `
SELECT `+userColumns+`
FROM users
WHERE id = $1`,
		id,
	)
	return scanUser(row)
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, `
SELECT `+userColumns+`
FROM users
ORDER BY id`)
	if err != nil {
		return nil, mapError("list users", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list users", err)
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	user.UpdatedAt = time.Now().UTC()

	tag, err := r.db.Exec(ctx, `
UPDATE users
SET name = $2, email = $3, updated_at = $4
WHERE id = $1`,
		user.ID,
		user.Name,
		user.Email,
		user.UpdatedAt,
	)
	if err != nil {
		return mapError("update user", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return mapError("delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, mapError("scan user", err)
	}
	return &user, nil
}

// mapError translates driver failures into the domain taxonomy: unique
// violations on the email constraint become ErrEmailTaken, while
// timeouts waiting for a connection, a closed pool, and network-level
// connection failures all become ErrStoreUnavailable.
func mapError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return domain.ErrEmailTaken
	}
	if storeUnavailable(err) {
		return fmt.Errorf("%s: %w", op, domain.ErrStoreUnavailable)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// storeUnavailable reports whether err means the store could not be
// reached at all, as opposed to the store rejecting a statement.
func storeUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, puddle.ErrClosedPool) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

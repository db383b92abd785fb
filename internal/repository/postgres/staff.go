package postgres

import (
	"context"
	"database/sql"
	"time"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/repository"
)

const staffColumns = `id, username, password_hash, role, is_verified, created_on`

type staffRepository struct {
	db *sql.DB
}

func NewStaffRepository(db *sql.DB) repository.StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) Create(ctx context.Context, a *domain.StaffAccount) error {
	query := `INSERT INTO staff_accounts (username, password_hash, role, is_verified, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	a.CreatedOn = time.Now().Format("2006-01-02")
	err := r.db.QueryRowContext(ctx, query, a.Username, a.PasswordHash, a.Role, a.IsVerified, a.CreatedOn).Scan(&a.ID)
	return translateErr(err)
}

func (r *staffRepository) GetByID(ctx context.Context, id int32) (*domain.StaffAccount, error) {
	query := `SELECT ` + staffColumns + ` FROM staff_accounts WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *staffRepository) GetByUsername(ctx context.Context, username string) (*domain.StaffAccount, error) {
	query := `SELECT ` + staffColumns + ` FROM staff_accounts WHERE username = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, username))
}

func (r *staffRepository) ListStaff(ctx context.Context) ([]domain.StaffAccount, error) {
	query := `SELECT ` + staffColumns + ` FROM staff_accounts WHERE role = 'Staff' ORDER BY created_on DESC, id DESC`
	return r.list(ctx, query)
}

func (r *staffRepository) ListPendingStaff(ctx context.Context) ([]domain.StaffAccount, error) {
	query := `SELECT ` + staffColumns + ` FROM staff_accounts WHERE role = 'Staff' AND is_verified = FALSE ORDER BY created_on DESC, id DESC`
	return r.list(ctx, query)
}

func (r *staffRepository) SetVerified(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `UPDATE staff_accounts SET is_verified = TRUE WHERE id = $1`, id)
	if err != nil {
		return translateErr(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *staffRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM staff_accounts WHERE id = $1`, id)
	if err != nil {
		return translateErr(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *staffRepository) CountAdmins(ctx context.Context) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM staff_accounts WHERE role = 'Admin'`).Scan(&count)
	return count, translateErr(err)
}

func (r *staffRepository) scanOne(row *sql.Row) (*domain.StaffAccount, error) {
	a := &domain.StaffAccount{}
	var createdOn time.Time
	err := row.Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Role, &a.IsVerified, &createdOn)
	if err != nil {
		return nil, translateErr(err)
	}
	a.CreatedOn = createdOn.Format("2006-01-02")
	return a, nil
}

func (r *staffRepository) list(ctx context.Context, query string) ([]domain.StaffAccount, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	var accts []domain.StaffAccount
	for rows.Next() {
		var a domain.StaffAccount
		var createdOn time.Time
		if err := rows.Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Role, &a.IsVerified, &createdOn); err != nil {
			return nil, err
		}
		a.CreatedOn = createdOn.Format("2006-01-02")
		accts = append(accts, a)
	}
	return accts, rows.Err()
}

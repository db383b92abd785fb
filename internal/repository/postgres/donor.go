package postgres

import (
	"context"
	"database/sql"
	"time"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/repository"
)

const donorColumns = `id, mobile_number, COALESCE(national_id, ''), name, father_name, gender, age, blood_group, address, created_on, updated_on`

type donorRepository struct {
	db *sql.DB
}

func NewDonorRepository(db *sql.DB) repository.DonorRepository {
	return &donorRepository{db: db}
}

func (r *donorRepository) Create(ctx context.Context, d *domain.Donor) error {
	query := `INSERT INTO donors (mobile_number, national_id, name, father_name, gender, age, blood_group, address, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	now := time.Now().Format("2006-01-02")
	d.CreatedOn = now
	d.UpdatedOn = now
	err := r.db.QueryRowContext(ctx, query, d.MobileNumber, d.NationalID, d.Name, d.FatherName, d.Gender, d.Age, d.BloodGroup, d.Address, d.CreatedOn, d.UpdatedOn).Scan(&d.ID)
	return translateErr(err)
}

func (r *donorRepository) GetByID(ctx context.Context, id int32) (*domain.Donor, error) {
	query := `SELECT ` + donorColumns + ` FROM donors WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *donorRepository) GetByMobile(ctx context.Context, mobile string) (*domain.Donor, error) {
	query := `SELECT ` + donorColumns + ` FROM donors WHERE mobile_number = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, mobile))
}

func (r *donorRepository) GetByNationalID(ctx context.Context, nationalID string) (*domain.Donor, error) {
	query := `SELECT ` + donorColumns + ` FROM donors WHERE national_id = $1 AND national_id <> ''`
	return r.scanOne(r.db.QueryRowContext(ctx, query, nationalID))
}

func (r *donorRepository) Update(ctx context.Context, d *domain.Donor) error {
	query := `UPDATE donors SET national_id=$1, name=$2, father_name=$3, gender=$4, age=$5, blood_group=$6, address=$7, updated_on=$8 WHERE id=$9`
	d.UpdatedOn = time.Now().Format("2006-01-02")
	res, err := r.db.ExecContext(ctx, query, d.NationalID, d.Name, d.FatherName, d.Gender, d.Age, d.BloodGroup, d.Address, d.UpdatedOn, d.ID)
	if err != nil {
		return translateErr(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *donorRepository) Count(ctx context.Context) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM donors`).Scan(&count)
	return count, translateErr(err)
}

func (r *donorRepository) scanOne(row *sql.Row) (*domain.Donor, error) {
	d := &domain.Donor{}
	var createdOn, updatedOn time.Time
	err := row.Scan(&d.ID, &d.MobileNumber, &d.NationalID, &d.Name, &d.FatherName, &d.Gender, &d.Age, &d.BloodGroup, &d.Address, &createdOn, &updatedOn)
	if err != nil {
		return nil, translateErr(err)
	}
	d.CreatedOn = createdOn.Format("2006-01-02")
	d.UpdatedOn = updatedOn.Format("2006-01-02")
	return d, nil
}

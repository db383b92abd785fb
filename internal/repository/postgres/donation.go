package postgres

import (
	"context"
	"database/sql"
	"time"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/logger"
	"bloodbank-backend/internal/repository"
)

const donationColumns = `id, donor_id, donation_date, COALESCE(bag_number, ''), COALESCE(bag_type, ''), COALESCE(donation_type, ''), hiv, hbsag, hcv, syphilis, malaria, COALESCE(remark, ''), COALESCE(entered_by, ''), created_on`

type donationRepository struct {
	db *sql.DB
}

func NewDonationRepository(db *sql.DB) repository.DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) Create(ctx context.Context, rec *domain.DonationRecord) error {
	query := `INSERT INTO donations (donor_id, donation_date, bag_number, bag_type, donation_type, hiv, hbsag, hcv, syphilis, malaria, remark, entered_by, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	rec.CreatedOn = time.Now().Format("2006-01-02")
	err := r.db.QueryRowContext(ctx, query,
		rec.DonorID, rec.DonationDate, rec.BagNumber, rec.BagType, rec.DonationType,
		rec.HIV, rec.HBsAg, rec.HCV, rec.Syphilis, rec.Malaria,
		rec.Remark, rec.EnteredBy, rec.CreatedOn).Scan(&rec.ID)
	return translateErr(err)
}

func (r *donationRepository) GetByID(ctx context.Context, id int32) (*domain.DonationRecord, error) {
	query := `SELECT ` + donationColumns + ` FROM donations WHERE id = $1`
	rec := &domain.DonationRecord{}
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rec.ID, &rec.DonorID, &rec.DonationDate, &rec.BagNumber, &rec.BagType, &rec.DonationType,
		&rec.HIV, &rec.HBsAg, &rec.HCV, &rec.Syphilis, &rec.Malaria,
		&rec.Remark, &rec.EnteredBy, &createdOn)
	if err != nil {
		return nil, translateErr(err)
	}
	rec.CreatedOn = createdOn.Format("2006-01-02")
	return rec, nil
}

// ListByDonor returns a donor's history sorted by donation date descending.
// The eligibility engine depends on this ordering: it only consults the
// first record.
func (r *donationRepository) ListByDonor(ctx context.Context, donorID int32) ([]domain.DonationRecord, error) {
	query := `SELECT ` + donationColumns + ` FROM donations WHERE donor_id = $1 ORDER BY donation_date DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, donorID)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	var recs []domain.DonationRecord
	for rows.Next() {
		var rec domain.DonationRecord
		var createdOn time.Time
		if err := rows.Scan(
			&rec.ID, &rec.DonorID, &rec.DonationDate, &rec.BagNumber, &rec.BagType, &rec.DonationType,
			&rec.HIV, &rec.HBsAg, &rec.HCV, &rec.Syphilis, &rec.Malaria,
			&rec.Remark, &rec.EnteredBy, &createdOn); err != nil {
			return nil, err
		}
		rec.CreatedOn = createdOn.Format("2006-01-02")
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func (r *donationRepository) ListAllWithDonors(ctx context.Context) ([]domain.DonationRecord, []domain.Donor, error) {
	query := `SELECT d.id, d.donor_id, d.donation_date, COALESCE(d.bag_number, ''), COALESCE(d.bag_type, ''), COALESCE(d.donation_type, ''), d.hiv, d.hbsag, d.hcv, d.syphilis, d.malaria, COALESCE(d.remark, ''), COALESCE(d.entered_by, ''), d.created_on,
	                 o.id, o.mobile_number, COALESCE(o.national_id, ''), o.name, o.father_name, o.gender, o.age, o.blood_group, o.address, o.created_on, o.updated_on
	          FROM donations d
	          JOIN donors o ON o.id = d.donor_id
	          ORDER BY d.donation_date DESC, d.id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("list all donations failed", "error", err)
		return nil, nil, translateErr(err)
	}
	defer rows.Close()

	var recs []domain.DonationRecord
	var donors []domain.Donor
	for rows.Next() {
		var rec domain.DonationRecord
		var d domain.Donor
		var recCreated, donorCreated, donorUpdated time.Time
		if err := rows.Scan(
			&rec.ID, &rec.DonorID, &rec.DonationDate, &rec.BagNumber, &rec.BagType, &rec.DonationType,
			&rec.HIV, &rec.HBsAg, &rec.HCV, &rec.Syphilis, &rec.Malaria,
			&rec.Remark, &rec.EnteredBy, &recCreated,
			&d.ID, &d.MobileNumber, &d.NationalID, &d.Name, &d.FatherName, &d.Gender, &d.Age, &d.BloodGroup, &d.Address, &donorCreated, &donorUpdated); err != nil {
			return nil, nil, err
		}
		rec.CreatedOn = recCreated.Format("2006-01-02")
		d.CreatedOn = donorCreated.Format("2006-01-02")
		d.UpdatedOn = donorUpdated.Format("2006-01-02")
		recs = append(recs, rec)
		donors = append(donors, d)
	}
	return recs, donors, rows.Err()
}

// Update writes the admin-editable fields: bag metadata and test results.
// DonorID and DonationDate are not changed on this path.
func (r *donationRepository) Update(ctx context.Context, rec *domain.DonationRecord) error {
	query := `UPDATE donations SET bag_number=$1, bag_type=$2, donation_type=$3, hiv=$4, hbsag=$5, hcv=$6, syphilis=$7, malaria=$8, remark=$9 WHERE id=$10`
	res, err := r.db.ExecContext(ctx, query, rec.BagNumber, rec.BagType, rec.DonationType, rec.HIV, rec.HBsAg, rec.HCV, rec.Syphilis, rec.Malaria, rec.Remark, rec.ID)
	if err != nil {
		return translateErr(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *donationRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM donations WHERE id = $1`, id)
	if err != nil {
		return translateErr(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *donationRepository) Count(ctx context.Context) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM donations`).Scan(&count)
	return count, translateErr(err)
}

package postgres_test

import (
	"context"
	"testing"
	"time"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var donationRows = []string{"id", "donor_id", "donation_date", "bag_number", "bag_type", "donation_type", "hiv", "hbsag", "hcv", "syphilis", "malaria", "remark", "entered_by", "created_on"}

func TestDonationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewDonationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rec := &domain.DonationRecord{
			DonorID:      1,
			DonationDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			BagNumber:    "BAG-42",
			BagType:      "Single",
			DonationType: "Voluntary",
			HIV:          domain.ResultNonReactive,
			HBsAg:        domain.ResultNonReactive,
			HCV:          domain.ResultNonReactive,
			Syphilis:     domain.ResultNonReactive,
			Malaria:      domain.ResultNonReactive,
			EnteredBy:    "staff1",
		}

		mock.ExpectQuery("INSERT INTO donations").
			WithArgs(rec.DonorID, rec.DonationDate, rec.BagNumber, rec.BagType, rec.DonationType,
				rec.HIV, rec.HBsAg, rec.HCV, rec.Syphilis, rec.Malaria,
				rec.Remark, rec.EnteredBy, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

		err := repo.Create(ctx, rec)
		assert.NoError(t, err)
		assert.Equal(t, int32(11), rec.ID)
	})
}

func TestDonationRepository_ListByDonor(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewDonationRepository(db)
	ctx := context.Background()

	t.Run("NewestFirst", func(t *testing.T) {
		rows := sqlmock.NewRows(donationRows).
			AddRow(2, 1, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), "BAG-2", "Single", "Voluntary", "Non-Reactive", "Non-Reactive", "Non-Reactive", "Non-Reactive", "Non-Reactive", "", "staff1", time.Now()).
			AddRow(1, 1, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), "BAG-1", "Single", "Voluntary", "Non-Reactive", "Non-Reactive", "Non-Reactive", "Non-Reactive", "Non-Reactive", "", "staff1", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM donations WHERE donor_id = \\$1 ORDER BY donation_date DESC").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		recs, err := repo.ListByDonor(ctx, 1)
		assert.NoError(t, err)
		assert.Len(t, recs, 2)
		assert.Equal(t, int32(2), recs[0].ID)
		assert.True(t, recs[0].DonationDate.After(recs[1].DonationDate))
	})

	t.Run("Empty", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM donations WHERE donor_id = \\$1 ORDER BY donation_date DESC").
			WithArgs(int32(5)).
			WillReturnRows(sqlmock.NewRows(donationRows))

		recs, err := repo.ListByDonor(ctx, 5)
		assert.NoError(t, err)
		assert.Empty(t, recs)
	})
}

func TestDonationRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewDonationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rec := &domain.DonationRecord{ID: 3, BagNumber: "BAG-9", HIV: domain.ResultReactive}

		mock.ExpectExec("UPDATE donations SET").
			WithArgs(rec.BagNumber, rec.BagType, rec.DonationType, rec.HIV, rec.HBsAg, rec.HCV, rec.Syphilis, rec.Malaria, rec.Remark, rec.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, rec)
		assert.NoError(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		rec := &domain.DonationRecord{ID: 99}

		mock.ExpectExec("UPDATE donations SET").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, rec)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestDonationRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewDonationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM donations WHERE id = \\$1").
			WithArgs(int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 3))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM donations WHERE id = \\$1").
			WithArgs(int32(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, 99), domain.ErrNotFound)
	})
}

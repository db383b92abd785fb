package service

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/logger"
	"bloodbank-backend/internal/metrics"
	"bloodbank-backend/internal/repository"
)

// Date layouts tolerated in backfill spreadsheets.
var importDateLayouts = []string{"2006-01-02", "02-01-2006", "01/02/2006"}

type importService struct {
	registry     RegistryService
	donationRepo repository.DonationRepository
	metrics      *metrics.Metrics
}

func NewImportService(registry RegistryService, donationRepo repository.DonationRepository, m *metrics.Metrics) ImportService {
	return &importService{
		registry:     registry,
		donationRepo: donationRepo,
		metrics:      m,
	}
}

// Run processes every row independently. Historical backfill data is
// trusted as-is: the eligibility engine deliberately does not run here.
func (s *importService) Run(ctx context.Context, rows RowReader) (ImportSummary, error) {
	log := logger.WithComponent("bulk-import")

	var summary ImportSummary
	for {
		raw, err := rows.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// A row the source could not even produce is a skip, not an
			// abort.
			summary.Skipped++
			s.metrics.ImportRows.WithLabelValues("skipped").Inc()
			continue
		}

		if err := s.importRow(ctx, normalizeRow(raw)); err != nil {
			log.Debug("row skipped", "error", err)
			summary.Skipped++
			s.metrics.ImportRows.WithLabelValues("skipped").Inc()
			continue
		}
		summary.Imported++
		s.metrics.ImportRows.WithLabelValues("imported").Inc()
	}

	log.Info("bulk import finished", "imported", summary.Imported, "skipped", summary.Skipped)
	return summary, nil
}

func (s *importService) importRow(ctx context.Context, row map[string]string) error {
	mobile := row["mobile"]
	if mobile == "" {
		return domain.ErrValidation
	}

	age, _ := strconv.Atoi(row["age"])
	donor, _, err := s.registry.ResolveOrCreate(ctx,
		domain.DonorIdentifier{Mobile: mobile, NationalID: row["nationalid"]},
		domain.DonorAttributes{
			Name:       row["name"],
			FatherName: row["fathername"],
			Gender:     domain.Gender(row["gender"]),
			Age:        int32(age),
			BloodGroup: row["bloodgroup"],
			Address:    row["address"],
		})
	if err != nil {
		return err
	}

	// Rows without a date only establish the donor identity.
	dateStr := row["date"]
	if dateStr == "" {
		return nil
	}
	donationDate, err := parseImportDate(dateStr)
	if err != nil {
		return err
	}

	rec := domain.DonationRecord{
		DonorID:      donor.ID,
		DonationDate: donationDate,
		BagNumber:    row["bagno"],
		DonationType: "Voluntary",
		EnteredBy:    domain.EnteredByBulkImport,
	}
	if rec.BagNumber == "" {
		rec.BagNumber = "Old Record"
	}
	defaultResults(&rec)
	return s.donationRepo.Create(ctx, &rec)
}

// normalizeRow lowercases keys and strips spaces and underscores so that
// header variants like "Mobile", "mobile" and "National_ID" all land on the
// same key. Values are whitespace-trimmed.
func normalizeRow(raw map[string]string) map[string]string {
	row := make(map[string]string, len(raw))
	for k, v := range raw {
		k = strings.ToLower(strings.TrimSpace(k))
		k = strings.ReplaceAll(k, " ", "")
		k = strings.ReplaceAll(k, "_", "")
		row[k] = strings.TrimSpace(v)
	}
	return row
}

func parseImportDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range importDateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

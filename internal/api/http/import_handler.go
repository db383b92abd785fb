package http

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/service"
)

type ImportHandler struct {
	importer    service.ImportService
	maxFileSize int64
}

func NewImportHandler(importer service.ImportService, maxFileSizeMB int64) *ImportHandler {
	return &ImportHandler{
		importer:    importer,
		maxFileSize: maxFileSizeMB << 20,
	}
}

// Upload accepts a multipart CSV file under the "file" field and streams
// its rows into the import service. The response is the batch summary;
// individual row problems never fail the request.
func (h *ImportHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, fmt.Errorf("%w: a CSV file upload is required", domain.ErrValidation))
		return
	}
	defer file.Close()

	summary, err := h.importer.Run(r.Context(), newCSVRowReader(file))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// csvRowReader adapts encoding/csv to the import service's row-map
// contract: the first record is the header, each later record becomes a
// header-keyed map.
type csvRowReader struct {
	reader *csv.Reader
	header []string
}

func newCSVRowReader(r io.Reader) service.RowReader {
	cr := csv.NewReader(r)
	// Backfill spreadsheets have ragged rows; length mismatches are
	// handled per-row rather than failing the whole file.
	cr.FieldsPerRecord = -1
	return &csvRowReader{reader: cr}
}

func (c *csvRowReader) Read() (map[string]string, error) {
	if c.header == nil {
		header, err := c.reader.Read()
		if err != nil {
			return nil, err
		}
		c.header = header
	}

	record, err := c.reader.Read()
	if err != nil {
		return nil, err
	}

	row := make(map[string]string, len(c.header))
	for i, key := range c.header {
		if i < len(record) {
			row[key] = record[i]
		}
	}
	return row, nil
}

package ingest

import (
	"encoding/csv"
	"errors"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/mack42/weekly-uptime-status-report/internal/domain"
	"github.com/mack42/weekly-uptime-status-report/internal/observability"
	"github.com/mack42/weekly-uptime-status-report/pkg/util"
)

// Ledger column headers as exported by the outage spreadsheet. Assignee and
// Status are newer columns and may be absent from older exports.
const (
	colDate     = "Date"
	colTicket   = "Ticket"
	colName     = "Name"
	colService  = "CloudStack/Service"
	colDuration = "Duration (in minutes)"
	colCause    = "Cause"
	colSolution = "Solution"
	colAssignee = "Assignee"
	colStatus   = "Status"
	colSeverity = "Severity"
)

// Reader loads outage records from the ledger CSV export.
type Reader struct {
	logger *zap.Logger
	stats  *observability.RunStats
}

// NewReader constructs the reader.
func NewReader(logger *zap.Logger, stats *observability.RunStats) *Reader {
	return &Reader{logger: logger, stats: stats}
}

// ReadFile reads every well-formed record from the CSV at path. An
// unreadable file is fatal to the run; an unparsable row is logged and
// skipped.
func (r *Reader) ReadFile(path string) ([]domain.OutageRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, util.NewSourceReadError(path, err)
	}
	defer f.Close()

	records, err := r.Read(f)
	if err != nil {
		return nil, util.NewSourceReadError(path, err)
	}
	return records, nil
}

// Read parses the ledger from src, preserving row order.
func (r *Reader) Read(src io.Reader) ([]domain.OutageRecord, error) {
	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("ledger is empty")
		}
		return nil, err
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	if _, ok := cols[colDate]; !ok {
		return nil, errors.New("ledger has no Date column")
	}

	cell := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var records []domain.OutageRecord
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			r.logger.Warn("skipping malformed row", zap.Error(err))
			r.stats.Inc(observability.StatRecordsSkipped)
			continue
		}

		date, err := domain.ParseLedgerDate(cell(row, colDate))
		if err != nil {
			r.logger.Warn("skipping row with invalid date", zap.Error(err))
			r.stats.Inc(observability.StatRecordsSkipped)
			continue
		}

		rec := domain.OutageRecord{
			Date:            date,
			TicketRef:       cell(row, colTicket),
			ServiceName:     cell(row, colName),
			Category:        cell(row, colService),
			DurationMinutes: ParseDurationMinutes(cell(row, colDuration)),
			Cause:           cell(row, colCause),
			Solution:        cell(row, colSolution),
			Assignee:        cell(row, colAssignee),
			Status:          cell(row, colStatus),
			Severity:        domain.Severity(cell(row, colSeverity)),
		}
		// Older exports carry one combined stack/service column.
		if rec.ServiceName == "" {
			rec.ServiceName = rec.Category
			rec.Category = ""
		}

		records = append(records, rec)
		r.stats.Inc(observability.StatRecordsRead)
	}

	return records, nil
}

package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/optipix/imagesync/internal/common"
	"github.com/optipix/imagesync/internal/ledger"
	"github.com/optipix/imagesync/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for
// job reports.
type Service struct {
	jobsRepo  repository.SyncJobRepository
	itemsRepo repository.JobItemRepository
	ledger    *ledger.Service
	logger    *slog.Logger
}

func NewService(jobsRepo repository.SyncJobRepository, itemsRepo repository.JobItemRepository, led *ledger.Service, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{jobsRepo: jobsRepo, itemsRepo: itemsRepo, ledger: led, logger: logger}
}

// ExportJobReportXLSX returns an XLSX workbook (as bytes) with one row per
// item of the job, plus a summary block with the job's counters and token
// spend.
func (s *Service) ExportJobReportXLSX(ctx context.Context, jobID uuid.UUID) ([]byte, error) {
	start := time.Now()

	job, err := s.jobsRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, common.WrapError(err, "query job")
	}
	items, err := s.itemsRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, common.WrapError(err, "query items")
	}

	f := excelize.NewFile()
	const sheet = "Job Report"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	// summary block
	write(1, 1, "Job")
	write(2, 1, job.Name)
	write(1, 2, "Store")
	write(2, 2, job.StoreDomain)
	write(1, 3, "Status")
	write(2, 3, string(job.Status))
	write(1, 4, "Images")
	write(2, 4, job.ImageCount)
	write(1, 5, "Processed / Pushed / Failed")
	write(2, 5, fmt.Sprintf("%d / %d / %d", job.ProcessedCount, job.PushedCount, job.FailedCount))
	write(1, 6, "Tokens Used")
	write(2, 6, job.TokensUsed)
	if res, err := s.ledger.OpenReservationForJob(ctx, jobID); err == nil {
		write(1, 7, "Tokens Still Held")
		write(2, 7, res.Remaining())
	}

	headers := []string{
		"Product ID",
		"Image ID",
		"Status",
		"Original URL",
		"Optimized URL",
		"Push Attempts",
		"Last Error",
		"Pushed At",
	}
	const headerRow = 9
	for i, h := range headers {
		write(i+1, headerRow, h)
	}

	row := headerRow + 1
	for _, it := range items {
		write(1, row, it.ExternalProductID)
		write(2, row, it.ExternalImageID)
		write(3, row, string(it.Status))
		write(4, row, it.OriginalURL)
		if it.OptimizedURL != nil {
			write(5, row, *it.OptimizedURL)
		}
		write(6, row, it.PushAttempts)
		if it.LastPushError != nil {
			write(7, row, truncate(*it.LastPushError, 140))
		}
		if it.PushedAt != nil {
			write(8, row, it.PushedAt.Format("2006-01-02 15:04:05"))
		}
		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "B", 20)
	_ = f.SetColWidth(sheet, "C", "C", 12)
	_ = f.SetColWidth(sheet, "D", "E", 48)
	_ = f.SetColWidth(sheet, "F", "F", 14)
	_ = f.SetColWidth(sheet, "G", "G", 48)
	_ = f.SetColWidth(sheet, "H", "H", 20)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, common.WrapError(err, "xlsx write")
	}

	s.logger.Info("export.xlsx.ok",
		"job_id", jobID.String(),
		"rows", len(items),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// truncate caps s at n runes, cutting on rune boundaries so multi-byte
// text never exports as invalid UTF-8.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

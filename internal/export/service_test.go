package export

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/optipix/imagesync/constants"
	"github.com/optipix/imagesync/internal/entity"
	"github.com/optipix/imagesync/internal/ledger"
	"github.com/optipix/imagesync/internal/repository"
	"github.com/optipix/imagesync/internal/repository/repositorytest"
)

func TestTruncateRuneBoundary(t *testing.T) {
	assert.Equal(t, "héllo", truncate("héllo", 5))
	assert.Equal(t, "héll…", truncate("héllower", 5))
	assert.Equal(t, "", truncate("anything", 0))

	out := truncate(strings.Repeat("日", 300), 140)
	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, 140, utf8.RuneCountInString(out))
	assert.True(t, strings.HasSuffix(out, "…"))
}

func TestExportReportKeepsErrorsValidUTF8(t *testing.T) {
	items := repositorytest.NewMemItemRepo()
	jobsRepo := repositorytest.NewMemJobRepo(items)
	led := ledger.NewService(repositorytest.NewMemLedgerRepo(), nil)
	svc := NewService(jobsRepo, items, led, nil)

	ctx := context.Background()
	jobID := uuid.New()
	_, err := jobsRepo.Create(ctx, repository.CreateJobParams{
		ID:           jobID,
		OwnerID:      uuid.New(),
		StoreID:      uuid.New(),
		Name:         "summer-batch",
		StoreDomain:  "shop-a.example.com",
		Folder:       "summer",
		TriggerType:  constants.TriggerManual,
		PresetType:   constants.PresetCustom,
		ProductCount: 1,
		MaxRetries:   3,
		ExpiresAt:    time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	longErr := strings.Repeat("超時エラー", 60) // 300 runes, all multi-byte
	items.Add(&entity.JobItem{
		ID:                uuid.New(),
		JobID:             jobID,
		ExternalProductID: "prod-1",
		ExternalImageID:   "img-1",
		OriginalURL:       "https://cdn.example.com/img-1.jpg",
		Status:            constants.ItemStatusFailed,
		PushAttempts:      2,
		LastPushError:     &longErr,
	})

	content, err := svc.ExportJobReportXLSX(ctx, jobID)
	require.NoError(t, err)
	require.NotEmpty(t, content)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	const sheet = "Job Report"
	name, err := f.GetCellValue(sheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "summer-batch", name)

	header, err := f.GetCellValue(sheet, "G9")
	require.NoError(t, err)
	assert.Equal(t, "Last Error", header)

	cell, err := f.GetCellValue(sheet, "G10")
	require.NoError(t, err)
	assert.True(t, utf8.ValidString(cell))
	assert.Equal(t, 140, utf8.RuneCountInString(cell))
	assert.True(t, strings.HasSuffix(cell, "…"))
}

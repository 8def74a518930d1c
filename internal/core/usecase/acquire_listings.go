package usecase

import (
	"context"
	"fmt"

	"github.com/aravasio/open-remax/internal/contextkeys"
	"github.com/aravasio/open-remax/internal/core/domain"
	"github.com/aravasio/open-remax/internal/core/port"
	usecases_port "github.com/aravasio/open-remax/internal/core/port/usecases"

	"github.com/google/uuid"
)

// AcquireListingsUseCase drives one acquisition run: discover slugs,
// fetch details, persist the previously-unseen records and report the
// outcome. It owns sequencing and reporting, nothing else.
type AcquireListingsUseCase struct {
	discoverUC  usecases_port.DiscoverSlugsPort
	detailsUC   usecases_port.FetchDetailsPort
	storageRepo port.ListingStoragePort
}

func NewAcquireListingsUseCase(
	discover usecases_port.DiscoverSlugsPort,
	details usecases_port.FetchDetailsPort,
	storage port.ListingStoragePort,
) *AcquireListingsUseCase {
	return &AcquireListingsUseCase{
		discoverUC:  discover,
		detailsUC:   details,
		storageRepo: storage,
	}
}

// Execute runs the pipeline to completion. Discovery and storage errors
// abort the run; per-item fetch failures are already absorbed by the
// detail stage and only show up in the report. The multi-row insert is
// one transaction, so an aborted run never leaves a partial batch behind.
func (uc *AcquireListingsUseCase) Execute(ctx context.Context, runID uuid.UUID) (*domain.AcquisitionReport, error) {
	baseLogger := contextkeys.LoggerFromContext(ctx)
	ucLogger := baseLogger.WithFields(port.Fields{
		"use_case": "AcquireListings",
		"run_id":   runID.String(),
	})
	ctx = contextkeys.ContextWithLogger(ctx, ucLogger)

	hasData, err := uc.storageRepo.ContainsData(ctx)
	if err != nil {
		ucLogger.Error("Failed to check listing table state", err, nil)
		return nil, fmt.Errorf("use case: checking storage state: %w", err)
	}
	ucLogger.Info("Storage state checked", port.Fields{"contains_data": hasData})

	slugs, err := uc.discoverUC.Execute(ctx)
	if err != nil {
		return nil, fmt.Errorf("use case: slug discovery: %w", err)
	}

	details, skipped, err := uc.detailsUC.Execute(ctx, slugs)
	if err != nil {
		return nil, fmt.Errorf("use case: detail fetch: %w", err)
	}

	inserted, err := uc.storageRepo.SaveNew(ctx, details)
	if err != nil {
		ucLogger.Error("Failed to persist listings", err, nil)
		return nil, fmt.Errorf("use case: persisting listings: %w", err)
	}

	report := &domain.AcquisitionReport{
		RunID:           runID,
		SlugsDiscovered: len(slugs),
		DetailsFetched:  len(details),
		NewListings:     inserted,
		Skipped:         skipped,
	}

	ucLogger.Info("Acquisition run finished", port.Fields{
		"slugs_discovered": report.SlugsDiscovered,
		"details_fetched":  report.DetailsFetched,
		"new_listings":     report.NewListings,
		"skipped":          len(report.Skipped),
	})
	return report, nil
}

package usecases_port

import (
	"context"

	"github.com/aravasio/open-remax/internal/core/domain"

	"github.com/google/uuid"
)

type AcquireListingsPort interface {
	Execute(ctx context.Context, runID uuid.UUID) (*domain.AcquisitionReport, error)
}

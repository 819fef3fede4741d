package service

import (
	"context"
	"errors"

	"wallet_export/internal/app/port"
	"wallet_export/internal/domain/entity"
	"wallet_export/internal/pkg/utils"

	"golang.org/x/sync/errgroup"
)

// Export stages reported in entity.ExportError.
const (
	StageValidate = "validate"
	StageBuild    = "build"
	StageWrite    = "write"
)

// Exporter builds and writes snapshots for many wallets, isolating failures per wallet.
type Exporter struct {
	builder       port.SnapshotBuilder
	logger        port.Logger
	maxConcurrent int
}

// NewExporter creates an Exporter running at most maxConcurrent wallets at once.
func NewExporter(builder port.SnapshotBuilder, logger port.Logger, maxConcurrent int) *Exporter {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &Exporter{builder: builder, logger: logger, maxConcurrent: maxConcurrent}
}

// ExportAll exports every wallet to sink and returns the number written together with
// one ExportError per failed wallet, in input order.
func (e *Exporter) ExportAll(ctx context.Context, wallets []entity.Wallet, sink port.SnapshotSink) (int, []entity.ExportError) {
	failures := make([]*entity.ExportError, len(wallets))

	var g errgroup.Group
	g.SetLimit(e.maxConcurrent)

	for i, w := range wallets {
		g.Go(func() error {
			failures[i] = e.exportOne(ctx, w.Address, sink)
			return nil
		})
	}
	_ = g.Wait()

	written := 0
	exportErrors := make([]entity.ExportError, 0)
	for _, f := range failures {
		if f == nil {
			written++
			continue
		}
		exportErrors = append(exportErrors, *f)
	}

	e.logger.Info("Bulk export finished", "wallets", len(wallets), "written", written, "failed", len(exportErrors))
	return written, exportErrors
}

func (e *Exporter) exportOne(ctx context.Context, raw string, sink port.SnapshotSink) *entity.ExportError {
	address, err := utils.CanonicalAddress(raw)
	if err != nil {
		return e.failure(raw, StageValidate, err)
	}

	snapshot, err := e.builder.BuildSnapshot(ctx, address)
	if err != nil {
		stage := StageBuild
		if errors.Is(err, entity.ErrValidation) {
			stage = StageValidate
		}
		return e.failure(address, stage, err)
	}

	if err := sink.Write(snapshot); err != nil {
		return e.failure(address, StageWrite, err)
	}
	return nil
}

func (e *Exporter) failure(address, stage string, err error) *entity.ExportError {
	e.logger.Warn("Wallet export failed", "address", address, "stage", stage, "error", err)
	return &entity.ExportError{WalletAddress: address, Stage: stage, Message: err.Error()}
}

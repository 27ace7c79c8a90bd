package usecase

import (
	"bufio"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/iho/fraudmini/internal/domain"
)

// IngestConfig holds the dependencies of IngestUseCase.
type IngestConfig struct {
	Objects ObjectStore
	// RefinedBucket receives receipts and relocated files.
	RefinedBucket string
	Queue         MessageQueue
	Logger        zerolog.Logger
	Recorder      IngestRecorder
}

// IngestUseCase validates uploaded transaction files and fans their rows out
// to the downstream queue.
type IngestUseCase struct {
	objects       ObjectStore
	refinedBucket string
	queue         MessageQueue
	logger        zerolog.Logger
	recorder      IngestRecorder
}

// NewIngestUseCase creates a new IngestUseCase.
func NewIngestUseCase(cfg IngestConfig) *IngestUseCase {
	if cfg.Recorder == nil {
		cfg.Recorder = noopRecorder{}
	}

	return &IngestUseCase{
		objects:       cfg.Objects,
		refinedBucket: cfg.RefinedBucket,
		queue:         cfg.Queue,
		logger:        cfg.Logger,
		recorder:      cfg.Recorder,
	}
}

// HandleNotifications processes each referenced file in order. A failing file
// never prevents the remaining files from being processed.
func (uc *IngestUseCase) HandleNotifications(ctx context.Context, refs []domain.FileRef) []domain.FileOutcome {
	outcomes := make([]domain.FileOutcome, 0, len(refs))
	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			uc.logger.Warn().Err(err).Int("remaining", len(refs)-len(outcomes)).Msg("stopping notification batch")
			break
		}
		outcomes = append(outcomes, uc.ProcessFile(ctx, ref))
	}
	return outcomes
}

// ProcessFile dispatches every row of one file. Either all rows are
// dispatched and the file moves to processed/, or the first bad row stops the
// file and it moves to failed/. Rows sent before the failure stay sent.
func (uc *IngestUseCase) ProcessFile(ctx context.Context, ref domain.FileRef) domain.FileOutcome {
	logger := uc.logger.With().Str("bucket", ref.Bucket).Str("key", ref.Key).Logger()

	if ref.InQuarantineOrDone() {
		logger.Debug().Msg("skipping file already in processed or failed namespace")
		uc.recorder.RecordFile(domain.FileSkipped)
		return domain.FileOutcome{File: ref, Status: domain.FileSkipped}
	}

	rows, err := uc.dispatchRows(ctx, ref)
	if err != nil {
		outcome := uc.quarantine(ctx, ref, rows, err)
		logger.Warn().
			Err(err).
			Int("dispatched", len(rows)).
			AnErr("relocation_error", outcome.RelocationErr).
			Msg("file quarantined")
		uc.recorder.RecordFile(domain.FileFailed)
		return outcome
	}

	outcome := domain.FileOutcome{
		File:       ref,
		Status:     domain.FileProcessed,
		ReceiptKey: ref.ReceiptKey(domain.NamespaceProcessed),
		Rows:       rows,
	}

	receipt, err := json.Marshal(domain.SuccessReceipt{File: ref.Key, Rows: rows})
	if err == nil {
		err = uc.relocate(ctx, ref, domain.NamespaceProcessed, receipt)
	}
	outcome.RelocationErr = err

	if err != nil {
		logger.Error().Err(err).Int("dispatched", len(rows)).Msg("file dispatched but not relocated")
	} else {
		logger.Info().Int("dispatched", len(rows)).Msg("file processed")
	}
	uc.recorder.RecordFile(domain.FileProcessed)

	return outcome
}

// dispatchRows returns the rows sent before any error.
func (uc *IngestUseCase) dispatchRows(ctx context.Context, ref domain.FileRef) ([]domain.ReceiptRow, error) {
	body, err := uc.objects.Get(ctx, ref.Bucket, ref.Key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", ref, err)
	}
	defer body.Close()

	reader := csv.NewReader(skipBOM(body))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []domain.ReceiptRow{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	rows := []domain.ReceiptRow{}
	for row := 1; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return rows, fmt.Errorf("read row %d: %w", row, err)
		}

		parsed, err := domain.ParseRow(row, header, record)
		if err != nil {
			return rows, err
		}

		payload, err := json.Marshal(parsed)
		if err != nil {
			return rows, fmt.Errorf("encode row %d: %w", row, err)
		}

		if err := uc.queue.Send(ctx, payload); err != nil {
			return rows, fmt.Errorf("dispatch row %d: %w", row, err)
		}

		rows = append(rows, domain.ReceiptRow{Row: row, TransactionID: parsed.TransactionID})
		uc.recorder.RecordRowDispatched()
	}
}

func (uc *IngestUseCase) quarantine(ctx context.Context, ref domain.FileRef, rows []domain.ReceiptRow, cause error) domain.FileOutcome {
	outcome := domain.FileOutcome{
		File:       ref,
		Status:     domain.FileFailed,
		ReceiptKey: ref.ReceiptKey(domain.NamespaceFailed),
		Rows:       rows,
		Err:        cause,
	}

	receipt, err := json.Marshal(domain.FailureReceipt{File: ref.Key, Error: cause.Error()})
	if err == nil {
		err = uc.relocate(ctx, ref, domain.NamespaceFailed, receipt)
	}
	outcome.RelocationErr = err

	return outcome
}

// relocate writes the receipt, then copies the file into namespace and
// deletes the original. The steps are not atomic; receipt keys are
// deterministic so a retry overwrites rather than duplicates.
func (uc *IngestUseCase) relocate(ctx context.Context, ref domain.FileRef, namespace string, receipt []byte) error {
	receiptKey := ref.ReceiptKey(namespace)
	if err := uc.objects.Put(ctx, uc.refinedBucket, receiptKey, receipt, "application/json"); err != nil {
		return fmt.Errorf("write receipt %s: %w", receiptKey, err)
	}

	dstKey := ref.RelocatedKey(namespace)
	if err := uc.objects.Copy(ctx, ref.Bucket, ref.Key, uc.refinedBucket, dstKey); err != nil {
		return fmt.Errorf("copy to %s: %w", dstKey, err)
	}

	if err := uc.objects.Delete(ctx, ref.Bucket, ref.Key); err != nil {
		return fmt.Errorf("delete original: %w", err)
	}

	return nil
}

const utf8BOM = "\ufeff"

func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && string(prefix) == utf8BOM {
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}

// FileOutcomeError summarises a failed outcome for logs and responses.
func FileOutcomeError(o domain.FileOutcome) string {
	var parts []string
	if o.Err != nil {
		parts = append(parts, o.Err.Error())
	}
	if o.RelocationErr != nil {
		parts = append(parts, "relocation: "+o.RelocationErr.Error())
	}
	return strings.Join(parts, "; ")
}

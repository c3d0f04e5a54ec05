package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"funilaria_ops/internal/domain/entities"
	"funilaria_ops/internal/domain/tax"
	"funilaria_ops/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var (
	ErrInvoiceNotFound             = errors.New("invoice not found")
	ErrInvalidInvoiceID            = errors.New("invalid invoice id")
	ErrInvalidLaborTotal           = errors.New("invalid labor total")
	ErrInvoiceNotIssued            = errors.New("invoice not issued")
	ErrInvalidInvoiceTransition    = errors.New("invalid invoice status transition")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
)

// CreateInvoiceCommand carries the billing inputs for a job. PartsTotal is not
// an input: it is always derived from the job's usage log, i.e. from committed
// issuances only.
type CreateInvoiceCommand struct {
	JobID      string
	LaborTotal string
	TaxCode    string
}

// IInvoiceUseCase encapsulates invoicing and settlement for a job.

type IInvoiceUseCase interface {
	CreateFromJob(ctx context.Context, cmd CreateInvoiceCommand) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Invoice, error)
	Issue(ctx context.Context, id string) (entities.Invoice, error)
	Pay(ctx context.Context, id string, providerPayload json.RawMessage) (entities.Invoice, error)
}

type InvoiceUseCase struct {
	repo           interfaces.IInvoiceRepository
	jobRepo        interfaces.IJobRepository
	gateway        interfaces.IPaymentGateway
	taxes          tax.Table
	defaultTaxCode string
	log            zerolog.Logger
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(
	repo interfaces.IInvoiceRepository,
	jobRepo interfaces.IJobRepository,
	gateway interfaces.IPaymentGateway,
	taxes tax.Table,
	defaultTaxCode string,
	log zerolog.Logger,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		repo:           repo,
		jobRepo:        jobRepo,
		gateway:        gateway,
		taxes:          taxes,
		defaultTaxCode: defaultTaxCode,
		log:            log,
	}
}

func (u *InvoiceUseCase) CreateFromJob(ctx context.Context, cmd CreateInvoiceCommand) (entities.Invoice, error) {
	jobID := strings.TrimSpace(cmd.JobID)
	if jobID == "" {
		return entities.Invoice{}, ErrInvalidJobID
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if job.ID == "" || job.IsDeleted {
		return entities.Invoice{}, ErrJobNotFound
	}

	labor := decimal.Zero
	if strings.TrimSpace(cmd.LaborTotal) != "" {
		labor, err = decimal.NewFromString(cmd.LaborTotal)
		if err != nil || labor.IsNegative() {
			return entities.Invoice{}, ErrInvalidLaborTotal
		}
	}

	taxCode := strings.TrimSpace(cmd.TaxCode)
	if taxCode == "" {
		taxCode = u.defaultTaxCode
	}
	rate, err := u.taxes.Lookup(taxCode)
	if err != nil {
		return entities.Invoice{}, err
	}

	parts := decimal.Zero
	for _, usage := range job.UsageLog {
		parts = parts.Add(usage.UnitPrice.Mul(decimal.NewFromFloat(usage.Qty)))
	}

	subtotal := parts.Add(labor)
	taxAmount := rate.Apply(subtotal)

	now := time.Now().UTC()
	inv := entities.Invoice{
		ID:         uuid.NewString(),
		JobID:      job.ID,
		Number:     fmt.Sprintf("INV-%s", now.Format("20060102-150405")),
		Status:     entities.InvoiceStatusDraft,
		PartsTotal: parts,
		LaborTotal: labor,
		TaxCode:    rate.Code,
		TaxAmount:  taxAmount,
		GrandTotal: subtotal.Add(taxAmount),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return u.repo.Create(ctx, inv)
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	return u.load(ctx, id)
}

func (u *InvoiceUseCase) ListByJobID(ctx context.Context, jobID string) ([]entities.Invoice, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}
	return u.repo.ListByJobID(ctx, jobID)
}

func (u *InvoiceUseCase) Issue(ctx context.Context, id string) (entities.Invoice, error) {
	inv, err := u.load(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.Status != entities.InvoiceStatusDraft {
		return entities.Invoice{}, ErrInvalidInvoiceTransition
	}
	inv.Status = entities.InvoiceStatusIssued
	inv.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, inv)
}

// Pay settles an issued invoice through the payment gateway. The charge amount
// is always the stored grand total; the caller's payload only contributes
// payment-method details.
func (u *InvoiceUseCase) Pay(ctx context.Context, id string, providerPayload json.RawMessage) (entities.Invoice, error) {
	inv, err := u.load(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.Status != entities.InvoiceStatusIssued {
		return entities.Invoice{}, ErrInvoiceNotIssued
	}
	if u.gateway == nil {
		return entities.Invoice{}, ErrPaymentGatewayNotConfigured
	}

	payload := map[string]any{}
	if len(providerPayload) > 0 && json.Valid(providerPayload) {
		_ = json.Unmarshal(providerPayload, &payload)
	}
	if _, ok := payload["external_reference"]; !ok {
		payload["external_reference"] = inv.ID
	}
	if _, ok := payload["description"]; !ok {
		payload["description"] = fmt.Sprintf("Invoice %s", inv.Number)
	}
	// The source of truth for the amount is the invoice in DB.
	payload["transaction_amount"], _ = inv.GrandTotal.Float64()

	body, err := json.Marshal(payload)
	if err != nil {
		return entities.Invoice{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, body)
	if err != nil {
		u.log.Warn().Err(err).Str("invoice_id", inv.ID).Msg("payment gateway failed")
		return entities.Invoice{}, err
	}
	u.log.Info().
		Str("invoice_id", inv.ID).
		Str("provider_payment_id", providerPaymentID).
		Str("provider_status", providerStatus).
		Msg("invoice settled")

	inv.Status = entities.InvoiceStatusPaid
	inv.ProviderPaymentID = providerPaymentID
	inv.ProviderPayloadRaw = providerResp
	inv.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, inv)
}

func (u *InvoiceUseCase) load(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"funilaria_ops/internal/domain/entities"
	"funilaria_ops/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var (
	ErrItemNotFound       = errors.New("inventory item not found")
	ErrInvalidPrice       = errors.New("invalid price")
	ErrInvalidItemID      = errors.New("invalid inventory item id")
	ErrInvalidItemName    = errors.New("invalid inventory item name")
	ErrInvalidCategory    = errors.New("invalid inventory category")
	ErrInvalidAdjustment  = errors.New("invalid stock adjustment")
	ErrStockWouldGoBelow0 = errors.New("adjustment would make stock negative")
)

// CreateItemCommand carries the fields for registering a master-stock item.
type CreateItemCommand struct {
	Code      string
	Name      string
	Unit      string
	Category  entities.ItemCategory
	OnHand    float64
	BuyPrice  string
	SellPrice string
}

// IInventoryUseCase exposes master-stock operations.
//
// Readiness boards never mutate stock; the only quantity mutations here are
// manual adjustments, and those go through the repository's atomic increment.

type IInventoryUseCase interface {
	Create(ctx context.Context, cmd CreateItemCommand) (entities.InventoryItem, error)
	GetByID(ctx context.Context, id string) (entities.InventoryItem, error)
	List(ctx context.Context, category string) ([]entities.InventoryItem, error)
	Adjust(ctx context.Context, id string, delta float64, reason string) (entities.InventoryItem, error)
}

type InventoryUseCase struct {
	repo interfaces.IInventoryRepository
	log  zerolog.Logger
}

var _ IInventoryUseCase = (*InventoryUseCase)(nil)

func NewInventoryUseCase(repo interfaces.IInventoryRepository, log zerolog.Logger) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, log: log}
}

func (u *InventoryUseCase) Create(ctx context.Context, cmd CreateItemCommand) (entities.InventoryItem, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return entities.InventoryItem{}, ErrInvalidItemName
	}
	if cmd.Category != entities.ItemCategorySparepart && cmd.Category != entities.ItemCategoryMaterial {
		return entities.InventoryItem{}, ErrInvalidCategory
	}
	if cmd.OnHand < 0 {
		return entities.InventoryItem{}, ErrInvalidAdjustment
	}

	buy, sell, err := parsePrices(cmd.BuyPrice, cmd.SellPrice)
	if err != nil {
		return entities.InventoryItem{}, err
	}

	now := time.Now().UTC()
	it := entities.InventoryItem{
		ID:        uuid.NewString(),
		Code:      strings.TrimSpace(cmd.Code),
		Name:      name,
		Unit:      strings.TrimSpace(cmd.Unit),
		Category:  cmd.Category,
		OnHand:    cmd.OnHand,
		BuyPrice:  buy,
		SellPrice: sell,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, it)
}

func (u *InventoryUseCase) GetByID(ctx context.Context, id string) (entities.InventoryItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InventoryItem{}, ErrInvalidItemID
	}
	it, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.InventoryItem{}, err
	}
	if it.ID == "" {
		return entities.InventoryItem{}, ErrItemNotFound
	}
	return it, nil
}

func (u *InventoryUseCase) List(ctx context.Context, category string) ([]entities.InventoryItem, error) {
	switch entities.ItemCategory(category) {
	case entities.ItemCategorySparepart, entities.ItemCategoryMaterial:
		return u.repo.ListByCategory(ctx, entities.ItemCategory(category))
	case "":
		return u.repo.List(ctx)
	default:
		return nil, ErrInvalidCategory
	}
}

// Adjust applies a signed manual stock correction. The repository performs the
// increment conditionally so a concurrent issuance cannot race it below zero.
func (u *InventoryUseCase) Adjust(ctx context.Context, id string, delta float64, reason string) (entities.InventoryItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InventoryItem{}, ErrInvalidItemID
	}
	if delta == 0 {
		return entities.InventoryItem{}, ErrInvalidAdjustment
	}

	it, err := u.repo.AdjustOnHand(ctx, id, delta)
	if err != nil {
		if errors.Is(err, interfaces.ErrInsufficientStock) {
			return entities.InventoryItem{}, ErrStockWouldGoBelow0
		}
		return entities.InventoryItem{}, err
	}
	if it.ID == "" {
		return entities.InventoryItem{}, ErrItemNotFound
	}

	u.log.Info().
		Str("item_id", id).
		Float64("delta", delta).
		Float64("on_hand", it.OnHand).
		Str("reason", strings.TrimSpace(reason)).
		Msg("manual stock adjustment")
	return it, nil
}

func parsePrices(buy, sell string) (decimal.Decimal, decimal.Decimal, error) {
	parse := func(s string) (decimal.Decimal, error) {
		s = strings.TrimSpace(s)
		if s == "" {
			return decimal.Zero, nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil || d.IsNegative() {
			return decimal.Decimal{}, ErrInvalidPrice
		}
		return d, nil
	}
	b, err := parse(buy)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, err
	}
	s, err := parse(sell)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, err
	}
	return b, s, nil
}

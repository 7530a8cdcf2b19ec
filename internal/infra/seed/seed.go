// Package seed loads a catalog description from YAML into a storage backend.
// Records that already exist (same category slug, same product SKU, same
// slot window) are left untouched, so a file can be applied repeatedly.
package seed

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"click-collect/internal/domain/catalog"
	"click-collect/internal/domain/slot"
	"click-collect/internal/infra"
	"click-collect/internal/pkg/clock"
	"click-collect/internal/pkg/ptr"
	"click-collect/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type File struct {
	Categories  []Category `yaml:"categories"`
	PickupSlots Slots      `yaml:"pickupSlots"`
}

type Category struct {
	Name        string    `yaml:"name"`
	Slug        string    `yaml:"slug"`
	ImageURL    string    `yaml:"imageUrl"`
	Description string    `yaml:"description"`
	Products    []Product `yaml:"products"`
}

type Product struct {
	SKU          string          `yaml:"sku"`
	Name         string          `yaml:"name"`
	Description  string          `yaml:"description"`
	Price        decimal.Decimal `yaml:"price"`
	Images       []string        `yaml:"images"`
	Stock        int             `yaml:"stock"`
	IsPerishable bool            `yaml:"perishable"`
}

// Slots generates the same windows for each of the next Days days, today included.
type Slots struct {
	Days    int      `yaml:"days"`
	Windows []Window `yaml:"windows"`
}

type Window struct {
	From     string `yaml:"from"`
	To       string `yaml:"to"`
	Capacity int    `yaml:"capacity"`
}

type Result struct {
	Categories int
	Products   int
	Slots      int
	Skipped    int
}

func Parse(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode seed file: %w", err)
	}
	return &f, nil
}

// Apply writes f through uow. Each record gets its own transaction; the first
// error other than an already-existing record stops the run.
func Apply(ctx context.Context, uow shared.UnitOfWork, clk clock.Clock, f *File) (Result, error) {
	var res Result

	for _, c := range f.Categories {
		categoryID, created, err := ensureCategory(ctx, uow, c)
		if err != nil {
			return res, err
		}
		if created {
			res.Categories++
		} else {
			res.Skipped++
		}

		for _, p := range c.Products {
			created, err := createProduct(ctx, uow, clk, categoryID, p)
			if err != nil {
				return res, err
			}
			if created {
				res.Products++
			} else {
				res.Skipped++
			}
		}
	}

	today := clk.Now()
	for d := 0; d < f.PickupSlots.Days; d++ {
		date := today.AddDate(0, 0, d).Format(slot.DateLayout)
		created, skipped, err := ensureSlots(ctx, uow, date, f.PickupSlots.Windows)
		if err != nil {
			return res, err
		}
		res.Slots += created
		res.Skipped += skipped
	}

	slog.Info("seed applied",
		"categories", res.Categories,
		"products", res.Products,
		"slots", res.Slots,
		"skipped", res.Skipped,
	)
	return res, nil
}

func ensureCategory(ctx context.Context, uow shared.UnitOfWork, c Category) (id uuid.UUID, created bool, err error) {
	existing, err := uow.Reads().Categories().FindBySlug(ctx, c.Slug)
	if err == nil {
		return existing.ID(), false, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return id, false, err
	}

	cat, err := catalog.NewCategory(c.Name, c.Slug, ptr.NonEmpty(c.ImageURL), ptr.NonEmpty(c.Description))
	if err != nil {
		return id, false, fmt.Errorf("category %q: %w", c.Slug, err)
	}
	err = uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Categories().Create(ctx, cat)
	})
	if err != nil {
		return id, false, fmt.Errorf("category %q: %w", c.Slug, err)
	}
	return cat.ID(), true, nil
}

func createProduct(ctx context.Context, uow shared.UnitOfWork, clk clock.Clock, categoryID uuid.UUID, p Product) (bool, error) {
	prod, err := catalog.NewProduct(catalog.NewProductParams{
		SKU:          p.SKU,
		Name:         p.Name,
		Description:  ptr.NonEmpty(p.Description),
		Price:        p.Price,
		Images:       p.Images,
		Stock:        p.Stock,
		CategoryID:   categoryID,
		IsPerishable: p.IsPerishable,
	}, clk.Now())
	if err != nil {
		return false, fmt.Errorf("product %q: %w", p.SKU, err)
	}

	err = uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Products().Create(ctx, prod)
	})
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("product %q: %w", p.SKU, err)
	}
	return true, nil
}

func ensureSlots(ctx context.Context, uow shared.UnitOfWork, date string, windows []Window) (created, skipped int, err error) {
	err = uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, skipped = 0, 0
		existing, err := tx.Slots().ListActive(ctx, &date)
		if err != nil {
			return err
		}
		taken := make(map[string]bool, len(existing))
		for _, s := range existing {
			taken[s.TimeFrom()] = true
		}

		for _, w := range windows {
			if taken[w.From] {
				skipped++
				continue
			}
			s, err := slot.NewPickupSlot(date, w.From, w.To, w.Capacity)
			if err != nil {
				return fmt.Errorf("slot %s %s-%s: %w", date, w.From, w.To, err)
			}
			if err := tx.Slots().Create(ctx, s); err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return created, skipped, nil
}

package catalog

import (
	"regexp"
	"strings"

	"click-collect/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound = errs.Class("category not found", errs.ErrNotFound)
	ErrInvalidCategory  = errs.Class("invalid category", errs.ErrValidation)
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type Category struct {
	id           uuid.UUID
	name         string
	slug         string
	imageURL     *string
	description  *string
	productCount int
}

func NewCategory(name, slug string, imageURL, description *string) (*Category, error) {
	name = strings.TrimSpace(name)
	slug = strings.TrimSpace(slug)
	if name == "" || !slugRegex.MatchString(slug) {
		return nil, ErrInvalidCategory
	}
	return &Category{
		id:          uuid.New(),
		name:        name,
		slug:        slug,
		imageURL:    imageURL,
		description: description,
	}, nil
}

func ReconstructCategory(id uuid.UUID, name, slug string, imageURL, description *string, productCount int) *Category {
	return &Category{
		id:           id,
		name:         name,
		slug:         slug,
		imageURL:     imageURL,
		description:  description,
		productCount: productCount,
	}
}

func (c *Category) ID() uuid.UUID        { return c.id }
func (c *Category) Name() string         { return c.name }
func (c *Category) Slug() string         { return c.slug }
func (c *Category) ImageURL() *string    { return c.imageURL }
func (c *Category) Description() *string { return c.description }
func (c *Category) ProductCount() int    { return c.productCount }

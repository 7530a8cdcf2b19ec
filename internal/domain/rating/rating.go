package rating

import (
	"strings"
	"time"
	"unicode/utf8"

	"click-collect/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidScore   = errs.Class("rating must be between 1 and 5", errs.ErrValidation)
	ErrCommentTooLong = errs.Class("comment exceeds maximum length", errs.ErrValidation)
)

const (
	MinScore         = 1
	MaxScore         = 5
	MaxCommentLength = 1000
	PageSize         = 10
)

type Rating struct {
	id        uuid.UUID
	userID    uuid.UUID
	productID uuid.UUID
	score     int
	comment   *string
	createdAt time.Time
}

// NewRating trims the comment and treats a blank one as absent.
func NewRating(userID, productID uuid.UUID, score int, comment string, now time.Time) (*Rating, error) {
	if score < MinScore || score > MaxScore {
		return nil, ErrInvalidScore
	}
	comment = strings.TrimSpace(comment)
	if utf8.RuneCountInString(comment) > MaxCommentLength {
		return nil, ErrCommentTooLong
	}
	var c *string
	if comment != "" {
		c = &comment
	}
	return &Rating{
		id:        uuid.New(),
		userID:    userID,
		productID: productID,
		score:     score,
		comment:   c,
		createdAt: now,
	}, nil
}

func ReconstructRating(id, userID, productID uuid.UUID, score int, comment *string, createdAt time.Time) *Rating {
	return &Rating{id: id, userID: userID, productID: productID, score: score, comment: comment, createdAt: createdAt}
}

func (r *Rating) ID() uuid.UUID        { return r.id }
func (r *Rating) UserID() uuid.UUID    { return r.userID }
func (r *Rating) ProductID() uuid.UUID { return r.productID }
func (r *Rating) Score() int           { return r.score }
func (r *Rating) Comment() *string     { return r.comment }
func (r *Rating) CreatedAt() time.Time { return r.createdAt }

// Summary is the derived aggregate stored on a product.
type Summary struct {
	Average decimal.Decimal
	Count   int
}

// Summarize returns the arithmetic mean rounded to two places and the count.
func Summarize(scores []int) Summary {
	if len(scores) == 0 {
		return Summary{Average: decimal.Zero}
	}
	total := 0
	for _, s := range scores {
		total += s
	}
	return FromTotals(int64(total), len(scores))
}

// FromTotals builds a summary from a stored sum and count.
func FromTotals(sum int64, count int) Summary {
	if count == 0 {
		return Summary{Average: decimal.Zero}
	}
	avg := decimal.NewFromInt(sum).DivRound(decimal.NewFromInt(int64(count)), 2)
	return Summary{Average: avg, Count: count}
}

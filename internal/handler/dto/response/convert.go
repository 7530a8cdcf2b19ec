package response

import (
	"click-collect/internal/pkg/errs"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Money goes over the wire as a fixed two-decimal string.
var copyOption = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				d, ok := src.(decimal.Decimal)
				if !ok {
					return nil, errs.New("expected decimal value")
				}
				return d.StringFixed(2), nil
			},
		},
	},
}

// From copies a query view into the response type T.
func From[T any](view any) (*T, error) {
	var dst T
	if err := copier.CopyWithOption(&dst, view, copyOption); err != nil {
		return nil, errs.Wrap(err, "failed to build response")
	}
	return &dst, nil
}

// FromList is From for slices; it never returns nil so the body is [] rather than null.
func FromList[T any](views any) ([]*T, error) {
	dst := []*T{}
	if err := copier.CopyWithOption(&dst, views, copyOption); err != nil {
		return nil, errs.Wrap(err, "failed to build response")
	}
	if dst == nil {
		dst = []*T{}
	}
	return dst, nil
}

type MessageResponse struct {
	Message string `json:"message"`
}

type IDResponse struct {
	ID string `json:"id"`
}

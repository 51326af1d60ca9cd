package response

import (
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Money is always rendered with two decimal places.
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: "",
			Fn: func(src any) (any, error) {
				return src.(decimal.Decimal).StringFixed(2), nil
			},
		},
		{
			SrcType: &decimal.Decimal{},
			DstType: (*string)(nil),
			Fn: func(src any) (any, error) {
				d, _ := src.(*decimal.Decimal)
				if d == nil {
					return (*string)(nil), nil
				}
				s := d.StringFixed(2)
				return &s, nil
			},
		},
	},
}

func mapOne[T any, S any](src *S) *T {
	if src == nil {
		return nil
	}
	dst := new(T)
	// Field names and types are fixed at compile time; a failure here is a programming error.
	if err := copier.CopyWithOption(dst, src, copyOption); err != nil {
		panic(err)
	}
	return dst
}

func mapList[T any, S any](src []*S) []*T {
	out := make([]*T, 0, len(src))
	for _, s := range src {
		out = append(out, mapOne[T](s))
	}
	return out
}

type Page[T any] struct {
	Items      []*T    `json:"items"`
	NextCursor *string `json:"next_cursor,omitempty"`
}

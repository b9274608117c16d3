package structs_test

import (
	"testing"

	"vdeck_server/structs"

	"github.com/stretchr/testify/assert"
)

func TestDeriveTotal(t *testing.T) {
	cases := []struct {
		name  string
		items structs.OrderItems
		want  float64
	}{
		{
			name: "price times qty",
			items: structs.OrderItems{
				{"sku": "A", "price": 9.99, "qty": float64(2)},
			},
			want: 19.98,
		},
		{
			name: "quantity as alternate key",
			items: structs.OrderItems{
				{"sku": "A", "price": 4.0, "quantity": float64(3)},
			},
			want: 12.0,
		},
		{
			name: "missing qty defaults to one",
			items: structs.OrderItems{
				{"sku": "A", "price": 7.5},
			},
			want: 7.5,
		},
		{
			name: "items without price contribute nothing",
			items: structs.OrderItems{
				{"sku": "A"},
				{"sku": "B", "price": 2.0, "qty": float64(2)},
			},
			want: 4.0,
		},
		{
			name:  "empty items",
			items: structs.OrderItems{},
			want:  0,
		},
		{
			name: "non-numeric price ignored",
			items: structs.OrderItems{
				{"sku": "A", "price": "9.99", "qty": float64(2)},
			},
			want: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.items.DeriveTotal(), 0.001)
		})
	}
}

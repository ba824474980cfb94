package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"OrderID", "orderid"},
		{"order_id", "orderid"},
		{"order-id", "orderid"},
		{"orderId", "orderid"},
		{"ORDER ID", "orderid"},
		{"Outer$Inner", "outerinner"},
		{"price_cents", "pricecents"},
		{"order_item-ID", "orderitemid"},
		{"Größe", "größe"},
		{"", ""},
		{"A", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdent(tt.input))
		})
	}
}

func TestNormalizeTypeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"com.acme.OrderDTO", "order"},
		{"beanmap/internal/fixtures/store.Order", "order"},
		{"java.lang.IllegalStateException", "illegalstate"},
		{"MoneyConverter", "money"},
		{"com.acme.CustomerImpl", "customer"},
		{"java.util.Map$Entry", "entry"},
		{"java.util.List<com.acme.Line>", "list"},
		{"com.acme.Outer$", "outer"},

		// Should not strip if result would be empty
		{"java.lang.Exception", "exception"},

		// No suffix to strip
		{"java.util.HashMap", "hashmap"},
		{"Order", "order"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeTypeName(tt.input))
		})
	}
}

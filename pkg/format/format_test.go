package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	v := 1299.991
	assert.Equal(t, "$1299.99", Currency(&v))
	assert.Equal(t, "-", Currency(nil))
}

func TestDate(t *testing.T) {
	d := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-15", Date(&d))
	assert.Equal(t, "-", Date(nil))
	var zero time.Time
	assert.Equal(t, "-", Date(&zero))
}

func TestHours(t *testing.T) {
	v := 2.25
	assert.Equal(t, "2.2h", Hours(&v))
	assert.Equal(t, "-", Hours(nil))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "In Progress", Label("in-progress"))
	assert.Equal(t, "Active", Label("active"))
	assert.Equal(t, "It Equipment", Label("it-equipment"))
	assert.Equal(t, "-", Label(""))
}

func TestStockState(t *testing.T) {
	assert.Equal(t, "out-of-stock", StockState(0, 5))
	assert.Equal(t, "low", StockState(3, 5))
	assert.Equal(t, "ok", StockState(5, 5))
	assert.Equal(t, "ok", StockState(20, 5))
}

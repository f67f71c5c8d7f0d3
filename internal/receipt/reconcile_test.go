package receipt

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconcile(t *testing.T) {
	t.Run("metadata total kept as is", func(t *testing.T) {
		items := []Item{
			{Name: "хліб", Price: "10.00"},
			{Name: "молоко", Price: "20.00"},
		}
		total := reconcile(metadata{TotalPrice: "35.00"}, items)
		assert.Equal(t, "35.00", total)
	})

	t.Run("missing total derived from item sum", func(t *testing.T) {
		items := []Item{
			{Name: "a", Price: "1.00"},
			{Name: "b", Price: "2.50"},
		}
		total := reconcile(metadata{}, items)
		assert.Equal(t, "3.50", total)
	})

	t.Run("derived total formatted to two decimals", func(t *testing.T) {
		items := []Item{
			{Name: "a", Price: "1"},
			{Name: "b", Price: "2.5"},
		}
		total := reconcile(metadata{}, items)
		assert.Equal(t, "3.50", total)
	})

	t.Run("malformed price degrades to empty total", func(t *testing.T) {
		items := []Item{
			{Name: "a", Price: "1.00"},
			{Name: "b", Price: "not-a-number"},
		}
		total := reconcile(metadata{}, items)
		assert.Equal(t, "", total)
	})

	t.Run("no items and no metadata total stays empty", func(t *testing.T) {
		total := reconcile(metadata{}, []Item{})
		assert.Equal(t, "", total)
	})

	t.Run("lone item price forced to total", func(t *testing.T) {
		items := []Item{{Name: "bread", Price: "1.50"}}
		total := reconcile(metadata{TotalPrice: "2.00"}, items)
		assert.Equal(t, "2.00", total)
		assert.Equal(t, "2.00", items[0].Price)
	})

	t.Run("lone item price forced to derived total", func(t *testing.T) {
		items := []Item{{Name: "bread", Price: "1.5"}}
		total := reconcile(metadata{}, items)
		assert.Equal(t, "1.50", total)
		assert.Equal(t, "1.50", items[0].Price)
	})

	t.Run("multiple items keep their own prices", func(t *testing.T) {
		items := []Item{
			{Name: "a", Price: "1.00"},
			{Name: "b", Price: "2.00"},
		}
		reconcile(metadata{TotalPrice: "9.99"}, items)
		assert.Equal(t, "1.00", items[0].Price)
		assert.Equal(t, "2.00", items[1].Price)
	})
}

func TestReconcile_TouchedPriceShape(t *testing.T) {
	shape := regexp.MustCompile(`^\d+\.\d{2}$`)

	items := []Item{{Name: "товар", Price: "7"}}
	total := reconcile(metadata{}, items)

	assert.Regexp(t, shape, total)
	assert.Regexp(t, shape, items[0].Price)
}

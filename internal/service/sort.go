package service

import (
	"sort"

	"propertyhub/internal/model"
)

// sortProperties orders properties in place by key. Records that compare
// equal on the key fall back to newest first, then slug, so the order is
// total and pagination is reproducible.
func sortProperties(properties []model.Property, key model.SortKey) {
	primary := primaryComparator(model.ParseSortKey(string(key)))

	sort.SliceStable(properties, func(i, j int) bool {
		a, b := &properties[i], &properties[j]
		if c := primary(a, b); c != 0 {
			return c < 0
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.Slug < b.Slug
	})
}

// comparator returns a negative number when a sorts before b, positive when
// after, and zero when they tie
type comparator func(a, b *model.Property) int

func primaryComparator(key model.SortKey) comparator {
	switch key {
	case model.SortPriceAsc:
		return func(a, b *model.Property) int { return compareInt64(a.PriceAmount, b.PriceAmount) }
	case model.SortPriceDesc:
		return func(a, b *model.Property) int { return compareInt64(b.PriceAmount, a.PriceAmount) }
	case model.SortBedsDesc:
		return func(a, b *model.Property) int { return compareInt64(int64(b.Beds), int64(a.Beds)) }
	default:
		// newest first is the tie-break order itself
		return func(_, _ *model.Property) int { return 0 }
	}
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

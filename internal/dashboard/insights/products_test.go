package insights

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProductsFromPostsShape(t *testing.T) {
	posts := []Post{
		{UserID: 1, ID: 1, Title: "a very long product title that keeps going", Body: "body"},
		{UserID: 2, ID: 2, Title: "short", Body: "body"},
	}

	products := ProductsFromPosts(posts)
	require.Len(t, products, 2)

	require.Equal(t, "a very long product title that...", products[0].Name)
	require.Len(t, products[0].Name, maxProductNameLen+3)
	require.Equal(t, "Category 1", products[0].Category)
	require.Equal(t, "short", products[1].Name)
	require.Equal(t, "Category 2", products[1].Category)

	for _, p := range products {
		require.GreaterOrEqual(t, p.Sales, 100)
		require.GreaterOrEqual(t, p.Revenue, 1000.0)
		require.GreaterOrEqual(t, p.Rating, 3.0)
		require.LessOrEqual(t, p.Rating, 5.0)
		require.GreaterOrEqual(t, p.Stock, 10)
	}
}

func TestProductsFromPostsDeterministic(t *testing.T) {
	posts := postsFor(1, 3)
	first := ProductsFromPosts(posts)
	second := ProductsFromPosts(posts)
	require.Equal(t, first, second, "same posts must chart the same figures")
}

func TestTopPerformers(t *testing.T) {
	products := []ProductPerformance{
		{Name: "b", Sales: 5},
		{Name: "a", Sales: 5},
		{Name: "c", Sales: 9},
	}

	top := TopPerformers(products)
	require.Equal(t, []string{"c", "a", "b"}, []string{top[0].Name, top[1].Name, top[2].Name})
	// Input order untouched.
	require.Equal(t, "b", products[0].Name)
}

func TestTopPerformersCapsAtTen(t *testing.T) {
	var products []ProductPerformance
	for i := 0; i < 25; i++ {
		products = append(products, ProductPerformance{Name: strings.Repeat("p", i+1), Sales: i})
	}
	require.Len(t, TopPerformers(products), topPerformerCount)
}

func TestCategoryRollup(t *testing.T) {
	products := []ProductPerformance{
		{Category: "Category 1", Sales: 10, Revenue: 100, Rating: 4.0},
		{Category: "Category 1", Sales: 20, Revenue: 200, Rating: 3.0},
		{Category: "Category 2", Sales: 5, Revenue: 500, Rating: 5.0},
	}

	got := CategoryRollup(products)
	require.Len(t, got, 2)

	// Revenue descending.
	require.Equal(t, "Category 2", got[0].Name)
	require.Equal(t, 500.0, got[0].Revenue)
	require.Equal(t, 1, got[0].Products)
	require.Equal(t, 5.0, got[0].AverageRating)

	require.Equal(t, "Category 1", got[1].Name)
	require.Equal(t, 30, got[1].Sales)
	require.Equal(t, 300.0, got[1].Revenue)
	require.Equal(t, 2, got[1].Products)
	require.InDelta(t, 3.5, got[1].AverageRating, 1e-9)
}

func TestCategoryRollupEmpty(t *testing.T) {
	require.Empty(t, CategoryRollup(nil))
}

package insights

import (
	"fmt"
	"sort"
)

// ProductPerformance treats a demo post as a catalog product, with sales
// figures derived from its text the same way the web dashboard's product
// charts shape them.
type ProductPerformance struct {
	ID       int
	Name     string
	Category string
	Sales    int
	Revenue  float64
	Rating   float64
	Stock    int
}

// CategoryPerformance is the per-category rollup behind the category
// revenue chart.
type CategoryPerformance struct {
	Name          string
	Sales         int
	Revenue       float64
	Products      int
	AverageRating float64
}

const (
	maxProductNameLen = 30
	topPerformerCount = 10
)

// ProductsFromPosts maps each post to a product. Names are the post title
// truncated to thirty characters; the category groups products by author.
// Sales, revenue, rating, and stock are pseudo figures derived from the
// post text so repeated fetches chart the same numbers.
func ProductsFromPosts(posts []Post) []ProductPerformance {
	products := make([]ProductPerformance, 0, len(posts))
	for _, p := range posts {
		name := p.Title
		if len(name) > maxProductNameLen {
			name = name[:maxProductNameLen] + "..."
		}
		products = append(products, ProductPerformance{
			ID:       p.ID,
			Name:     name,
			Category: fmt.Sprintf("Category %d", p.UserID),
			Sales:    100 + (len(p.Title)*13+len(p.Body))%1000,
			Revenue:  float64(1000 + (len(p.Body)*97+p.ID*31)%10000),
			Rating:   3.0 + float64((p.ID*7)%21)/10,
			Stock:    10 + (p.ID*11+len(p.Title))%100,
		})
	}
	return products
}

// TopPerformers returns the ten best-selling products, sales descending,
// ties broken by name. The input slice is not modified.
func TopPerformers(products []ProductPerformance) []ProductPerformance {
	sorted := make([]ProductPerformance, len(products))
	copy(sorted, products)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Sales != sorted[j].Sales {
			return sorted[i].Sales > sorted[j].Sales
		}
		return sorted[i].Name < sorted[j].Name
	})
	if len(sorted) > topPerformerCount {
		sorted = sorted[:topPerformerCount]
	}
	return sorted
}

// CategoryRollup sums sales and revenue per category, revenue descending,
// ties broken by name.
func CategoryRollup(products []ProductPerformance) []CategoryPerformance {
	byName := make(map[string]*CategoryPerformance)
	for _, p := range products {
		c, ok := byName[p.Category]
		if !ok {
			c = &CategoryPerformance{Name: p.Category}
			byName[p.Category] = c
		}
		c.Sales += p.Sales
		c.Revenue += p.Revenue
		c.Products++
		c.AverageRating += p.Rating
	}

	result := make([]CategoryPerformance, 0, len(byName))
	for _, c := range byName {
		c.AverageRating /= float64(c.Products)
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Revenue != result[j].Revenue {
			return result[i].Revenue > result[j].Revenue
		}
		return result[i].Name < result[j].Name
	})
	return result
}

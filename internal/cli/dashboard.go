package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shoplens/shoplens/internal/dashboard/insights"
	"github.com/shoplens/shoplens/internal/dashboard/rates"
)

// Rates prints the latest exchange rates for the given base currency,
// USD when none is given.
func (a *App) Rates(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}

	base := rates.DefaultBaseCurrency
	if len(args) > 0 {
		base = strings.ToUpper(args[0])
	}

	result, err := a.rates.Latest(ctx, base)
	if err != nil {
		a.log.Error(ctx, "fetching rates", "error", err)
		fmt.Println("Could not fetch exchange rates, try again later.")
		return err
	}

	codes := make([]string, 0, len(result.Rates))
	for code := range result.Rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	fmt.Printf("Exchange rates for %s (%s):\n", result.Base, result.Date)
	for _, code := range codes {
		fmt.Printf("  1 %s = %.4f %s\n", result.Base, result.Rates[code], code)
	}
	return nil
}

// Convert converts an amount between two currencies using the latest rates.
func (a *App) Convert(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}

	if len(args) != 3 {
		fmt.Println("Usage: convert <amount> <from> <to>")
		return nil
	}

	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fmt.Println("Amount must be a number:", args[0])
		return nil
	}
	from := strings.ToUpper(args[1])
	to := strings.ToUpper(args[2])

	converted, err := a.rates.Convert(ctx, amount, from, to)
	if err != nil {
		a.log.Error(ctx, "converting currency", "error", err)
		fmt.Println("Conversion failed:", err)
		return err
	}

	fmt.Printf("%.2f %s = %.2f %s\n", amount, from, converted, to)
	return nil
}

// Segments prints a customer segmentation. The kind argument selects the
// dimension: domain, city, company, or engagement.
func (a *App) Segments(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}

	kind := "domain"
	if len(args) > 0 {
		kind = strings.ToLower(args[0])
	}
	switch kind {
	case "domain", "city", "company", "engagement":
	default:
		fmt.Println("Usage: segments <domain|city|company|engagement>")
		return nil
	}

	customers, err := a.insights.Customers(ctx)
	if err != nil {
		a.log.Error(ctx, "fetching customers", "error", err)
		fmt.Println("Could not fetch customer data, try again later.")
		return err
	}

	var segments []insights.Segment
	switch kind {
	case "domain":
		segments = insights.SegmentByEmailDomain(customers)
	case "city":
		segments = insights.SegmentByCity(customers)
	case "company":
		segments = insights.SegmentByCompany(customers)
	case "engagement":
		posts, err := a.insights.Posts(ctx)
		if err != nil {
			a.log.Error(ctx, "fetching posts", "error", err)
			fmt.Println("Could not fetch order data, try again later.")
			return err
		}
		segments = insights.SegmentByEngagement(customers, posts)
	}

	fmt.Printf("Customer segments by %s:\n", kind)
	for _, s := range segments {
		fmt.Printf("  %-40s %d\n", s.Name, s.Value)
	}
	return nil
}

// KPI prints the dashboard's headline numbers.
func (a *App) KPI(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	customers, err := a.insights.Customers(ctx)
	if err != nil {
		a.log.Error(ctx, "fetching customers", "error", err)
		fmt.Println("Could not fetch dashboard data, try again later.")
		return err
	}
	posts, err := a.insights.Posts(ctx)
	if err != nil {
		a.log.Error(ctx, "fetching posts", "error", err)
		fmt.Println("Could not fetch dashboard data, try again later.")
		return err
	}
	comments, err := a.insights.Comments(ctx)
	if err != nil {
		a.log.Error(ctx, "fetching comments", "error", err)
		fmt.Println("Could not fetch dashboard data, try again later.")
		return err
	}

	kpi := insights.ComputeKPIs(customers, posts, comments)
	fmt.Println("KPI summary:")
	fmt.Printf("  Customers:              %d\n", kpi.TotalCustomers)
	fmt.Printf("  Orders:                 %d\n", kpi.TotalOrders)
	fmt.Printf("  Feedback entries:       %d\n", kpi.TotalFeedback)
	fmt.Printf("  Feedback per order:     %.2f\n", kpi.FeedbackPerOrder)
	fmt.Printf("  Active customers:       %d\n", kpi.ActiveCustomers)
	fmt.Printf("  Avg orders per active:  %.2f\n", kpi.AvgOrdersPerActive)
	return nil
}

// Products prints the product performance view: the ten top sellers by
// default, or the per-category rollup.
func (a *App) Products(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}

	view := "top"
	if len(args) > 0 {
		view = strings.ToLower(args[0])
	}
	switch view {
	case "top", "categories":
	default:
		fmt.Println("Usage: products [top|categories]")
		return nil
	}

	posts, err := a.insights.Posts(ctx)
	if err != nil {
		a.log.Error(ctx, "fetching posts", "error", err)
		fmt.Println("Could not fetch product data, try again later.")
		return err
	}
	products := insights.ProductsFromPosts(posts)

	if view == "categories" {
		fmt.Println("Category performance:")
		for _, c := range insights.CategoryRollup(products) {
			fmt.Printf("  %-15s products %3d  sales %6d  revenue %10.2f  avg rating %.1f\n",
				c.Name, c.Products, c.Sales, c.Revenue, c.AverageRating)
		}
		return nil
	}

	fmt.Println("Top performing products:")
	for i, p := range insights.TopPerformers(products) {
		fmt.Printf("  %2d. %-33s %-12s sales %4d  revenue %9.2f  stock %3d\n",
			i+1, p.Name, p.Category, p.Sales, p.Revenue, p.Stock)
	}
	return nil
}

// Trend prints the synthetic weekly sales trend over the last thirty days,
// restated in another currency when one is given.
func (a *App) Trend(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}

	customers, err := a.insights.Customers(ctx)
	if err != nil {
		a.log.Error(ctx, "fetching customers", "error", err)
		fmt.Println("Could not fetch dashboard data, try again later.")
		return err
	}
	posts, err := a.insights.Posts(ctx)
	if err != nil {
		a.log.Error(ctx, "fetching posts", "error", err)
		fmt.Println("Could not fetch dashboard data, try again later.")
		return err
	}

	daily := insights.SalesTimeline(posts, customers, time.Now())

	currency := rates.DefaultBaseCurrency
	if len(args) > 0 {
		currency = strings.ToUpper(args[0])
	}
	if currency != rates.DefaultBaseCurrency {
		latest, err := a.rates.Latest(ctx, rates.DefaultBaseCurrency)
		if err != nil {
			a.log.Error(ctx, "fetching rates", "error", err)
			fmt.Println("Could not fetch exchange rates, try again later.")
			return err
		}
		rate, ok := latest.Rates[currency]
		if !ok {
			fmt.Println("No exchange rate for", currency)
			return nil
		}
		daily = insights.ConvertRevenue(daily, rate)
	}

	weekly := insights.WeeklySales(daily)

	fmt.Printf("Weekly sales trend (%s):\n", currency)
	for _, week := range weekly {
		fmt.Printf("  week of %s  revenue %9.2f  orders %3d  avg %7.2f\n",
			week.Date, week.Revenue, week.Orders, week.AverageOrderValue)
	}
	return nil
}

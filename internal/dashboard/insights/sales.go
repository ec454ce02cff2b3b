package insights

import "time"

// TrendPoint is one day of the simulated sales timeline.
type TrendPoint struct {
	Date              string
	Revenue           float64
	Orders            int
	Customers         int
	AverageOrderValue float64
}

const trendDays = 30

// SalesTimeline spreads the demo posts across the last thirty days and
// derives pseudo revenue from their text, the same shaping the web
// dashboard's sales trend chart uses. Days come back oldest first.
func SalesTimeline(posts []Post, customers []Customer, today time.Time) []TrendPoint {
	hasCompany := make(map[int]bool, len(customers))
	for _, c := range customers {
		hasCompany[c.ID] = c.Company.Name != ""
	}

	days := make([]TrendPoint, trendDays)
	for i := range days {
		days[i].Date = today.AddDate(0, 0, -(trendDays - 1 - i)).Format("2006-01-02")
	}

	for idx, p := range posts {
		// Distribute posts evenly from newest day backwards.
		offset := idx * trendDays / max(len(posts), 1)
		day := &days[trendDays-1-offset]

		revenue := float64(len(p.Title)*10 + len(p.Body)*2)
		if hasCompany[p.UserID] {
			revenue *= 1.5
		}

		day.Revenue += revenue
		day.Orders++
		day.Customers++
		day.AverageOrderValue = day.Revenue / float64(day.Orders)
	}

	return days
}

// WeeklySales rolls a daily timeline up into week buckets, oldest first.
func WeeklySales(daily []TrendPoint) []TrendPoint {
	var weekly []TrendPoint
	for i := 0; i < len(daily); i += 7 {
		end := min(i+7, len(daily))
		week := TrendPoint{Date: daily[i].Date}
		for _, day := range daily[i:end] {
			week.Revenue += day.Revenue
			week.Orders += day.Orders
			week.Customers += day.Customers
		}
		if week.Orders > 0 {
			week.AverageOrderValue = week.Revenue / float64(week.Orders)
		}
		weekly = append(weekly, week)
	}
	return weekly
}

// ConvertRevenue restates a timeline's revenue in another currency.
func ConvertRevenue(timeline []TrendPoint, rate float64) []TrendPoint {
	converted := make([]TrendPoint, len(timeline))
	for i, p := range timeline {
		p.Revenue *= rate
		p.AverageOrderValue *= rate
		converted[i] = p
	}
	return converted
}

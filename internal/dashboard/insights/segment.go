package insights

import (
	"sort"
	"strings"
)

// Segment is one slice of a segmentation chart.
type Segment struct {
	Name  string
	Value int
}

func segmentsFromCounts(counts map[string]int) []Segment {
	result := make([]Segment, 0, len(counts))
	for name, count := range counts {
		result = append(result, Segment{Name: name, Value: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Value != result[j].Value {
			return result[i].Value > result[j].Value
		}
		return result[i].Name < result[j].Name
	})
	return result
}

// SegmentByEmailDomain groups customers by the domain part of their email.
func SegmentByEmailDomain(customers []Customer) []Segment {
	counts := make(map[string]int)
	for _, c := range customers {
		if _, domain, ok := strings.Cut(c.Email, "@"); ok {
			counts[domain]++
		}
	}
	return segmentsFromCounts(counts)
}

// SegmentByCity groups customers by their city.
func SegmentByCity(customers []Customer) []Segment {
	counts := make(map[string]int)
	for _, c := range customers {
		counts[c.Address.City]++
	}
	return segmentsFromCounts(counts)
}

// SegmentByCompany groups customers by their company.
func SegmentByCompany(customers []Customer) []Segment {
	counts := make(map[string]int)
	for _, c := range customers {
		counts[c.Company.Name]++
	}
	return segmentsFromCounts(counts)
}

// Engagement bucket labels. Thresholds follow the post counts of the demo
// data set.
const (
	EngagementHigh   = "High Engagement (5+ posts)"
	EngagementMedium = "Medium Engagement (2-4 posts)"
	EngagementLow    = "Low Engagement (1 post)"
	EngagementNone   = "No Activity"
)

// SegmentByEngagement buckets customers by how many posts they authored.
// Empty buckets are omitted.
func SegmentByEngagement(customers []Customer, posts []Post) []Segment {
	postCounts := make(map[int]int)
	for _, p := range posts {
		postCounts[p.UserID]++
	}

	buckets := map[string]int{}
	for _, c := range customers {
		switch n := postCounts[c.ID]; {
		case n >= 5:
			buckets[EngagementHigh]++
		case n >= 2:
			buckets[EngagementMedium]++
		case n == 1:
			buckets[EngagementLow]++
		default:
			buckets[EngagementNone]++
		}
	}

	// Fixed bucket order rather than by count.
	var result []Segment
	for _, name := range []string{EngagementHigh, EngagementMedium, EngagementLow, EngagementNone} {
		if buckets[name] > 0 {
			result = append(result, Segment{Name: name, Value: buckets[name]})
		}
	}
	return result
}

// KPISummary is the headline card row of the dashboard.
type KPISummary struct {
	TotalCustomers     int
	TotalOrders        int
	TotalFeedback      int
	FeedbackPerOrder   float64
	ActiveCustomers    int
	AvgOrdersPerActive float64
}

// ComputeKPIs aggregates the headline numbers over the raw records.
func ComputeKPIs(customers []Customer, posts []Post, comments []Comment) KPISummary {
	kpi := KPISummary{
		TotalCustomers: len(customers),
		TotalOrders:    len(posts),
		TotalFeedback:  len(comments),
	}
	if kpi.TotalOrders > 0 {
		kpi.FeedbackPerOrder = float64(kpi.TotalFeedback) / float64(kpi.TotalOrders)
	}

	postCounts := make(map[int]int)
	for _, p := range posts {
		postCounts[p.UserID]++
	}
	active := 0
	for _, c := range customers {
		if postCounts[c.ID] > 0 {
			active++
		}
	}
	kpi.ActiveCustomers = active
	if active > 0 {
		kpi.AvgOrdersPerActive = float64(kpi.TotalOrders) / float64(active)
	}
	return kpi
}

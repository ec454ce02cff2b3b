// Package insights turns raw demo-API records into the aggregates the
// dashboard charts consume: customer segments, sales trends, and KPI
// summaries.
package insights

import (
	"context"
	"fmt"

	"github.com/shoplens/shoplens/internal/httpx"
)

// Customer mirrors the placeholder API's user resource, trimmed to the
// fields the dashboard aggregates over.
type Customer struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address struct {
		City string `json:"city"`
	} `json:"address"`
	Company struct {
		Name string `json:"name"`
	} `json:"company"`
}

// Post stands in for an order in the demo data set.
type Post struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// Comment stands in for order feedback.
type Comment struct {
	PostID int    `json:"postId"`
	ID     int    `json:"id"`
	Email  string `json:"email"`
	Body   string `json:"body"`
}

// Service fetches the demo records the aggregations run over.
type Service struct {
	api *httpx.Client
}

func NewService(api *httpx.Client) *Service {
	return &Service{api: api}
}

func (s *Service) Customers(ctx context.Context) ([]Customer, error) {
	var out []Customer
	if err := s.api.GetJSON(ctx, "/users", &out); err != nil {
		return nil, fmt.Errorf("fetching customers: %w", err)
	}
	return out, nil
}

func (s *Service) Posts(ctx context.Context) ([]Post, error) {
	var out []Post
	if err := s.api.GetJSON(ctx, "/posts", &out); err != nil {
		return nil, fmt.Errorf("fetching posts: %w", err)
	}
	return out, nil
}

func (s *Service) Comments(ctx context.Context) ([]Comment, error) {
	var out []Comment
	if err := s.api.GetJSON(ctx, "/comments", &out); err != nil {
		return nil, fmt.Errorf("fetching comments: %w", err)
	}
	return out, nil
}

package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gratitude-grove/core/internal/pkg/datefilter"
)

// Diary is one gratitude entry as the server reports it.
type Diary struct {
	ID        string    `json:"id"`
	Content   []string  `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	LikeCount int       `json:"like_count"`
}

// Pagination mirrors the server's list metadata.
type Pagination struct {
	Total       int64 `json:"total"`
	CurrentPage int   `json:"current_page"`
	TotalPage   int   `json:"total_page"`
	Size        int   `json:"size"`
	HasNextPage bool  `json:"has_next_page"`
}

// CreateDiary saves today's entry. When every line trims to empty there is
// nothing to save and no request is made; the caller gets (nil, nil).
func (c *Client) CreateDiary(ctx context.Context, lines []string) (*Diary, error) {
	if !c.session.Active() {
		return nil, ErrSignInRequired
	}
	if allBlank(lines) {
		return nil, nil
	}

	var out Diary
	body := map[string][]string{"content": lines}
	if err := c.do(ctx, http.MethodPost, "/diaries", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TodayDiary returns today's entry, or nil when none exists yet.
func (c *Client) TodayDiary(ctx context.Context) (*Diary, error) {
	if !c.session.Active() {
		return nil, ErrSignInRequired
	}
	var out struct {
		Diary *Diary `json:"diary"`
	}
	if err := c.do(ctx, http.MethodGet, "/diaries/today", nil, &out); err != nil {
		return nil, err
	}
	return out.Diary, nil
}

// UpdateDiary replaces the content of an owned entry.
func (c *Client) UpdateDiary(ctx context.Context, id string, lines []string) (*Diary, error) {
	if !c.session.Active() {
		return nil, ErrSignInRequired
	}
	var out Diary
	body := map[string][]string{"content": lines}
	if err := c.do(ctx, http.MethodPut, "/diaries/"+url.PathEscape(id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDiary removes an owned entry and its likes.
func (c *Client) DeleteDiary(ctx context.Context, id string) error {
	if !c.session.Active() {
		return ErrSignInRequired
	}
	return c.do(ctx, http.MethodDelete, "/diaries/"+url.PathEscape(id), nil, nil)
}

// ListDiaries pages through the caller's own entries, optionally narrowed by
// the date filter.
func (c *Client) ListDiaries(ctx context.Context, filter datefilter.Filter, page, size int) ([]Diary, Pagination, error) {
	if !c.session.Active() {
		return nil, Pagination{}, ErrSignInRequired
	}

	q := url.Values{}
	q.Set("page", fmt.Sprint(page))
	q.Set("size", fmt.Sprint(size))
	if filter.Year != nil {
		q.Set("year", fmt.Sprint(*filter.Year))
	}
	if filter.Month != nil {
		q.Set("month", fmt.Sprint(*filter.Month))
	}
	if filter.Day != nil {
		q.Set("day", fmt.Sprint(*filter.Day))
	}

	var out struct {
		Data       []Diary    `json:"data"`
		Pagination Pagination `json:"pagination"`
	}
	if err := c.do(ctx, http.MethodGet, "/diaries?"+q.Encode(), nil, &out); err != nil {
		return nil, Pagination{}, err
	}
	return out.Data, out.Pagination, nil
}

// DiaryCount returns the caller's lifetime entry count.
func (c *Client) DiaryCount(ctx context.Context) (int64, error) {
	if !c.session.Active() {
		return 0, ErrSignInRequired
	}
	var out struct {
		Count int64 `json:"count"`
	}
	if err := c.do(ctx, http.MethodGet, "/diaries/count", nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

// Contributions returns the entry timestamps feeding the contribution grid.
func (c *Client) Contributions(ctx context.Context) ([]time.Time, error) {
	if !c.session.Active() {
		return nil, ErrSignInRequired
	}
	var out struct {
		Timestamps []time.Time `json:"timestamps"`
	}
	if err := c.do(ctx, http.MethodGet, "/diaries/contributions", nil, &out); err != nil {
		return nil, err
	}
	return out.Timestamps, nil
}

func allBlank(lines []string) bool {
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			return false
		}
	}
	return true
}

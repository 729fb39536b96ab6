package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// FeedItem is one public feed entry.
type FeedItem struct {
	ID        string    `json:"id"`
	Content   []string  `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	LikeCount int       `json:"like_count"`
	Liked     bool      `json:"liked"`
	Nickname  string    `json:"nickname"`
}

// Feed fetches a feed page and replaces the local cache wholesale. Anything
// a previous ToggleLike patched into the cache is overwritten; the server
// response is authoritative.
func (c *Client) Feed(ctx context.Context, page, size int) ([]FeedItem, Pagination, error) {
	q := url.Values{}
	q.Set("page", fmt.Sprint(page))
	q.Set("size", fmt.Sprint(size))

	var out struct {
		Data       []FeedItem `json:"data"`
		Pagination Pagination `json:"pagination"`
	}
	if err := c.do(ctx, http.MethodGet, "/feed?"+q.Encode(), nil, &out); err != nil {
		return nil, Pagination{}, err
	}

	c.feedCache = out.Data
	return out.Data, out.Pagination, nil
}

// CachedFeed returns the last fetched feed page, with any like patches
// applied since.
func (c *Client) CachedFeed() []FeedItem { return c.feedCache }

// ToggleLike flips the like on one entry and patches the cached feed with
// the server's returned state instead of refetching the page.
func (c *Client) ToggleLike(ctx context.Context, diaryID string) (liked bool, likeCount int, err error) {
	if !c.session.Active() {
		return false, 0, ErrSignInRequired
	}

	var out struct {
		Liked     bool `json:"liked"`
		LikeCount int  `json:"like_count"`
	}
	if err := c.do(ctx, http.MethodPost, "/diaries/"+url.PathEscape(diaryID)+"/like", nil, &out); err != nil {
		return false, 0, err
	}

	for i := range c.feedCache {
		if c.feedCache[i].ID == diaryID {
			c.feedCache[i].Liked = out.Liked
			c.feedCache[i].LikeCount = out.LikeCount
			break
		}
	}
	return out.Liked, out.LikeCount, nil
}

// Package crawler scrapes course timetables and the canteen menu from the
// university and student services web sites.
package crawler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/lixenwraith/hsterm/schedule"
)

const (
	DefaultTimetableIndexURL = "https://www.hs-offenburg.de/studium/vorlesungsplaene/"
	DefaultCanteenURL        = "https://www.swfr.de/essen-trinken/speiseplaene/mensa-offenburg/"
	DefaultBaseURL           = "https://www.swfr.de"

	// MaxResponseSize caps every response body read
	MaxResponseSize = 8 << 20
	DefaultTimeout  = 30 * time.Second

	courseLinkPrefix = "www.hs-offenburg.de/index.php?id=6627"
)

var (
	ErrStatus         = errors.New("unexpected response status")
	ErrCourseNotFound = errors.New("course not found")
	ErrNoTable        = errors.New("expected table not found")
	ErrEmptyIndex     = errors.New("no courses in timetable index")
)

// Query selects which week to fetch
type Query int

const (
	ThisWeek Query = iota
	NextWeek
)

func (q Query) String() string {
	if q == NextWeek {
		return "next week"
	}
	return "this week"
}

// offset returns the day offset of the queried week from the current one
func (q Query) offset() int {
	if q == NextWeek {
		return 7
	}
	return 0
}

// Client fetches and parses plans. The zero value is not usable, use New.
type Client struct {
	HTTP              *http.Client
	TimetableIndexURL string
	CanteenURL        string
	BaseURL           string
	// Now anchors week arithmetic, time.Now when nil
	Now func() time.Time
}

// New returns a client for the live sites
func New() *Client {
	return &Client{
		HTTP:              &http.Client{Timeout: DefaultTimeout},
		TimetableIndexURL: DefaultTimetableIndexURL,
		CanteenURL:        DefaultCanteenURL,
		BaseURL:           DefaultBaseURL,
	}
}

func (c *Client) today() schedule.Day {
	if c.Now != nil {
		return schedule.DayOf(c.Now())
	}
	return schedule.Today()
}

// fetch downloads url and returns the body, at most MaxResponseSize bytes
func (c *Client) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s from %s", ErrStatus, resp.Status, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", url, err)
	}
	return string(body), nil
}

func (c *Client) document(ctx context.Context, url string) (*goquery.Document, error) {
	body, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return parse(body)
}

func parse(body string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}

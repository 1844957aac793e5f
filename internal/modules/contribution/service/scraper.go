package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
)

const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

var countPattern = regexp.MustCompile(`^([\d,]+) contributions?`)

// Day is one cell of the public contribution calendar.
type Day struct {
	Date  time.Time
	Count int
}

// CalendarScraper reads the contribution calendar GitHub renders at
// /users/<name>/contributions.
type CalendarScraper struct {
	baseURL   string
	collector *colly.Collector
}

func NewCalendarScraper(baseURL string) *CalendarScraper {
	return &CalendarScraper{
		baseURL:   strings.TrimRight(baseURL, "/"),
		collector: colly.NewCollector(colly.UserAgent(userAgent)),
	}
}

// FetchCalendar returns the days of the calendar in page order. Days without
// a tooltip count as zero.
func (s *CalendarScraper) FetchCalendar(ctx context.Context, username string) ([]Day, error) {
	if username == "" {
		return nil, fmt.Errorf("github username is empty")
	}

	// Clone per request; a collector remembers visited URLs.
	c := s.collector.Clone()
	if deadline, ok := ctx.Deadline(); ok {
		c.SetRequestTimeout(time.Until(deadline))
	}

	var (
		order  []string
		dates  = map[string]time.Time{}
		counts = map[string]int{}
		errs   []error
	)

	c.OnHTML("td.ContributionCalendar-day[data-date]", func(e *colly.HTMLElement) {
		d, err := time.Parse(time.DateOnly, e.Attr("data-date"))
		if err != nil {
			errs = append(errs, err)
			return
		}
		id := e.Attr("id")
		if id == "" {
			id = e.Attr("data-date")
		}
		order = append(order, id)
		dates[id] = d
	})
	c.OnHTML("tool-tip[for]", func(e *colly.HTMLElement) {
		counts[e.Attr("for")] = parseCount(e.Text)
	})

	if err := c.Visit(s.baseURL + "/users/" + username + "/contributions"); err != nil {
		return nil, fmt.Errorf("fetch contribution calendar: %w", err)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("parse contribution calendar: %w", errs[0])
	}

	days := make([]Day, 0, len(order))
	for _, id := range order {
		days = append(days, Day{Date: dates[id], Count: counts[id]})
	}
	return days, nil
}

// parseCount reads "12 contributions on March 3rd." and treats anything
// else, such as "No contributions on ...", as zero.
func parseCount(text string) int {
	m := countPattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return 0
	}
	return n
}

// Package market classifies wall-clock time against NSE trading hours to
// decide how orders should be routed.
package market

import "time"

// NSE equity session, IST. Both boundary instants count as open.
const (
	openHour    = 9
	openMinute  = 15
	closeHour   = 15
	closeMinute = 30
)

// IST is a fixed +05:30 offset. India has no DST, so a fixed zone is
// sufficient; exchange holidays are not tracked.
var IST = time.FixedZone("IST", 5*3600+30*60)

// Clock answers whether the market is open. The time source is injectable
// for tests.
type Clock struct {
	now func() time.Time
}

// NewClock returns a Clock backed by the system time.
func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// NewClockAt returns a Clock backed by the given time source.
func NewClockAt(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// IsOpen reports whether the NSE equity session is currently open:
// Monday to Friday, 09:15 to 15:30 IST inclusive.
func (c *Clock) IsOpen() bool {
	now := c.now().In(IST)

	switch now.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}

	sessionOpen := time.Date(now.Year(), now.Month(), now.Day(), openHour, openMinute, 0, 0, IST)
	sessionClose := time.Date(now.Year(), now.Month(), now.Day(), closeHour, closeMinute, 0, 0, IST)

	return !now.Before(sessionOpen) && !now.After(sessionClose)
}

// OrderVariety returns the order variety to use right now: "regular"
// during market hours, "amo" (after-market order) otherwise.
func (c *Clock) OrderVariety() string {
	if c.IsOpen() {
		return "regular"
	}
	return "amo"
}

// Status is a snapshot of the market session for display.
type Status struct {
	IsOpen             bool   `json:"is_open"`
	Status             string `json:"status"`
	OrderTypeAvailable string `json:"order_type_available"`
	MarketHours        string `json:"market_hours"`
	CurrentTime        string `json:"current_time"`
}

// Status returns the current session snapshot.
func (c *Clock) Status() Status {
	open := c.IsOpen()
	status := "CLOSED"
	variety := "AMO"
	if open {
		status = "OPEN"
		variety = "REGULAR"
	}
	return Status{
		IsOpen:             open,
		Status:             status,
		OrderTypeAvailable: variety,
		MarketHours:        "9:15 AM - 3:30 PM IST (Monday to Friday)",
		CurrentTime:        c.now().In(IST).Format("2006-01-02 15:04:05 IST"),
	}
}

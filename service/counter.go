package service

import (
	"context"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var counterNumber = regexp.MustCompile(`[\d,]+`)

// Counter is a stat like "500+ Homes Sold" split around its number.
type Counter struct {
	Prefix string
	Target int
	Suffix string
}

func ParseCounter(text string) (Counter, bool) {
	loc := counterNumber.FindStringIndex(text)
	if loc == nil {
		return Counter{}, false
	}
	match := text[loc[0]:loc[1]]
	n, err := strconv.Atoi(strings.ReplaceAll(match, ",", ""))
	if err != nil {
		return Counter{}, false
	}

	suffix := text[loc[1]:]
	if i := strings.Index(suffix, match); i >= 0 {
		suffix = suffix[:i]
	}
	return Counter{Prefix: text[:loc[0]], Target: n, Suffix: suffix}, true
}

func (c Counter) Render(n int) string {
	return c.Prefix + FormatNumber(n) + c.Suffix
}

// Frames lists every text the counter shows, from zero up to the target in
// CounterSteps equal increments.
func (c Counter) Frames() []string {
	frames := []string{c.Render(0)}
	target := float64(c.Target)
	increment := target / CounterSteps

	current := 0.0
	for {
		current += increment
		if current >= target {
			return append(frames, c.Render(c.Target))
		}
		frames = append(frames, c.Render(int(math.Round(current))))
	}
}

// Animate emits the frames spread over CounterDuration.
func (c Counter) Animate(ctx context.Context, emit func(text string)) error {
	step := CounterDuration / CounterSteps
	frames := c.Frames()

	emit(frames[0])
	timer := time.NewTimer(step)
	defer timer.Stop()

	for _, f := range frames[1:] {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
		emit(f)
		timer.Reset(step)
	}
	return nil
}

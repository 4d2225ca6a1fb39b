package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	ErrTooFewSlides    = errors.New("carousel needs more than one slide")
	ErrSlideOutOfRange = errors.New("slide index out of range")
)

// Carousel tracks the active testimonial slide and auto-advances it.
type Carousel struct {
	mu       sync.Mutex
	slides   int
	current  int
	interval time.Duration
	paused   bool
	resume   chan struct{}
}

func NewCarousel(slides int, interval time.Duration) (*Carousel, error) {
	if slides < 2 {
		return nil, ErrTooFewSlides
	}
	if interval <= 0 {
		interval = DefaultCarouselInterval
	}
	return &Carousel{
		slides:   slides,
		interval: interval,
		resume:   make(chan struct{}, 1),
	}, nil
}

func (c *Carousel) Show(index int) error {
	if index < 0 || index >= c.slides {
		return fmt.Errorf("%d of %d: %w", index, c.slides, ErrSlideOutOfRange)
	}
	c.mu.Lock()
	c.current = index
	c.mu.Unlock()
	return nil
}

// Next advances one slide, wrapping to the first.
func (c *Carousel) Next() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = (c.current + 1) % c.slides
	return c.current
}

func (c *Carousel) Current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *Carousel) Slides() int {
	return c.slides
}

// DotLabels are the aria labels of the slide dots.
func (c *Carousel) DotLabels() []string {
	labels := make([]string, c.slides)
	for i := range labels {
		labels[i] = fmt.Sprintf("Go to slide %d", i+1)
	}
	return labels
}

// Pause stops auto-advance, as hovering the carousel does.
func (c *Carousel) Pause() {
	c.mu.Lock()
	c.paused = true
	c.mu.Unlock()
}

// Resume restarts auto-advance with a full interval before the next slide.
func (c *Carousel) Resume() {
	c.mu.Lock()
	c.paused = false
	c.mu.Unlock()

	select {
	case c.resume <- struct{}{}:
	default:
	}
}

func (c *Carousel) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// Run auto-advances until ctx is done, reporting each new slide index.
func (c *Carousel) Run(ctx context.Context, onChange func(index int)) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.resume:
			ticker.Reset(c.interval)
		case <-ticker.C:
			if c.Paused() {
				continue
			}
			onChange(c.Next())
		}
	}
}

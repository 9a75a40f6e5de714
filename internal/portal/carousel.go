package portal

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// CarouselInterval is how long each landing slide stays up
const CarouselInterval = 4 * time.Second

// Carousel cycles through the landing page slides. Choosing a slide by
// hand restarts the countdown to the next advance.
type Carousel struct {
	mu       sync.Mutex
	slides   int
	current  int
	interval time.Duration
	restart  chan struct{}
}

func NewCarousel(slides int, interval time.Duration) *Carousel {
	if slides < 1 {
		slides = 1
	}
	return &Carousel{
		slides:   slides,
		interval: interval,
		restart:  make(chan struct{}, 1),
	}
}

func (c *Carousel) Current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Next advances one slide, wrapping after the last
func (c *Carousel) Next() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = (c.current + 1) % c.slides
	return c.current
}

// Select jumps to slide i and restarts the timer
func (c *Carousel) Select(i int) error {
	if i < 0 || i >= c.slides {
		return fmt.Errorf("slide %d out of range [0,%d)", i, c.slides)
	}
	c.mu.Lock()
	c.current = i
	c.mu.Unlock()

	select {
	case c.restart <- struct{}{}:
	default:
	}
	return nil
}

// Run advances the carousel until ctx is done
func (c *Carousel) Run(ctx context.Context) {
	timer := time.NewTimer(c.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			c.Next()
			timer.Reset(c.interval)
		case <-c.restart:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(c.interval)
		}
	}
}

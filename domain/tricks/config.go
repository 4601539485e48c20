package tricks

import (
	"fmt"
	"time"
)

// Config parameterizes a game.
type Config struct {
	// CardsPerPlayer is both the hand size and the number of rounds.
	CardsPerPlayer int
	// MaxRetries caps consecutive invalid selections in a turn; 0 is unbounded.
	MaxRetries int
	// Pace is the delay unit between displayed phases; 0 disables pacing.
	Pace time.Duration
	// Seed makes the shuffle reproducible when not empty.
	Seed string
}

func DefaultConfig() Config {
	return Config{CardsPerPlayer: 5}
}

func (c Config) Validate() error {
	if c.CardsPerPlayer < 1 {
		return fmt.Errorf("cards per player must be at least 1, got %d", c.CardsPerPlayer)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("max retries must not be negative, got %d", c.MaxRetries)
	}
	if c.Pace < 0 {
		return fmt.Errorf("pace must not be negative, got %s", c.Pace)
	}
	return nil
}

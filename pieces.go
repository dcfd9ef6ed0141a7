package gobblet

import "fmt"

// Config describes one admissible rule variant: how many distinct piece
// sizes are in play, how many pieces of each size each player starts
// with, and whether a player may relocate a piece already on the board
// instead of placing a new one.
type Config struct {
	NumSizes   int
	NumPerSize int
	AllowMove  bool
}

// NewConfig validates a rule triple and returns the corresponding Config.
// num_sizes must be in 1..3 and num_per_size at least 1; num_per_size
// is capped at 9 (one piece per square), or at 2 once all three sizes
// are live.
func NewConfig(numSizes, numPerSize int, allowMove bool) (Config, error) {
	cfg := Config{NumSizes: numSizes, NumPerSize: numPerSize, AllowMove: allowMove}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports whether the receiver is an admissible rule triple.
func (cfg Config) Validate() error {
	if cfg.NumSizes < 1 || cfg.NumSizes > 3 {
		return fmt.Errorf("gobblet: num_sizes must be in 1..3, got %d", cfg.NumSizes)
	}
	if cfg.NumPerSize < 1 {
		return fmt.Errorf("gobblet: num_per_size must be >= 1, got %d", cfg.NumPerSize)
	}
	maxPerSize := 9
	if cfg.NumSizes == 3 {
		maxPerSize = 2
	}
	if cfg.NumPerSize > maxPerSize {
		return fmt.Errorf("gobblet: num_per_size must be <= %d when num_sizes=%d, got %d",
			maxPerSize, cfg.NumSizes, cfg.NumPerSize)
	}
	return nil
}

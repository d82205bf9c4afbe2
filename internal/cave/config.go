package cave

import "strconv"

// Config holds the neighbourhood rule for cave smoothing.
type Config struct {
	// NeighborhoodSize is the Moore radius.
	NeighborhoodSize int
	// NeighborhoodThreshold is the wall count at which a cell becomes or
	// stays wall.
	NeighborhoodThreshold int
}

// DefaultConfig returns the classic radius-1, five-wall rule.
func DefaultConfig() Config {
	return Config{NeighborhoodSize: 1, NeighborhoodThreshold: 5}
}

// MaxThreshold is the largest count a cell can see: every neighbour plus
// the boundary bonus on all four sides.
func MaxThreshold(size int) int {
	side := 2*size + 1
	return side*side - 1 + 4*boundaryBonus
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.NeighborhoodSize = parsed
		}
	}
	if v, ok := cfg["threshold"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.NeighborhoodThreshold = parsed
		}
	}
	return c
}

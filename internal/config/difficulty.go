package config

import (
	"fmt"
	"strings"

	"github.com/danieljhkim/hanoi/internal/puzzle"
)

// Tier is a named difficulty level.
type Tier struct {
	Name  string `json:"name"`
	Disks int    `json:"disks"`
}

// MinMoves returns the optimal move count for the tier.
func (t Tier) MinMoves() uint64 {
	n, _ := puzzle.MinMoves(t.Disks)
	return n
}

var tiers = []Tier{
	{Name: "Easy", Disks: 3},
	{Name: "Medium", Disks: 4},
	{Name: "Hard", Disks: 5},
	{Name: "Expert", Disks: 6},
	{Name: "Master", Disks: 7},
	{Name: "Legend", Disks: 8},
}

// Tiers returns the difficulty tiers, easiest first.
func Tiers() []Tier {
	return append([]Tier{}, tiers...)
}

// TierByName looks a tier up by case-insensitive name.
func TierByName(name string) (Tier, error) {
	for _, t := range tiers {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	return Tier{}, fmt.Errorf("%w: unknown difficulty %q", puzzle.ErrInvalidArgument, name)
}

// TierByDisks returns the tier for a disk count; ok is false when no tier
// uses that count.
func TierByDisks(n int) (Tier, bool) {
	for _, t := range tiers {
		if t.Disks == n {
			return t, true
		}
	}
	return Tier{}, false
}

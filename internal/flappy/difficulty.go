package flappy

import (
	"fmt"
	"strings"
)

// Difficulty selects the body's gravity for a session.
// Values are ordered by severity; each level falls strictly faster than the previous.
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
	Expert
	Master
	Insane
)

var difficultyNames = [...]string{
	Easy:   "easy",
	Normal: "normal",
	Hard:   "hard",
	Expert: "expert",
	Master: "master",
	Insane: "insane",
}

// Difficulties returns all levels, easiest first.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Normal, Hard, Expert, Master, Insane}
}

// Valid reports whether d is one of the six defined levels.
func (d Difficulty) Valid() bool {
	return d >= Easy && d <= Insane
}

// String returns the lowercase level name.
func (d Difficulty) String() string {
	if !d.Valid() {
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
	return difficultyNames[d]
}

// Title returns the capitalized level name for display.
func (d Difficulty) Title() string {
	s := d.String()
	if !d.Valid() {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseDifficulty converts a level name (case-insensitive) or its 1-based
// number to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range difficultyNames {
		if s == name || s == fmt.Sprint(i+1) {
			return Difficulty(i), nil
		}
	}
	return Easy, fmt.Errorf("flappy: unknown difficulty %q (want one of %s)", s, strings.Join(difficultyNames[:], ", "))
}

package mood

import (
	"fmt"
	"strconv"
)

// Score is a self-reported mood on the five-point scale.
type Score int

// Scale bounds and the neutral default.
const (
	MinScore     Score = 1
	MaxScore     Score = 5
	DefaultScore Score = 3
)

// Level describes how a score is presented.
type Level struct {
	Score Score  `json:"score"`
	Label string `json:"label"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
}

// Levels is the fixed scale, happiest first.
var Levels = []Level{
	{Score: 5, Label: "Very happy", Emoji: "😁", Color: "#4caf50"},
	{Score: 4, Label: "Happy", Emoji: "😊", Color: "#8bc34a"},
	{Score: 3, Label: "Neutral", Emoji: "😐", Color: "#ffc107"},
	{Score: 2, Label: "A bit down", Emoji: "😕", Color: "#ff9800"},
	{Score: 1, Label: "Very sad", Emoji: "😢", Color: "#f44336"},
}

// Valid reports whether s is on the scale.
func (s Score) Valid() bool {
	return s >= MinScore && s <= MaxScore
}

// Level returns the presentation of s. Off-scale scores yield a zero Level.
func (s Score) Level() Level {
	for _, l := range Levels {
		if l.Score == s {
			return l
		}
	}
	return Level{}
}

func (s Score) String() string {
	l := s.Level()
	if l.Label == "" {
		return strconv.Itoa(int(s))
	}
	return fmt.Sprintf("%s %s", l.Label, l.Emoji)
}

// ValidateScore checks that s is one of 1..5.
func ValidateScore(s Score) error {
	if !s.Valid() {
		return fmt.Errorf("invalid mood score %d: must be between %d and %d", int(s), MinScore, MaxScore)
	}
	return nil
}

// ParseScore parses a decimal score and validates it.
func ParseScore(str string) (Score, error) {
	n, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("invalid mood score %q: must be a number between %d and %d", str, MinScore, MaxScore)
	}
	s := Score(n)
	if err := ValidateScore(s); err != nil {
		return 0, err
	}
	return s, nil
}

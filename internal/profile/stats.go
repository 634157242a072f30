package profile

import "fmt"

// Section titles, in display order.
const (
	SectionOffense = "Offense Highlights"
	SectionDefense = "Defense Highlights"
	SectionNeutral = "Neutral Highlights"
)

// StatDefinition describes one compared statistic.
type StatDefinition struct {
	Key           string
	Label         string
	Type          ValueType
	Unit          string
	HighlightMode HighlightMode
}

// SectionDefinition groups statistics under a title.
type SectionDefinition struct {
	Title string
	Stats []StatDefinition
}

// StatSource supplies the value of a statistic for a player index (0 or 1).
type StatSource interface {
	StatValue(key string, playerIndex int) (float64, error)
}

// StatSourceFunc adapts a function to StatSource.
type StatSourceFunc func(key string, playerIndex int) (float64, error)

// StatValue implements StatSource.
func (f StatSourceFunc) StatValue(key string, playerIndex int) (float64, error) {
	return f(key, playerIndex)
}

// DefaultSections returns the highlight sections shown on the Game Profile screen.
func DefaultSections() []SectionDefinition {
	offense := []StatDefinition{
		{Key: "avg_punish_damage", Label: "Average Punish Damage", Type: TypeFloat, Unit: "%", HighlightMode: HighlightGreater},
		{Key: "openings_per_kill", Label: "Openings / Kill", Type: TypeFloat, HighlightMode: HighlightLower},
	}
	for i := 0; i < 8; i++ {
		offense = append(offense, StatDefinition{
			Key:   fmt.Sprintf("punishes_started_%d", i),
			Label: "Punishes Started",
			Type:  TypeInt,
		})
	}

	return []SectionDefinition{
		{Title: SectionOffense, Stats: offense},
		{Title: SectionDefense},
		{Title: SectionNeutral},
	}
}

// placeholderValues mirrors the mock numbers the screen shipped with until a
// statistics pipeline exists.
var placeholderValues = map[string][2]float64{
	"avg_punish_damage": {13.2, 15.5},
	"openings_per_kill": {2.1, 7},
}

// PlaceholderSource returns fixed mock values for every statistic in DefaultSections.
type PlaceholderSource struct{}

// StatValue implements StatSource.
func (PlaceholderSource) StatValue(key string, playerIndex int) (float64, error) {
	if playerIndex != 0 && playerIndex != 1 {
		return 0, fmt.Errorf("%w: player index %d", ErrInvalidInput, playerIndex)
	}
	if v, ok := placeholderValues[key]; ok {
		return v[playerIndex], nil
	}

	var n int
	if _, err := fmt.Sscanf(key, "punishes_started_%d", &n); err != nil {
		return 0, fmt.Errorf("unknown statistic %q", key)
	}
	if playerIndex == 1 {
		return 18, nil
	}
	if n%2 == 0 {
		return 14, nil
	}
	return 24, nil
}

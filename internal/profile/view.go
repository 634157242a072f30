package profile

import (
	"fmt"
	"strconv"
)

// EmptyMessage is shown when the game is not a two-player match.
const EmptyMessage = "Only Singles is Supported"

// UnknownValue fills details that could not be resolved.
const UnknownValue = "Unknown"

// Player is the subset of a player record the screen displays.
type Player struct {
	Port           int
	CharacterID    int
	CharacterColor int
}

// GameInput carries only the game fields the Game Profile screen reads.
// Pointer and zero values mean the field was absent from the store.
type GameInput struct {
	Players      []Player
	StageID      *int
	GameDuration int
	PlayedOn     string
	StartAt      string
}

// StageNamer resolves a stage id to its display name. ok is false when unknown.
type StageNamer interface {
	StageName(stageID int) (name string, ok bool)
}

// DurationFormatter renders a frame count as a human-readable duration.
type DurationFormatter interface {
	FormatDuration(frames int) string
}

// TimestampFormatter renders a raw timestamp; missing input yields "".
type TimestampFormatter interface {
	FormatTimestamp(raw string) string
}

// ImageResolver maps an asset key to a loadable image reference.
type ImageResolver interface {
	Resolve(key string) string
}

// Header is the page header shown above the profile content.
type Header struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

// PlayerDisplay is one side of the matchup display.
type PlayerDisplay struct {
	Label    string `json:"label"`
	ImageKey string `json:"image_key"`
	Image    string `json:"image"`
}

// Detail is a labelled game metadata entry.
type Detail struct {
	Label   string `json:"label"`
	Content string `json:"content"`
}

// StatRow is a rendered comparison between the two players.
type StatRow struct {
	Label  string    `json:"label"`
	Type   ValueType `json:"type"`
	Value1 float64   `json:"value1"`
	Value2 float64   `json:"value2"`
	ComparisonResult
}

// Section is a titled group of stat rows.
type Section struct {
	Title string    `json:"title"`
	Stats []StatRow `json:"stats"`
}

// Profile is the complete model of the Game Profile screen.
type Profile struct {
	Header       Header          `json:"header"`
	Empty        bool            `json:"empty"`
	EmptyMessage string          `json:"empty_message,omitempty"`
	Players      []PlayerDisplay `json:"players,omitempty"`
	Details      []Detail        `json:"details,omitempty"`
	Sections     []Section       `json:"sections,omitempty"`
}

// Builder assembles Profiles from game input and its collaborators.
type Builder struct {
	Stages     StageNamer
	Durations  DurationFormatter
	Timestamps TimestampFormatter
	Images     ImageResolver
	Source     StatSource
	Sections   []SectionDefinition
}

// NewBuilder creates a Builder using the placeholder stat source and default sections.
func NewBuilder(stages StageNamer, durations DurationFormatter, timestamps TimestampFormatter, images ImageResolver) *Builder {
	return &Builder{
		Stages:     stages,
		Durations:  durations,
		Timestamps: timestamps,
		Images:     images,
		Source:     PlaceholderSource{},
		Sections:   DefaultSections(),
	}
}

// Build returns the screen model for a game. A game without exactly two
// players produces the empty state rather than an error.
func (b *Builder) Build(game GameInput) (*Profile, error) {
	p := &Profile{Header: Header{Icon: "game", Text: "Game"}}

	if len(game.Players) != 2 {
		p.Empty = true
		p.EmptyMessage = EmptyMessage
		return p, nil
	}

	p.Players = []PlayerDisplay{
		b.playerDisplay(game.Players[0]),
		b.playerDisplay(game.Players[len(game.Players)-1]),
	}
	p.Details = b.details(game)

	sections, err := b.sections()
	if err != nil {
		return nil, err
	}
	p.Sections = sections

	return p, nil
}

// StockIconKey returns the asset key of a character's stock icon.
func StockIconKey(characterID, characterColor int) string {
	return fmt.Sprintf("stock-icon-%d-%d.png", characterID, characterColor)
}

func (b *Builder) playerDisplay(player Player) PlayerDisplay {
	key := StockIconKey(player.CharacterID, player.CharacterColor)
	display := PlayerDisplay{
		Label:    "Player " + strconv.Itoa(player.Port),
		ImageKey: key,
	}
	if b.Images != nil {
		display.Image = b.Images.Resolve(key)
	}
	return display
}

func (b *Builder) details(game GameInput) []Detail {
	stageName := UnknownValue
	if game.StageID != nil && b.Stages != nil {
		if name, ok := b.Stages.StageName(*game.StageID); ok && name != "" {
			stageName = name
		}
	}

	var duration, startAt string
	if b.Durations != nil {
		duration = b.Durations.FormatDuration(game.GameDuration)
	}
	if b.Timestamps != nil {
		startAt = b.Timestamps.FormatTimestamp(game.StartAt)
	}

	platform := game.PlayedOn
	if platform == "" {
		platform = UnknownValue
	}

	return []Detail{
		{Label: "Stage", Content: stageName},
		{Label: "Duration", Content: duration},
		{Label: "Time", Content: startAt},
		{Label: "Platform", Content: platform},
	}
}

func (b *Builder) sections() ([]Section, error) {
	source := b.Source
	if source == nil {
		source = PlaceholderSource{}
	}

	sections := make([]Section, 0, len(b.Sections))
	for _, def := range b.Sections {
		section := Section{Title: def.Title, Stats: []StatRow{}}
		for _, stat := range def.Stats {
			row, err := evaluateStat(source, stat)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", stat.Label, err)
			}
			section.Stats = append(section.Stats, row)
		}
		sections = append(sections, section)
	}
	return sections, nil
}

func evaluateStat(source StatSource, stat StatDefinition) (StatRow, error) {
	v1, err := source.StatValue(stat.Key, 0)
	if err != nil {
		return StatRow{}, err
	}
	v2, err := source.StatValue(stat.Key, 1)
	if err != nil {
		return StatRow{}, err
	}

	result, err := Evaluate(ComparisonInput{
		Value1:        v1,
		Value2:        v2,
		Type:          stat.Type,
		Unit:          stat.Unit,
		HighlightMode: stat.HighlightMode,
	})
	if err != nil {
		return StatRow{}, err
	}
	return StatRow{
		Label:            stat.Label,
		Type:             stat.Type,
		Value1:           v1,
		Value2:           v2,
		ComparisonResult: result,
	}, nil
}

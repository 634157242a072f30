// Package models defines the records held by the game store.
package models

import "time"

// Game is a stored match with the precomputed values the Game Profile reads.
type Game struct {
	ID           string    `json:"id"`
	StageID      *int      `json:"stage_id,omitempty"`
	GameDuration int       `json:"game_duration"` // Frames
	PlayedOn     string    `json:"played_on"`
	StartAt      string    `json:"start_at"` // Raw timestamp from replay metadata
	CreatedAt    time.Time `json:"created_at"`
	Players      []Player  `json:"players"`
}

// Player is a participant in a stored game.
type Player struct {
	Index          int `json:"index"`
	Port           int `json:"port"`
	CharacterID    int `json:"character_id"`
	CharacterColor int `json:"character_color"`
}

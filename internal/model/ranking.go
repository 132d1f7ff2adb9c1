package model

// Standing is one row of the final ranking
type Standing struct {
	Place    int // 1-based; tied scores share a place
	PlayerID PlayerID
	Name     string
	Score    int
}

// Ranking lists players by score, highest first
type Ranking struct {
	Standings []Standing
	IsTie     bool      // Top two scores are equal
	Winner    *PlayerID // nil when tied
}

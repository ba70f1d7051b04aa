package domain

// MatchupRecord holds the columns shared by the three matchup tables.
// Opponent is free text, not a foreign key into champions.
type MatchupRecord struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	Opponent   string   `json:"campeon"`
	WinRate    *float64 `json:"winrate"`
	Games      *int     `json:"numero_partidas"`
	ChampionID uint     `json:"champion_id" gorm:"not null"`
}

// CounterMatchup records an opponent the champion loses into.
type CounterMatchup struct {
	MatchupRecord
}

// Matchup records an even lane opponent.
type Matchup struct {
	MatchupRecord
}

// GoodMatchup records an opponent the champion wins into.
type GoodMatchup struct {
	MatchupRecord
}

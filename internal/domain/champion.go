package domain

import "time"

type Champion struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"uniqueIndex;not null"`
	Title        string    `json:"title"`
	Role         *string   `json:"role"`          // first classification tag, e.g. "Fighter"
	Tags         string    `json:"-"`             // full tag list, comma-joined
	LastSyncedAt time.Time `json:"lastSyncedAt"`
}

// ChampionStats is the one-to-one base-stats row imported alongside a
// champion. Fields are nullable: a record missing a numeric field in the
// source document is stored as NULL rather than rejected.
type ChampionStats struct {
	ID           uint     `json:"id" gorm:"primaryKey"`
	ChampionID   uint     `json:"champion_id" gorm:"uniqueIndex;not null"`
	Health       *float64 `json:"health"`
	Armor        *float64 `json:"armor"`
	AttackDamage *float64 `json:"attack_damage"`
	Speed        *float64 `json:"speed"`
}

// ChampionInfo is the secondary, independently sourced classification
// dataset ("stats2"). Keyed by champion name, not by champion id.
type ChampionInfo struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	Name       string  `json:"name" gorm:"uniqueIndex;not null"`
	Classes    *string `json:"classes"`
	Difficulty *string `json:"difficulty"`
	RangeType  *string `json:"range_type"`
}

// ChampionWithStats is the flat row returned by the champions listing,
// champions LEFT JOIN champion_stats.
type ChampionWithStats struct {
	ID           uint     `json:"id"`
	Name         string   `json:"name"`
	Title        string   `json:"title"`
	Role         *string  `json:"role"`
	Health       *float64 `json:"health"`
	Armor        *float64 `json:"armor"`
	AttackDamage *float64 `json:"attack_damage"`
	Speed        *float64 `json:"speed"`
}

package domain

// ItemSet holds the columns shared by the three-item recommendation
// tables (core items and starter items). Item references are optional.
type ItemSet struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	ChampionID uint     `json:"champion_id" gorm:"not null"`
	Item1      *uint    `json:"item1"`
	Item2      *uint    `json:"item2"`
	Item3      *uint    `json:"item3"`
	PickRate   *float64 `json:"pickRate"`
	Games      *int     `json:"games"`
	WinRate    *float64 `json:"winRate"`
}

type CoreItemSet struct {
	ItemSet
}

type StarterItemSet struct {
	ItemSet
}

// ItemSetRow is the joined view for three-item sets: champion name plus
// the resolved item names (LEFT JOINs, so unset slots stay null).
type ItemSetRow struct {
	ID           uint     `json:"id"`
	ChampionName string   `json:"champion_name"`
	Item1Name    *string  `json:"item1_name"`
	Item2Name    *string  `json:"item2_name"`
	Item3Name    *string  `json:"item3_name"`
	PickRate     *float64 `json:"pickRate"`
	Games        *int     `json:"games"`
	WinRate      *float64 `json:"winRate"`
}

// SingleItemRec holds the columns shared by the single-item
// recommendation tables (general items and boots).
type SingleItemRec struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	ChampionID uint     `json:"champion_id" gorm:"not null"`
	ItemID     uint     `json:"item" gorm:"not null"`
	PickRate   *float64 `json:"pickRate"`
	Games      *int     `json:"games"`
	WinRate    *float64 `json:"winRate"`
}

type ItemRecommendation struct {
	SingleItemRec
}

type BootsRecommendation struct {
	SingleItemRec
}

// SingleItemRow is the joined view for single-item recommendations.
type SingleItemRow struct {
	ID           uint     `json:"id"`
	ChampionName string   `json:"champion_name"`
	ItemName     string   `json:"item_name"`
	PickRate     *float64 `json:"pickRate"`
	Games        *int     `json:"games"`
	WinRate      *float64 `json:"winRate"`
}

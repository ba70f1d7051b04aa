package domain

// BuildEntry is one (user, champion, item) row of a saved build. A build
// with N items produces N rows; there is no uniqueness constraint, so
// saving the same build again accumulates duplicate rows.
type BuildEntry struct {
	ID         uint `json:"id" gorm:"primaryKey"`
	UserID     uint `json:"user_id" gorm:"not null"`
	ChampionID uint `json:"champion_id" gorm:"not null"`
	ItemID     uint `json:"item_id" gorm:"not null"`
}

// BuildRow is the joined view returned by the build listing:
// build_entries INNER JOIN users, champions and items.
type BuildRow struct {
	BuildID       uint    `json:"build_id"`
	User          string  `json:"user"`
	Champion      string  `json:"champion"`
	ChampionTitle string  `json:"champion_title"`
	ItemName      string  `json:"item_name"`
	ItemPrice     int     `json:"item_price"`
	ItemImage     *string `json:"item_image"`
}

// BuildFilter narrows the build listing; nil fields impose no restriction.
type BuildFilter struct {
	UserID     *uint
	ChampionID *uint
}

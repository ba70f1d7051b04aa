package domain

type Item struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	Name     string  `json:"name" gorm:"uniqueIndex;not null"`
	Price    int     `json:"total"`
	ImageURL *string `json:"image"`
}

package models

type Event struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"size:255;not null"`
	EventDate   string `json:"event_date" gorm:"size:10;not null"` // YYYY-MM-DD
	Description string `json:"description" gorm:"type:text"`
}

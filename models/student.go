package models

type Student struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"size:255;not null"`
	Age   int    `json:"age"`
	Grade string `json:"grade" gorm:"size:100"`
	Email string `json:"email" gorm:"size:255"`
}

package entity

type Doctor struct {
	ID         int    `json:"id" gorm:"primaryKey"`
	Name       string `json:"name" gorm:"not null"`
	Specialty  string `json:"specialty" gorm:"not null"`
	Experience string `json:"experience"`
	Image      string `json:"image"`
}

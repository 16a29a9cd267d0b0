package models

type User struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Cpf   string `gorm:"default:''" json:"cpf"`
	Nome  string `gorm:"not null" json:"nome"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`
	Senha string `gorm:"not null" json:"-"`
	Cargo string `gorm:"default:'usuario'" json:"cargo"`
	Nivel *int   `json:"nivel"`
}

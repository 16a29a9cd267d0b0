package models

import "time"

// Chamado is a help-desk ticket. Prioridade runs 1 (critical) to 4 (low).
// Rows are never deleted; closing a chamado only flips Resolvido.
type Chamado struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Titulo           string    `gorm:"not null" json:"titulo"`
	Motivo           string    `gorm:"not null" json:"motivo"`
	Descricao        *string   `json:"descricao"`
	Prioridade       int       `gorm:"not null" json:"prioridade"`
	Resolvido        bool      `gorm:"default:false" json:"resolvido"`
	DataCriacao      time.Time `json:"dataCriacao"`
	UsuarioCriadorID *uint     `json:"usuarioCriadorId"`

	UsuarioCriador *User `gorm:"foreignKey:UsuarioCriadorID;constraint:OnDelete:SET NULL" json:"-"`
}

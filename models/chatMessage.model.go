package models

import "time"

// ChatMessage is one entry in a chamado's append-only conversation.
// Messages are never edited or deleted.
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	IDChamado uint      `gorm:"not null;index" json:"idChamado"`
	IDUsuario uint      `gorm:"not null" json:"idUsuario"`
	Mensagem  string    `gorm:"not null" json:"mensagem"`
	DataEnvio time.Time `json:"dataEnvio"`

	Chamado *Chamado `gorm:"foreignKey:IDChamado" json:"-"`
}

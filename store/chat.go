package store

import (
	"errors"
	"strings"
	"time"

	"helpdesk/models"

	"gorm.io/gorm"
)

// ErrInvalidMessage rejects empty or whitespace-only chat messages.
var ErrInvalidMessage = errors.New("mensagem must not be empty")

type ChatStore struct {
	db *gorm.DB
}

func NewChatStore(db *gorm.DB) *ChatStore {
	return &ChatStore{db: db}
}

// MessageRow is a chat message joined with the sender's display name.
// Nome is empty when the sender account was deleted.
type MessageRow struct {
	ID        uint      `json:"id"`
	IDChamado uint      `json:"idChamado"`
	IDUsuario uint      `json:"idUsuario"`
	Nome      string    `json:"nome"`
	Mensagem  string    `json:"mensagem"`
	DataEnvio time.Time `json:"dataEnvio"`
}

// Append stores a message on a chamado and returns its id. There is no check
// that the chamado is still open: messaging a resolved chamado is allowed,
// reopening is a separate explicit action.
func (s *ChatStore) Append(chamadoID, senderID uint, text string) (uint, error) {
	if strings.TrimSpace(text) == "" {
		return 0, ErrInvalidMessage
	}

	msg := models.ChatMessage{
		IDChamado: chamadoID,
		IDUsuario: senderID,
		Mensagem:  text,
		DataEnvio: time.Now().UTC(),
	}
	if err := s.db.Create(&msg).Error; err != nil {
		return 0, err
	}
	return msg.ID, nil
}

// List returns every message of a chamado ordered by send time then id.
// The chat view polls this; there is no pagination.
func (s *ChatStore) List(chamadoID uint) ([]MessageRow, error) {
	rows := make([]MessageRow, 0)
	err := s.db.Table("chat_messages").
		Select("chat_messages.id, chat_messages.id_chamado, chat_messages.id_usuario, COALESCE(users.nome, '') AS nome, chat_messages.mensagem, chat_messages.data_envio").
		Joins("LEFT JOIN users ON users.id = chat_messages.id_usuario").
		Where("chat_messages.id_chamado = ?", chamadoID).
		Order("chat_messages.data_envio ASC, chat_messages.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

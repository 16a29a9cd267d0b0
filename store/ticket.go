// Package store holds the persistence operations behind the HTTP handlers.
// Visibility decisions are made in policy; this package only executes the
// resulting filter descriptors.
package store

import (
	"strings"
	"time"

	"helpdesk/models"
	"helpdesk/policy"

	"gorm.io/gorm"
)

// ListLimit caps every chamado listing.
const ListLimit = 200

type TicketStore struct {
	db *gorm.DB
}

func NewTicketStore(db *gorm.DB) *TicketStore {
	return &TicketStore{db: db}
}

// ChamadoRow is a chamado joined with its creator's display name.
// NomeCriador is nil when the creator account was deleted.
type ChamadoRow struct {
	ID               uint      `json:"id"`
	Titulo           string    `json:"titulo"`
	Motivo           string    `json:"motivo"`
	Descricao        *string   `json:"descricao"`
	Prioridade       int       `json:"prioridade"`
	Resolvido        bool      `json:"resolvido"`
	DataCriacao      time.Time `json:"dataCriacao"`
	UsuarioCriadorID *uint     `json:"usuarioCriadorId"`
	NomeCriador      *string   `json:"nomeCriador"`
}

// Create persists a new chamado for the given creator and returns its id.
// DataCriacao is stamped at acceptance. When the caller did not pick a
// prioridade it is derived from the motivo.
func (s *TicketStore) Create(titulo, motivo string, descricao *string, prioridade *int, criadorID uint) (uint, error) {
	chamado := models.Chamado{
		Titulo:           strings.TrimSpace(titulo),
		Motivo:           strings.TrimSpace(motivo),
		Resolvido:        false,
		DataCriacao:      time.Now().UTC(),
		UsuarioCriadorID: &criadorID,
	}

	if descricao != nil {
		if d := strings.TrimSpace(*descricao); d != "" {
			chamado.Descricao = &d
		}
	}

	if prioridade != nil {
		chamado.Prioridade = *prioridade
	} else {
		chamado.Prioridade = PrioridadeForMotivo(motivo)
	}

	if err := s.db.Create(&chamado).Error; err != nil {
		return 0, err
	}
	return chamado.ID, nil
}

// ListFiltered applies a policy filter and returns at most ListLimit rows,
// newest id first, each joined with the creator's name.
func (s *TicketStore) ListFiltered(f policy.Filter) ([]ChamadoRow, error) {
	q := s.db.Table("chamados").
		Select("chamados.id, chamados.titulo, chamados.motivo, chamados.descricao, chamados.prioridade, chamados.resolvido, chamados.data_criacao, chamados.usuario_criador_id, users.nome AS nome_criador").
		Joins("LEFT JOIN users ON users.id = chamados.usuario_criador_id")

	if f.OwnerID != nil {
		q = q.Where("chamados.usuario_criador_id = ?", *f.OwnerID)
	}
	if f.MinPrioridade != nil {
		q = q.Where("chamados.prioridade >= ?", *f.MinPrioridade)
	}

	rows := make([]ChamadoRow, 0)
	err := q.Order("chamados.id DESC").Limit(ListLimit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// SetResolvido flips the resolved flag and reports how many rows changed.
// An unknown id is not an error; it reports zero.
func (s *TicketStore) SetResolvido(id uint, resolvido bool) (int64, error) {
	res := s.db.Model(&models.Chamado{}).Where("id = ?", id).Update("resolvido", resolvido)
	return res.RowsAffected, res.Error
}

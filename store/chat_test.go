package store

import (
	"testing"
	"time"

	"helpdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendRejectsEmptyMessage(t *testing.T) {
	db := newTestDB(t)
	chats := NewChatStore(db)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := chats.Append(1, 1, text)
		assert.ErrorIs(t, err, ErrInvalidMessage, "text %q", text)
	}

	var count int64
	require.NoError(t, db.Model(&models.ChatMessage{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAppendAndList(t *testing.T) {
	db := newTestDB(t)
	chats := NewChatStore(db)
	tickets := NewTicketStore(db)
	ana := seedUser(t, db, "Ana", "ana@example.com", "usuario", nil)
	tec := seedUser(t, db, "Tec", "tec@example.com", "suporte", intPtr(1))

	chamadoID, err := tickets.Create("Sem som", "Problemas com som", nil, nil, ana.ID)
	require.NoError(t, err)

	first, err := chats.Append(chamadoID, ana.ID, "o som parou")
	require.NoError(t, err)
	second, err := chats.Append(chamadoID, tec.ID, "ja verificou o volume?")
	require.NoError(t, err)
	require.Greater(t, second, first)

	rows, err := chats.List(chamadoID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "o som parou", rows[0].Mensagem)
	assert.Equal(t, "Ana", rows[0].Nome)
	assert.Equal(t, "ja verificou o volume?", rows[1].Mensagem)
	assert.Equal(t, "Tec", rows[1].Nome)
}

func TestListOrdersByTimestampThenID(t *testing.T) {
	db := newTestDB(t)
	chats := NewChatStore(db)

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	// inserted out of order on purpose; two share a timestamp
	seed := []models.ChatMessage{
		{IDChamado: 1, IDUsuario: 1, Mensagem: "terceira", DataEnvio: base.Add(2 * time.Minute)},
		{IDChamado: 1, IDUsuario: 1, Mensagem: "primeira", DataEnvio: base},
		{IDChamado: 1, IDUsuario: 1, Mensagem: "segunda", DataEnvio: base.Add(time.Minute)},
		{IDChamado: 1, IDUsuario: 1, Mensagem: "quarta", DataEnvio: base.Add(2 * time.Minute)},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	rows, err := chats.List(1)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	for i := 1; i < len(rows); i++ {
		prev, cur := rows[i-1], rows[i]
		if prev.DataEnvio.Equal(cur.DataEnvio) {
			assert.Less(t, prev.ID, cur.ID)
		} else {
			assert.True(t, prev.DataEnvio.Before(cur.DataEnvio))
		}
	}
	assert.Equal(t, "primeira", rows[0].Mensagem)
	assert.Equal(t, "terceira", rows[2].Mensagem)
	assert.Equal(t, "quarta", rows[3].Mensagem)
}

func TestAppendToResolvedChamado(t *testing.T) {
	db := newTestDB(t)
	chats := NewChatStore(db)
	tickets := NewTicketStore(db)
	ana := seedUser(t, db, "Ana", "ana@example.com", "usuario", nil)

	chamadoID, err := tickets.Create("Resolvido", "outros", nil, nil, ana.ID)
	require.NoError(t, err)
	_, err = tickets.SetResolvido(chamadoID, true)
	require.NoError(t, err)

	// messaging a closed chamado is fine; reopening is a separate action
	_, err = chats.Append(chamadoID, ana.ID, "ainda com problema")
	require.NoError(t, err)

	rows, err := chats.List(chamadoID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestListDeletedSenderName(t *testing.T) {
	db := newTestDB(t)
	chats := NewChatStore(db)
	users := NewUserStore(db)
	ghost := seedUser(t, db, "Ghost", "ghost@example.com", "usuario", nil)

	_, err := chats.Append(1, ghost.ID, "alguem ai?")
	require.NoError(t, err)

	_, err = users.Delete(ghost.ID)
	require.NoError(t, err)

	rows, err := chats.List(1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0].Nome)
}

func TestListScopedToChamado(t *testing.T) {
	db := newTestDB(t)
	chats := NewChatStore(db)

	_, err := chats.Append(1, 1, "no chamado um")
	require.NoError(t, err)
	_, err = chats.Append(2, 1, "no chamado dois")
	require.NoError(t, err)

	rows, err := chats.List(1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "no chamado um", rows[0].Mensagem)
}

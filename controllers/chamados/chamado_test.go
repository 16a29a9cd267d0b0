package chamadoController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"helpdesk/config"
	chamadoController "helpdesk/controllers/chamados"
	"helpdesk/middleware"
	"helpdesk/models"
	"helpdesk/routers/chamadoRoutes"
	"helpdesk/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	app *fiber.App
	db  *gorm.DB
	cfg *config.Config
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Chamado{}, &models.ChatMessage{}))

	cfg := &config.Config{JWTKey: "test-secret", SaltRound: 4}
	users := store.NewUserStore(db)
	tickets := store.NewTicketStore(db)

	app := fiber.New()
	authRequired := middleware.RequireIdentity(cfg, users)
	chamadoRoutes.SetupChamadoRoutes(app, authRequired, chamadoController.New(tickets))

	return &testEnv{app: app, db: db, cfg: cfg}
}

func (e *testEnv) addUser(t *testing.T, nome, email, cargo string, nivel *int) (models.User, string) {
	t.Helper()

	user := models.User{Nome: nome, Email: email, Senha: "hash", Cargo: cargo, Nivel: nivel}
	require.NoError(t, e.db.Create(&user).Error)

	token, err := middleware.GenerateJWT(e.cfg, &user)
	require.NoError(t, err)
	return user, token
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func TestListarRequiresToken(t *testing.T) {
	env := newTestEnv(t)

	resp, _ := env.request(t, "GET", "/chamados/", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestListarRejectsTokenOfDeletedUser(t *testing.T) {
	env := newTestEnv(t)
	user, token := env.addUser(t, "Ana", "ana@example.com", "usuario", nil)
	require.NoError(t, env.db.Delete(&models.User{}, user.ID).Error)

	resp, env2 := env.request(t, "GET", "/chamados/", token, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "User not found!", env2.Message)
}

func TestCriarValidation(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.addUser(t, "Ana", "ana@example.com", "usuario", nil)

	resp, _ := env.request(t, "POST", "/chamados/", token, fiber.Map{"titulo": "", "motivo": "outros"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = env.request(t, "POST", "/chamados/", token, fiber.Map{"titulo": "T", "motivo": "outros", "prioridade": 9})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCriarAndListarScopedToUsuario(t *testing.T) {
	env := newTestEnv(t)
	_, tokenA := env.addUser(t, "Alice", "alice@example.com", "usuario", nil)
	_, tokenB := env.addUser(t, "Bob", "bob@example.com", "usuario", nil)

	resp, body := env.request(t, "POST", "/chamados/", tokenA, fiber.Map{
		"titulo": "Sem video",
		"motivo": "Problema com video",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &created))
	require.NotZero(t, created.ID)

	// Alice sees her chamado with the derived prioridade
	resp, body = env.request(t, "GET", "/chamados/", tokenA, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var rows []store.ChamadoRow
	require.NoError(t, json.Unmarshal(body.Data, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].Prioridade)
	require.NotNil(t, rows[0].NomeCriador)
	assert.Equal(t, "Alice", *rows[0].NomeCriador)

	// Bob sees nothing of Alice's
	resp, body = env.request(t, "GET", "/chamados/", tokenB, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	rows = nil
	require.NoError(t, json.Unmarshal(body.Data, &rows))
	assert.Empty(t, rows)
}

func TestByUserForbiddenForUsuario(t *testing.T) {
	env := newTestEnv(t)
	_, tokenA := env.addUser(t, "Alice", "alice@example.com", "usuario", nil)
	bob, _ := env.addUser(t, "Bob", "bob@example.com", "usuario", nil)

	resp, _ := env.request(t, "POST", "/chamados/by-user", tokenA, fiber.Map{"userId": bob.ID})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestByUserAdminFiltersByOwner(t *testing.T) {
	env := newTestEnv(t)
	alice, tokenA := env.addUser(t, "Alice", "alice@example.com", "usuario", nil)
	_, tokenAdmin := env.addUser(t, "Root", "root@example.com", "admin", nil)

	_, body := env.request(t, "POST", "/chamados/", tokenA, fiber.Map{"titulo": "T", "motivo": "outros"})
	require.NotNil(t, body.Data)

	resp, body := env.request(t, "POST", "/chamados/by-user", tokenAdmin, fiber.Map{"userId": alice.ID})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var rows []store.ChamadoRow
	require.NoError(t, json.Unmarshal(body.Data, &rows))
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].UsuarioCriadorID)
	assert.Equal(t, alice.ID, *rows[0].UsuarioCriadorID)
}

func TestCloseReopenCounts(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.addUser(t, "Ana", "ana@example.com", "usuario", nil)

	_, body := env.request(t, "POST", "/chamados/", token, fiber.Map{"titulo": "T", "motivo": "outros"})
	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &created))

	var counted struct {
		Updated int64 `json:"updated"`
	}

	resp, body := env.request(t, "PUT", fmt.Sprintf("/chamados/%d/close", created.ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body.Data, &counted))
	assert.EqualValues(t, 1, counted.Updated)

	// closing twice is still a one-row update
	_, body = env.request(t, "PUT", fmt.Sprintf("/chamados/%d/close", created.ID), token, nil)
	require.NoError(t, json.Unmarshal(body.Data, &counted))
	assert.EqualValues(t, 1, counted.Updated)

	_, body = env.request(t, "PUT", "/chamados/9999/reopen", token, nil)
	require.NoError(t, json.Unmarshal(body.Data, &counted))
	assert.EqualValues(t, 0, counted.Updated)
}

func TestSuporteSeesPriorityBand(t *testing.T) {
	env := newTestEnv(t)
	_, tokenUser := env.addUser(t, "Ana", "ana@example.com", "usuario", nil)
	nivel := 3
	_, tokenSuporte := env.addUser(t, "Tec", "tec@example.com", "suporte", &nivel)

	for p := 1; p <= 4; p++ {
		env.request(t, "POST", "/chamados/", tokenUser, fiber.Map{
			"titulo": fmt.Sprintf("P%d", p), "motivo": "outros", "prioridade": p,
		})
	}

	resp, body := env.request(t, "GET", "/chamados/", tokenSuporte, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var rows []store.ChamadoRow
	require.NoError(t, json.Unmarshal(body.Data, &rows))
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.GreaterOrEqual(t, row.Prioridade, 3)
	}
}

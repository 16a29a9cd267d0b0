package aiController

import (
	"fmt"
	"os"
	"strings"

	"helpdesk/middleware"
	"helpdesk/utils"

	"github.com/gofiber/fiber/v2"
)

const maxOpiniaoLen = 500

const defaultPrompt = "Confirmação de abertura de chamado."

type Controller struct {
	gemini     *utils.GeminiClient
	promptPath string
}

func New(gemini *utils.GeminiClient) *Controller {
	return &Controller{
		gemini:     gemini,
		promptPath: "prompts/chamado_confirmacao.txt",
	}
}

// ChamadoInfo is the ticket summary the client sends for an opinion.
type ChamadoInfo struct {
	Titulo     string `json:"titulo"`
	Motivo     string `json:"motivo"`
	Descricao  string `json:"descricao"`
	Prioridade *int   `json:"prioridade"`
	Nome       string `json:"nome"`
	Email      string `json:"email"`
}

// ChamadoOpiniao generates a short confirmation text for a chamado being
// opened. With a configured Gemini key the filled prompt goes to the API;
// otherwise, or on any API failure, a locally built fallback is returned.
func (ctl *Controller) ChamadoOpiniao(c *fiber.Ctx) error {
	body := new(ChamadoInfo)
	if err := c.BodyParser(body); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	prompt := ctl.fillPrompt(body)

	if ctl.gemini.IsConfigured() {
		if text, err := ctl.gemini.Generate(prompt); err == nil {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Opinion generated.", fiber.Map{
				"text":  truncate(text, maxOpiniaoLen),
				"model": "gemini",
			})
		}
		// fall through to the local text on any API failure
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Opinion generated.", fiber.Map{
		"text":  buildFallback(body),
		"model": "fallback",
	})
}

func (ctl *Controller) fillPrompt(b *ChamadoInfo) string {
	tpl := defaultPrompt
	if raw, err := os.ReadFile(ctl.promptPath); err == nil {
		tpl = string(raw)
	}

	prioridade := ""
	if b.Prioridade != nil {
		prioridade = fmt.Sprintf("%d", *b.Prioridade)
	}

	return strings.NewReplacer(
		"{{titulo}}", b.Titulo,
		"{{motivo}}", b.Motivo,
		"{{descricao}}", b.Descricao,
		"{{prioridade}}", prioridade,
		"{{nome}}", b.Nome,
		"{{email}}", b.Email,
	).Replace(tpl)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

// buildFallback produces the confirmation text used when the AI call is
// unavailable: a short registration notice plus a first-aid tip keyed on
// the motivo.
func buildFallback(b *ChamadoInfo) string {
	motivo := strings.ToLower(b.Motivo)

	var sug string
	switch {
	case strings.Contains(motivo, "internet"):
		sug = "Reinicie o modem e verifique cabos."
	case strings.Contains(motivo, "som"), strings.Contains(motivo, "áudio"), strings.Contains(motivo, "audio"):
		sug = "Verifique volume e driver de áudio."
	case strings.Contains(motivo, "vídeo"), strings.Contains(motivo, "video"):
		sug = "Reinicie o app e atualize driver de vídeo."
	case strings.Contains(motivo, "mouse"):
		sug = "Troque a porta USB e limpe o sensor."
	case strings.Contains(motivo, "senha"):
		sug = "Tente redefinir a senha no portal."
	default:
		sug = "Reinicie o equipamento e verifique conexões."
	}

	prioridade := ""
	if b.Prioridade != nil {
		prioridade = fmt.Sprintf(", prioridade %d", *b.Prioridade)
	}

	text := fmt.Sprintf(
		"Olá %s, seu chamado foi registrado: %s (motivo: %s%s). Sugestão: %s Entraremos em contato em %s.",
		b.Nome, b.Titulo, b.Motivo, prioridade, sug, b.Email,
	)
	return truncate(text, maxOpiniaoLen)
}

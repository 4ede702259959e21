package submit_briefing

import (
	"strings"

	submitBriefing "github.com/m04kA/astroya-scheduling/internal/usecase/submit_briefing"
)

// SubmitBriefingRequest HTTP request model. Имена полей совпадают с формой сайта.
type SubmitBriefingRequest struct {
	Nome             string `json:"nome"`
	Email            string `json:"email"`
	Empresa          string `json:"empresa"`
	Telefone         string `json:"telefone"`
	Segmento         string `json:"segmento"`
	PossuiSite       string `json:"possuiSite"` // "sim" | "nao"
	LinkSite         string `json:"linkSite"`
	Objetivo         string `json:"objetivo"`
	OutroObjetivo    string `json:"outroObjetivo"`
	Servicos         string `json:"servicos"`
	IdentidadeVisual string `json:"identidadeVisual"`
	PublicoAlvo      string `json:"publicoAlvo"`
	Referencia       string `json:"referencia"`
	Fase             string `json:"fase"`
	Dificuldades     string `json:"dificuldades"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitBriefingRequest) ToUseCaseRequest() *submitBriefing.Request {
	return &submitBriefing.Request{
		Name:           r.Nome,
		Email:          r.Email,
		Company:        r.Empresa,
		Phone:          r.Telefone,
		Segment:        r.Segmento,
		HasWebsite:     strings.EqualFold(strings.TrimSpace(r.PossuiSite), "sim"),
		WebsiteURL:     r.LinkSite,
		Goal:           r.Objetivo,
		OtherGoal:      r.OutroObjetivo,
		Services:       r.Servicos,
		VisualIdentity: r.IdentidadeVisual,
		TargetAudience: r.PublicoAlvo,
		Reference:      r.Referencia,
		Stage:          r.Fase,
		Difficulties:   r.Dificuldades,
	}
}

package submit_consultation

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/m04kA/astroya-scheduling/internal/domain"
	"github.com/m04kA/astroya-scheduling/internal/integrations/mailer"
)

const inviteFilename = "convite_consultoria_astroya.ics"

type emailData struct {
	ClientName     string
	FirstName      string
	CompanyName    string
	ClientEmail    string
	CompanyWebsite string
	MainChallenge  string
	TargetAudience string
	Services       string
	Date           string
	Time           string
}

func newEmailData(req *domain.ConsultationRequest, formattedDate string) emailData {
	return emailData{
		ClientName:     req.ClientName,
		FirstName:      req.FirstName(),
		CompanyName:    req.CompanyName,
		ClientEmail:    req.ClientEmail,
		CompanyWebsite: req.CompanyWebsite,
		MainChallenge:  req.MainChallenge,
		TargetAudience: req.TargetAudience,
		Services:       req.ServicesText(),
		Date:           formattedDate,
		Time:           req.PreferredTime.String(),
	}
}

var operatorTemplate = template.Must(template.New("operator").Parse(`
<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="background-color: #f9f9f9; padding: 20px; border-radius: 8px;">
    <h2 style="color: #FF5500; border-bottom: 2px solid #9200BE; padding-bottom: 10px;">Nova Solicitação de Consultoria Recebida</h2>
    <p>Uma nova solicitação de consultoria foi feita através do site Astroya.</p>
    <p>Um convite de calendário (.ics) está anexado a este e-mail para fácil adição à sua agenda.</p>
    <h3 style="color: #8A2BE2; margin-top: 25px;">Detalhes da Solicitação:</h3>
    <ul style="list-style-type: none; padding-left: 0;">
      <li><strong>Nome do Solicitante:</strong> {{.ClientName}}</li>
      <li><strong>Empresa:</strong> {{.CompanyName}}</li>
      <li><strong>E-mail do Solicitante:</strong> {{.ClientEmail}}</li>
      <li><strong>Website:</strong> {{if .CompanyWebsite}}<a href="{{.CompanyWebsite}}" style="color: #FF5500;">{{.CompanyWebsite}}</a>{{else}}Não informado{{end}}</li>
      <li><strong>Principal Desafio/Objetivo:</strong> {{.MainChallenge}}</li>
      <li><strong>Público-Alvo:</strong> {{.TargetAudience}}</li>
      <li><strong>Serviços de Interesse:</strong> {{.Services}}</li>
      <li><strong>Data e Horário Preferidos:</strong> {{.Date}} às {{.Time}}</li>
    </ul>
    <p style="margin-top: 25px;"><strong>Próximos Passos:</strong></p>
    <p>Por favor, entre em contato com o solicitante através do e-mail <a href="mailto:{{.ClientEmail}}" style="color: #FF5500;">{{.ClientEmail}}</a> para confirmar o agendamento e alinhar os detalhes da consultoria.</p>
    <hr style="border: 0; border-top: 1px solid #eee; margin: 20px 0;">
    <p style="font-size: 0.9em; color: #777;">Este é um e-mail automático enviado pelo sistema de agendamento da Astroya.</p>
  </div>
</div>
`))

var clientTemplate = template.Must(template.New("client").Parse(`
<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="background-color: #f9f9f9; padding: 20px; border-radius: 8px;">
    <h2 style="color: #FF5500; border-bottom: 2px solid #9200BE; padding-bottom: 10px;">Olá {{.FirstName}}, sua solicitação foi recebida!</h2>
    <p>Obrigado por entrar em contato com a Astroya e solicitar uma consultoria estratégica gratuita.</p>
    <p>Recebemos seus dados e entraremos em contato em breve para confirmar o agendamento e discutir os próximos passos.</p>
    <p>Enviamos um convite de calendário (.ics) anexado a este e-mail para sua conveniência. Por favor, adicione-o à sua agenda.</p>
    <h3 style="color: #8A2BE2; margin-top: 25px;">Detalhes da sua Solicitação:</h3>
    <ul style="list-style-type: none; padding-left: 0;">
      <li><strong>Nome:</strong> {{.ClientName}}</li>
      <li><strong>Empresa:</strong> {{.CompanyName}}</li>
      {{if .CompanyWebsite}}<li><strong>Website:</strong> {{.CompanyWebsite}}</li>{{end}}
      <li><strong>Data e Horário Solicitados:</strong> {{.Date}} às {{.Time}}</li>
      <li><strong>Serviços de Interesse:</strong> {{.Services}}</li>
    </ul>
    <p style="margin-top: 25px;"><strong>O que acontece agora?</strong></p>
    <p>Nossa equipe analisará sua solicitação e entrará em contato com você pelo e-mail <strong>{{.ClientEmail}}</strong> para confirmar o horário e prepará-lo para nossa conversa.</p>
    <p style="margin-top: 25px;">Atenciosamente,</p>
    <p style="font-weight: bold; color: #FF5500;">Equipe Astroya</p>
    <hr style="border: 0; border-top: 1px solid #eee; margin: 20px 0;">
    <p style="font-size: 0.9em; color: #777;">Este é um e-mail de confirmação automático. Se você não solicitou esta consultoria, por favor, ignore este e-mail.</p>
  </div>
</div>
`))

func render(tmpl *template.Template, data emailData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %s: %v", mailer.ErrRender, tmpl.Name(), err)
	}
	return buf.String(), nil
}

// inviteDescription текст описания события
func inviteDescription(req *domain.ConsultationRequest, data emailData) string {
	website := req.CompanyWebsite
	if website == "" {
		website = "Não informado"
	}
	return fmt.Sprintf(`Solicitação de Consultoria Astroya:
Nome do Solicitante: %s
Empresa: %s
E-mail: %s
Website: %s
Principal Desafio: %s
Público-Alvo: %s
Serviços de Interesse: %s
Horário Solicitado: %s às %s`,
		req.ClientName, req.CompanyName, req.ClientEmail, website,
		req.MainChallenge, req.TargetAudience, data.Services, data.Date, data.Time)
}

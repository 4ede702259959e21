package submit_briefing

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/m04kA/astroya-scheduling/internal/domain"
	"github.com/m04kA/astroya-scheduling/internal/integrations/mailer"
)

type emailData struct {
	*domain.BriefingRequest
	GoalText string
	SentAt   string
	Year     int
}

var funcs = template.FuncMap{
	// lines разбивает многострочный текст для вывода через <br>
	"lines": func(s string) []string { return strings.Split(s, "\n") },
}

const section = `{{define "block"}}<div style="background:#F9F5FF;border-left:4px solid #FF5500;padding:16px;border-radius:0 8px 8px 0;margin:16px 0;font-size:15px;line-height:1.7;">{{range $i, $l := lines .}}{{if $i}}<br>{{end}}{{$l}}{{end}}</div>{{end}}`

var operatorTemplate = template.Must(template.New("operator").Funcs(funcs).Parse(section + `
<!DOCTYPE html>
<html lang="pt-BR">
<head><meta charset="UTF-8"><title>Nova Consultoria - {{.Company}}</title></head>
<body style="font-family: Arial, sans-serif; background: #F9F5FF; margin:0; padding:0;">
  <div style="max-width:600px;margin:20px auto;background:#fff;border-radius:12px;overflow:hidden;">
    <div style="background: linear-gradient(135deg, #9200BE, #AD33D1); padding:32px 20px; color:#fff; text-align:center;">
      <h1 style="margin:0;font-size:24px;font-weight:600;">NOVA CONSULTORIA DE LANDING PAGE</h1>
      <h2 style="margin:8px 0 0;font-size:18px;font-weight:400;">{{.Company}}</h2>
    </div>
    <div style="padding:32px;">
      <h3 style="color:#9200BE;">Informações do Cliente</h3>
      <p><strong>Nome:</strong> {{.Name}}<br><strong>E-mail:</strong> {{.Email}}<br><strong>Telefone:</strong> {{.Phone}}<br><strong>Segmento:</strong> {{.Segment}}</p>
      <h3 style="color:#9200BE;">Presença Online</h3>
      <p><strong>Possui site?</strong> {{if .HasWebsite}}Sim{{else}}Não{{end}}
      {{if .HasWebsite}}<br><strong>Link do site:</strong> {{if .WebsiteURL}}{{.WebsiteURL}}{{else}}Não informado{{end}}{{end}}
      <br><strong>Objetivo:</strong> {{.GoalText}}</p>
      <h3 style="color:#9200BE;">Serviços/Produtos</h3>
      {{template "block" .Services}}
      <h3 style="color:#9200BE;">Detalhes do Projeto</h3>
      <p><strong>Identidade Visual:</strong> {{.VisualIdentity}}<br><strong>Fase da Empresa:</strong> {{.Stage}}</p>
      <h3 style="color:#9200BE;">Público-Alvo</h3>
      {{template "block" .TargetAudience}}
      {{if .Reference}}<h3 style="color:#9200BE;">Referências</h3>
      {{template "block" .Reference}}{{end}}
      <h3 style="color:#9200BE;">Dificuldades</h3>
      {{template "block" .Difficulties}}
      <div style="margin-top:32px;text-align:center;color:#6A6A6A;font-size:12px;">Enviado em {{.SentAt}}</div>
    </div>
  </div>
</body>
</html>
`))

var clientTemplate = template.Must(template.New("client").Funcs(funcs).Parse(`
<!DOCTYPE html>
<html lang="pt-BR">
<head><meta charset="UTF-8"><title>Recebemos sua solicitação!</title></head>
<body style="font-family: Arial, sans-serif; background: #F9F5FF; margin:0; padding:20px;">
  <div style="max-width:600px;margin:20px auto;background:#fff;border-radius:12px;overflow:hidden;">
    <div style="background: linear-gradient(135deg, #9200BE, #AD33D1); padding:40px 20px; color:#fff; text-align:center;">
      <h1 style="margin:0;font-size:28px;font-weight:600;">OBRIGADO POR ENTRAR EM CONTATO!</h1>
      <p style="margin:8px 0 0;font-size:16px;">Estamos analisando sua solicitação de consultoria</p>
    </div>
    <div style="padding:32px;">
      <div style="font-size:20px;margin-bottom:24px;color:#0F0A15;">Olá, {{.Name}}!</div>
      <p style="color:#6A6A6A;line-height:1.8;">Recebemos sua solicitação de consultoria para criação de Landing Page e estamos muito felizes com seu interesse em nossos serviços.</p>
      <p style="color:#6A6A6A;line-height:1.8;">Nossa equipe já está analisando as informações que você nos enviou e em breve entraremos em contato para dar sequência ao seu atendimento.</p>
      <div style="background-color:#F9F5FF;border-radius:12px;padding:24px;margin:32px 0;">
        <div style="color:#9200BE;font-size:18px;font-weight:600;text-align:center;">Resumo do seu envio</div>
        <p><strong>Empresa:</strong> {{.Company}}<br><strong>Telefone:</strong> {{.Phone}}<br><strong>Segmento:</strong> {{.Segment}}<br><strong>Objetivo:</strong> {{.GoalText}}</p>
      </div>
      <p style="text-align:center;">Atenciosamente,<br><strong style="color:#9200BE;">Equipe Astroya</strong></p>
    </div>
    <div style="text-align:center;padding:24px;background-color:#0F0A15;color:rgba(255,255,255,0.7);font-size:12px;">
      <p>© {{.Year}} Astroya. Todos os direitos reservados.</p>
    </div>
  </div>
</body>
</html>
`))

func render(tmpl *template.Template, data emailData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %s: %v", mailer.ErrRender, tmpl.Name(), err)
	}
	return buf.String(), nil
}

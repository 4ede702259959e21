package submit_briefing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/astroya-scheduling/internal/domain"
	"github.com/m04kA/astroya-scheduling/internal/integrations/leadsheet"
	"github.com/m04kA/astroya-scheduling/internal/integrations/mailer"
	"github.com/m04kA/astroya-scheduling/pkg/logger"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type mockMailSender struct {
	mock.Mock
}

func (m *mockMailSender) Send(ctx context.Context, msg *mailer.Message) error {
	return m.Called(ctx, msg).Error(0)
}

type fakeLeads struct {
	leads []*leadsheet.Lead
}

func (f *fakeLeads) ForwardWithGracefulDegradation(_ context.Context, lead *leadsheet.Lead) {
	f.leads = append(f.leads, lead)
}

type countingMetrics struct {
	counts map[string]int
}

func (m *countingMetrics) IncNotification(channel, status string) {
	if m.counts == nil {
		m.counts = map[string]int{}
	}
	m.counts[channel+"/"+status]++
}

func settings() Settings {
	return Settings{
		From:     mailer.Address{Name: "Astroya", Email: "agenda@astroya.com.br"},
		Operator: mailer.Address{Name: "Operador", Email: "contato@astroya.com.br"},
	}
}

func validRequest() *Request {
	return &Request{
		Name:           "João",
		Email:          "joao@example.com",
		Company:        "Padaria <Central>",
		Phone:          "+55 11 99999-0000",
		Segment:        "Alimentação",
		HasWebsite:     true,
		Goal:           "outro",
		OtherGoal:      "Receber encomendas",
		Services:       "Pães\nBolos",
		TargetAudience: "Bairro",
		Difficulties:   "Pouca visibilidade",
	}
}

func TestExecute_Success(t *testing.T) {
	mail := mailer.NewLogSender(logger.NewNop())
	leads := &fakeLeads{}
	metrics := &countingMetrics{}

	uc := NewUseCase(mail, leads, metrics, settings(), logger.NewNop())
	uc.timeProvider = fixedTime{now: time.Date(2025, 6, 1, 15, 4, 5, 0, time.UTC)}

	require.NoError(t, uc.Execute(context.Background(), validRequest()))

	sent := mail.Sent()
	require.Len(t, sent, 2)

	operator := sent[0]
	assert.Equal(t, "contato@astroya.com.br", operator.To.Email)
	assert.Equal(t, "Nova Consultoria de Landing Page - Padaria <Central>", operator.Subject)
	assert.Contains(t, operator.HTML, "Padaria &lt;Central&gt;")
	assert.Contains(t, operator.HTML, "Pães<br>Bolos")
	assert.Contains(t, operator.HTML, "Receber encomendas")
	assert.Contains(t, operator.HTML, "Não informado")
	assert.Contains(t, operator.HTML, "01/06/2025 15:04:05")
	assert.NotContains(t, operator.HTML, "Referências")
	assert.Empty(t, operator.Attachments)

	client := sent[1]
	assert.Equal(t, "joao@example.com", client.To.Email)
	assert.Contains(t, client.HTML, "Olá, João!")
	assert.Contains(t, client.HTML, "© 2025 Astroya")

	require.Len(t, leads.leads, 1)
	assert.Equal(t, leadsheet.KindBriefing, leads.leads[0].Kind)
	assert.Equal(t, "Receber encomendas", leads.leads[0].Fields["goal"])
	assert.Equal(t, 2, metrics.counts["email/sent"])
}

func TestExecute_Validation(t *testing.T) {
	mail := &mockMailSender{}
	uc := NewUseCase(mail, nil, nil, settings(), logger.NewNop())

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{name: "missing name", mutate: func(r *Request) { r.Name = "  " }},
		{name: "missing email", mutate: func(r *Request) { r.Email = "" }},
		{name: "bad email", mutate: func(r *Request) { r.Email = "joao@" }},
		{name: "missing company", mutate: func(r *Request) { r.Company = "" }},
		{name: "missing phone", mutate: func(r *Request) { r.Phone = "" }},
		{name: "bad website", mutate: func(r *Request) { r.WebsiteURL = "padaria" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	mail.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestExecute_MailFailure(t *testing.T) {
	mail := &mockMailSender{}
	mail.On("Send", mock.Anything, mock.Anything).Return(nil).Once()
	mail.On("Send", mock.Anything, mock.Anything).Return(errors.New("quota exceeded")).Once()
	leads := &fakeLeads{}
	metrics := &countingMetrics{}

	uc := NewUseCase(mail, leads, metrics, settings(), logger.NewNop())
	err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, domain.ErrNotification)
	assert.Empty(t, leads.leads)
	assert.Equal(t, 1, metrics.counts["email/sent"])
	assert.Equal(t, 1, metrics.counts["email/error"])
	mail.AssertNumberOfCalls(t, "Send", 2)
}

func TestExecute_FieldError(t *testing.T) {
	uc := NewUseCase(&mockMailSender{}, nil, nil, settings(), logger.NewNop())

	req := validRequest()
	req.Phone = ""
	err := uc.Execute(context.Background(), req)

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "telefone", fieldErr.Field)
	assert.Equal(t, "required", fieldErr.Tag)

	req = validRequest()
	req.Email = "joao"
	err = uc.Execute(context.Background(), req)
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "email", fieldErr.Field)
	assert.Equal(t, "email", fieldErr.Tag)
}

package domain

import (
	"strings"

	"github.com/m04kA/astroya-scheduling/pkg/types"
)

// Названия услуг, как они показываются клиенту
const (
	ServiceLandingPageTitle = "Criação de Landing Pages de Alta Conversão"
	ServiceSEOTitle         = "Otimização SEO para Melhor Visibilidade"
	ServiceMaintenanceTitle = "Manutenção Contínua e Suporte Técnico"
	NoServicesSelectedTitle = "Nenhum serviço específico selecionado"
)

// ConsultationRequest заявка на бесплатную консультацию
type ConsultationRequest struct {
	ClientName         string `validate:"required,min=2"`
	CompanyName        string `validate:"required,min=2"`
	ClientEmail        string `validate:"required,email"`
	CompanyWebsite     string `validate:"omitempty,url"`
	MainChallenge      string `validate:"required,min=10,max=300"`
	TargetAudience     string `validate:"required,min=5,max=200"`
	ServiceLandingPage bool
	ServiceSEO         bool
	ServiceMaintenance bool
	PreferredDate      types.DateString `validate:"required"`
	PreferredTime      types.TimeString `validate:"required"`
}

// Services выбранные услуги в порядке отображения
func (r *ConsultationRequest) Services() []string {
	var out []string
	if r.ServiceLandingPage {
		out = append(out, ServiceLandingPageTitle)
	}
	if r.ServiceSEO {
		out = append(out, ServiceSEOTitle)
	}
	if r.ServiceMaintenance {
		out = append(out, ServiceMaintenanceTitle)
	}
	return out
}

// ServicesText услуги одной строкой
func (r *ConsultationRequest) ServicesText() string {
	services := r.Services()
	if len(services) == 0 {
		return NoServicesSelectedTitle
	}
	return strings.Join(services, ", ")
}

// FirstName имя клиента для приветствия
func (r *ConsultationRequest) FirstName() string {
	fields := strings.Fields(r.ClientName)
	if len(fields) == 0 {
		return r.ClientName
	}
	return fields[0]
}

// BriefingRequest бриф на разработку лендинга
type BriefingRequest struct {
	Name           string `validate:"required"`
	Email          string `validate:"required,email"`
	Company        string `validate:"required"`
	Phone          string `validate:"required"`
	Segment        string
	HasWebsite     bool
	WebsiteURL     string `validate:"omitempty,url"`
	Goal           string
	OtherGoal      string
	Services       string
	VisualIdentity string
	TargetAudience string
	Reference      string
	Stage          string
	Difficulties   string
}

// GoalText цель проекта: "outro" раскрывается в пользовательский вариант
func (r *BriefingRequest) GoalText() string {
	if r.Goal == "outro" && r.OtherGoal != "" {
		return r.OtherGoal
	}
	return r.Goal
}

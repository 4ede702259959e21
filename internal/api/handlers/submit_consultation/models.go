package submit_consultation

import (
	submitConsultation "github.com/m04kA/astroya-scheduling/internal/usecase/submit_consultation"
)

// SubmitConsultationRequest HTTP request model
type SubmitConsultationRequest struct {
	ClientName         string `json:"clientName"`
	CompanyName        string `json:"companyName"`
	ClientEmail        string `json:"clientEmail"`
	CompanyWebsite     string `json:"companyWebsite"`
	MainChallenge      string `json:"mainChallenge"`
	TargetAudience     string `json:"targetAudience"`
	ServiceLandingPage bool   `json:"serviceLandingPage"`
	ServiceSEO         bool   `json:"serviceSEO"`
	ServiceMaintenance bool   `json:"serviceMaintenance"`
	PreferredDate      string `json:"preferredDate"`
	PreferredTime      string `json:"preferredTime"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitConsultationRequest) ToUseCaseRequest() *submitConsultation.Request {
	return &submitConsultation.Request{
		ClientName:         r.ClientName,
		CompanyName:        r.CompanyName,
		ClientEmail:        r.ClientEmail,
		CompanyWebsite:     r.CompanyWebsite,
		MainChallenge:      r.MainChallenge,
		TargetAudience:     r.TargetAudience,
		ServiceLandingPage: r.ServiceLandingPage,
		ServiceSEO:         r.ServiceSEO,
		ServiceMaintenance: r.ServiceMaintenance,
		PreferredDate:      r.PreferredDate,
		PreferredTime:      r.PreferredTime,
	}
}

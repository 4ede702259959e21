package leadsheet

// Виды заявок
const (
	KindConsultation = "consultation"
	KindBriefing     = "briefing"
)

// Lead заявка, отправляемая в вебхук
type Lead struct {
	Kind    string            `json:"kind"`
	Name    string            `json:"name"`
	Email   string            `json:"email"`
	Company string            `json:"company"`
	Phone   string            `json:"phone,omitempty"`
	Date    string            `json:"date,omitempty"`
	Time    string            `json:"time,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// ErrorResponse модель ошибки от вебхука
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

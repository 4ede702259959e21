package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/astroya-scheduling/internal/usecase/get_available_slots"
	"github.com/m04kA/astroya-scheduling/pkg/types"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date             string          `json:"date"`
	UnavailableSlots []string        `json:"unavailableSlots"`
	AvailableSlots   []string        `json:"availableSlots"`
	Slots            []AvailableSlot `json:"slots"`
	IsPast           bool            `json:"isPast"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Available       bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
			Available:       slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		Date:             resp.Date.String(),
		UnavailableSlots: toStrings(resp.UnavailableSlots),
		AvailableSlots:   toStrings(resp.AvailableSlots),
		Slots:            slots,
		IsPast:           resp.IsPast,
	}
}

func toStrings(times []types.TimeString) []string {
	out := make([]string, len(times))
	for i, t := range times {
		out[i] = t.String()
	}
	return out
}

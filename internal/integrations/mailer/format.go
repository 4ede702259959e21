package mailer

import (
	"fmt"
	"time"
)

var monthsPtBR = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// FormatDatePtBR дата в формате "10 de junho de 2025"
func FormatDatePtBR(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), monthsPtBR[t.Month()-1], t.Year())
}

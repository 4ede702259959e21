package mailer

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

const (
	icsTimeFormat = "20060102T150405Z"
	icsLineLimit  = 75

	// InviteContentType тип вложения с приглашением
	InviteContentType = "text/calendar; charset=utf-8; method=REQUEST"
)

// Invite событие календаря (RFC 5545), отправляемое вложением
type Invite struct {
	UID         string
	Stamp       time.Time
	Start       time.Time
	End         time.Time
	Summary     string
	Description string
	Location    string
	Organizer   Address
	Attendee    Address
}

// Bytes сериализует приглашение в VCALENDAR с одним VEVENT
func (i *Invite) Bytes() []byte {
	var b bytes.Buffer

	writeLine(&b, "BEGIN:VCALENDAR")
	writeLine(&b, "VERSION:2.0")
	writeLine(&b, "PRODID:-//Astroya//Agendamento//PT")
	writeLine(&b, "CALSCALE:GREGORIAN")
	writeLine(&b, "METHOD:REQUEST")
	writeLine(&b, "BEGIN:VEVENT")
	writeLine(&b, "UID:"+i.UID)
	writeLine(&b, "DTSTAMP:"+i.Stamp.UTC().Format(icsTimeFormat))
	writeLine(&b, "DTSTART:"+i.Start.UTC().Format(icsTimeFormat))
	writeLine(&b, "DTEND:"+i.End.UTC().Format(icsTimeFormat))
	writeLine(&b, "SUMMARY:"+escapeText(i.Summary))
	writeLine(&b, "DESCRIPTION:"+escapeText(i.Description))
	if i.Location != "" {
		writeLine(&b, "LOCATION:"+escapeText(i.Location))
	}
	writeLine(&b, fmt.Sprintf("ORGANIZER;CN=%s:MAILTO:%s", quoteParam(i.Organizer.Name), i.Organizer.Email))
	writeLine(&b, fmt.Sprintf("ATTENDEE;CN=%s;ROLE=REQ-PARTICIPANT:MAILTO:%s", quoteParam(i.Attendee.Name), i.Attendee.Email))
	writeLine(&b, "STATUS:TENTATIVE")
	writeLine(&b, "SEQUENCE:0")
	writeLine(&b, "END:VEVENT")
	writeLine(&b, "END:VCALENDAR")

	return b.Bytes()
}

// Attachment приглашение как вложение письма
func (i *Invite) Attachment(filename string) Attachment {
	return Attachment{
		Filename:    filename,
		ContentType: InviteContentType,
		Content:     i.Bytes(),
	}
}

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	";", `\;`,
	",", `\,`,
	"\r\n", `\n`,
	"\n", `\n`,
)

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// quoteParam значение параметра в DQUOTE. Внутри quoted-string не допускаются DQUOTE и управляющие символы
func quoteParam(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r == '"' || r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
	return `"` + cleaned + `"`
}

// writeLine пишет строку с переносом длинных строк: не более 75 октетов
// на физическую строку, включая ведущий пробел продолжения
func writeLine(b *bytes.Buffer, line string) {
	limit := icsLineLimit
	for len(line) > limit {
		cut := limit
		// не режем посередине UTF-8 символа
		for cut > 0 && !isRuneStart(line[cut]) {
			cut--
		}
		b.WriteString(line[:cut])
		b.WriteString("\r\n ")
		line = line[cut:]
		limit = icsLineLimit - 1
	}
	b.WriteString(line)
	b.WriteString("\r\n")
}

func isRuneStart(c byte) bool {
	return c&0xC0 != 0x80
}

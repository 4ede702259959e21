package mailer

// Address адрес отправителя или получателя
type Address struct {
	Name  string
	Email string
}

// Attachment вложение письма
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Message письмо
type Message struct {
	From        Address
	To          Address
	Subject     string
	HTML        string
	Attachments []Attachment
}

package smtp

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	smtpPkg "net/smtp"
	"net/textproto"
	"os"
)

type ItfSmtp interface {
	SendPrintRequest(phoneNumber, eventCode, fileName string, attachment []byte) error
}

type smtp struct {
	auth      smtpPkg.Auth
	mail      string
	host      string
	port      string
	printDesk string
}

func New() ItfSmtp {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	mail := os.Getenv("SMTP_MAIL")
	password := os.Getenv("SMTP_PASSWORD")
	auth := smtpPkg.PlainAuth("", mail, password, host)

	return &smtp{
		auth:      auth,
		mail:      mail,
		host:      host,
		port:      port,
		printDesk: os.Getenv("PRINT_DESK_EMAIL"),
	}
}

// SendPrintRequest mails the print desk a plain-text body with the requester's
// details and the photo attached as a single base64 part.
func (s *smtp) SendPrintRequest(phoneNumber, eventCode, fileName string, attachment []byte) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	buf2 := bytes.Buffer{}
	buf2.WriteString(fmt.Sprintf("From: %s\r\n", s.mail))
	buf2.WriteString(fmt.Sprintf("To: %s\r\n", s.printDesk))
	buf2.WriteString("Subject: Print Request from ZisionX\r\n")
	buf2.WriteString("MIME-Version: 1.0\r\n")
	buf2.WriteString(fmt.Sprintf("Content-Type: multipart/mixed; boundary=%q\r\n", writer.Boundary()))
	buf2.WriteString("\r\n")

	textHeader := textproto.MIMEHeader{}
	textHeader.Set("Content-Type", "text/plain; charset=utf-8")
	textPart, err := writer.CreatePart(textHeader)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(textPart, "Phone Number: %s\nEvent Code: %s", phoneNumber, eventCode); err != nil {
		return err
	}

	attachmentHeader := textproto.MIMEHeader{}
	attachmentHeader.Set("Content-Type", "application/octet-stream")
	attachmentHeader.Set("Content-Transfer-Encoding", "base64")
	attachmentHeader.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.JPG", fileName))
	attachmentPart, err := writer.CreatePart(attachmentHeader)
	if err != nil {
		return err
	}

	encoder := base64.NewEncoder(base64.StdEncoding, attachmentPart)
	if _, err := encoder.Write(attachment); err != nil {
		return err
	}
	if err := encoder.Close(); err != nil {
		return err
	}

	if err := writer.Close(); err != nil {
		return err
	}

	buf2.Write(buf.Bytes())

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtpPkg.SendMail(addr, s.auth, s.mail, []string{s.printDesk}, buf2.Bytes()); err != nil {
		return err
	}

	return nil
}

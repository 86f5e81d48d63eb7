package mail

import "fmt"

// OTP email subjects, matching the two issuance flows.
const (
	SubjectRegistration  = "Registration Otp"
	SubjectPasswordReset = "Password Reset otp"
)

// SendOTP mails a one-time passcode to a single recipient.
func (s *Sender) SendOTP(to, subject, code string) error {
	return s.Send(Message{
		To:      []string{to},
		Subject: subject,
		HTML:    fmt.Sprintf("<h1>%s</h1><p>Your OTP is: <strong>%s</strong></p>", subject, code),
	})
}

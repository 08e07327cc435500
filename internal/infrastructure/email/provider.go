package email

import "log"

// NewSenderFromProvider picks the delivery backend by name. An unknown
// provider or a missing API key falls back to the simulated sender.
func NewSenderFromProvider(provider, apiKey, from string) Sender {
	switch {
	case provider == "resend" && apiKey != "":
		return NewResendSender(apiKey, from)
	case provider == "sendgrid" && apiKey != "":
		return NewSendGridSender(apiKey, from)
	default:
		if provider != "log" {
			log.Printf("⚠️ email provider %q not usable, falling back to simulated delivery", provider)
		}
		return NewLogSender()
	}
}

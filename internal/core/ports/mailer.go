package ports

import "context"

// Mailer delivers account emails.
type Mailer interface {
	SendVerificationEmail(ctx context.Context, email, code string) error
}

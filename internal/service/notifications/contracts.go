package notifications

import (
	"context"

	"github.com/arnakr/AeroPark-Service/internal/integrations/mailclient"
	"github.com/arnakr/AeroPark-Service/internal/integrations/userdirectory"
)

// MailSender interface for the transactional mail collaborator
type MailSender interface {
	Send(ctx context.Context, msg *mailclient.Message) error
}

// UserDirectoryClient interface for the account service
type UserDirectoryClient interface {
	GetContact(ctx context.Context, userID int64) (*userdirectory.Contact, error)
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

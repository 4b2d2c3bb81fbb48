// Package messages receives contact-form submissions. Submissions are
// insert-only: the public site never reads them back.
package messages

import (
	"context"
	"strings"

	goerrors "github.com/goliatone/go-errors"

	"github.com/kallosgym/cms/content"
	"github.com/kallosgym/cms/internal/logging"
	"github.com/kallosgym/cms/pkg/interfaces"
	"github.com/kallosgym/cms/remote"
)

const submissionInvalidCode = "MESSAGE_VALIDATION_FAILED"

// Service validates and persists inbound messages.
type Service struct {
	remote remote.Store
	logger interfaces.Logger
}

// NewService builds the message service.
func NewService(remoteStore remote.Store, provider interfaces.LoggerProvider) *Service {
	return &Service{
		remote: remoteStore,
		logger: logging.MessagesLogger(provider),
	}
}

// Submit validates and stores one submission. Whitespace around the fields
// is trimmed before validation so padded input can't sneak past Required.
func (s *Service) Submit(ctx context.Context, msg *content.Message) error {
	record := msg.Clone()
	record.Name = strings.TrimSpace(record.Name)
	record.Email = strings.TrimSpace(record.Email)
	record.Phone = strings.TrimSpace(record.Phone)
	record.Message = strings.TrimSpace(record.Message)

	if err := record.Validate(); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryValidation, "message validation failed").
			WithTextCode(submissionInvalidCode)
	}

	if err := s.remote.InsertMessage(ctx, record); err != nil {
		s.logger.Error("message insert failed", "error", err)
		return &content.SaveError{Collection: remote.CollectionMessages, Create: err}
	}

	s.logger.Info("message received", "email", record.Email)
	return nil
}

// List returns every stored submission, oldest first. Admin-only surface.
func (s *Service) List(ctx context.Context) ([]*content.Message, error) {
	return s.remote.FetchMessages(ctx)
}

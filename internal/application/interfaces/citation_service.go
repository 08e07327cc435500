package interfaces

import (
	"context"

	"github.com/Jachacon12/arquitectura-de-servidores/internal/application/command"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/application/query"
)

type CitationService interface {
	CreateCitation(ctx context.Context, createCommand *command.CreateCitationCommand) (*command.CreateCitationCommandResult, error)
	ListCitations(ctx context.Context) (*query.CitationListQueryResult, error)
	FindCitationById(ctx context.Context, id string) (*query.CitationQueryResult, error)
	UpdateCitation(ctx context.Context, updateCommand *command.UpdateCitationCommand) (*command.UpdateCitationCommandResult, error)
	DeleteCitation(ctx context.Context, id string) error
}

package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Jachacon12/arquitectura-de-servidores/internal/application/command"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/application/interfaces"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/application/mapper"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/application/query"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/domain/entities"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/domain/repositories"
)

type CitationService struct {
	citationRepo repositories.CitationRepository
}

func NewCitationService(citationRepo repositories.CitationRepository) interfaces.CitationService {
	return &CitationService{citationRepo: citationRepo}
}

func (s *CitationService) CreateCitation(ctx context.Context, createCommand *command.CreateCitationCommand) (*command.CreateCitationCommandResult, error) {
	userID, err := primitive.ObjectIDFromHex(createCommand.UserID)
	if err != nil {
		return nil, entities.ErrUserNotFound
	}

	citation := entities.NewCitation(
		createCommand.Title,
		createCommand.Text,
		createCommand.Author,
		createCommand.Source,
		createCommand.Year,
		userID,
	)
	if err := citation.Validate(); err != nil {
		return nil, err
	}

	created, err := s.citationRepo.Create(ctx, citation)
	if err != nil {
		return nil, err
	}

	return &command.CreateCitationCommandResult{
		Result: mapper.NewCitationResultFromEntity(created),
	}, nil
}

func (s *CitationService) ListCitations(ctx context.Context) (*query.CitationListQueryResult, error) {
	citations, err := s.citationRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &query.CitationListQueryResult{
		Result: mapper.NewCitationResultsFromEntities(citations),
	}, nil
}

func (s *CitationService) FindCitationById(ctx context.Context, id string) (*query.CitationQueryResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, entities.ErrCitationNotFound
	}

	citation, err := s.citationRepo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if citation == nil {
		return nil, entities.ErrCitationNotFound
	}

	return &query.CitationQueryResult{
		Result: mapper.NewCitationResultFromEntity(citation),
	}, nil
}

func (s *CitationService) UpdateCitation(ctx context.Context, updateCommand *command.UpdateCitationCommand) (*command.UpdateCitationCommandResult, error) {
	objectID, err := primitive.ObjectIDFromHex(updateCommand.ID)
	if err != nil {
		return nil, entities.ErrCitationNotFound
	}

	citation, err := s.citationRepo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if citation == nil {
		return nil, entities.ErrCitationNotFound
	}

	if updateCommand.Title != nil {
		citation.Title = *updateCommand.Title
	}
	if updateCommand.Text != nil {
		citation.Text = *updateCommand.Text
	}
	if updateCommand.Author != nil {
		citation.Author = *updateCommand.Author
	}
	if updateCommand.Source != nil {
		citation.Source = *updateCommand.Source
	}
	if updateCommand.Year != nil {
		citation.Year = *updateCommand.Year
	}

	if err := citation.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.citationRepo.Update(ctx, citation)
	if err != nil {
		return nil, err
	}

	return &command.UpdateCitationCommandResult{
		Result: mapper.NewCitationResultFromEntity(updated),
	}, nil
}

func (s *CitationService) DeleteCitation(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return entities.ErrCitationNotFound
	}
	return s.citationRepo.Delete(ctx, objectID)
}

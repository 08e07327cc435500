package mapper

import (
	"github.com/Jachacon12/arquitectura-de-servidores/internal/application/common"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/domain/entities"
)

func NewCitationResultFromEntity(citation *entities.Citation) *common.CitationResult {
	if citation == nil {
		return nil
	}

	return &common.CitationResult{
		Id:        citation.ID.Hex(),
		Title:     citation.Title,
		Text:      citation.Text,
		Author:    citation.Author,
		Source:    citation.Source,
		Year:      citation.Year,
		User:      citation.UserID.Hex(),
		CreatedAt: citation.CreatedAt,
		UpdatedAt: citation.UpdatedAt,
	}
}

func NewCitationResultsFromEntities(citations []*entities.Citation) []*common.CitationResult {
	results := make([]*common.CitationResult, 0, len(citations))
	for _, c := range citations {
		results = append(results, NewCitationResultFromEntity(c))
	}
	return results
}

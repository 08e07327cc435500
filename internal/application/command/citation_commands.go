package command

import (
	"github.com/Jachacon12/arquitectura-de-servidores/internal/application/common"
)

type CreateCitationCommand struct {
	Title  string `json:"title"`
	Text   string `json:"text"`
	Author string `json:"author"`
	Source string `json:"source"`
	Year   int    `json:"year"`
	UserID string `json:"-"`
}

type CreateCitationCommandResult struct {
	Result *common.CitationResult
}

// UpdateCitationCommand carries a partial update; nil fields are left
// untouched.
type UpdateCitationCommand struct {
	ID     string  `json:"-"`
	Title  *string `json:"title"`
	Text   *string `json:"text"`
	Author *string `json:"author"`
	Source *string `json:"source"`
	Year   *int    `json:"year"`
}

type UpdateCitationCommandResult struct {
	Result *common.CitationResult
}

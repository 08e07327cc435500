package query

import "github.com/Jachacon12/arquitectura-de-servidores/internal/application/common"

type CitationQueryResult struct {
	Result *common.CitationResult
}

type CitationListQueryResult struct {
	Result []*common.CitationResult
}

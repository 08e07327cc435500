package query

import "github.com/Jachacon12/arquitectura-de-servidores/internal/application/common"

type UserQueryResult struct {
	Result *common.UserResult
}

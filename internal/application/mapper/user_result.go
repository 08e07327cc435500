package mapper

import (
	"github.com/Jachacon12/arquitectura-de-servidores/internal/application/common"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	if user == nil {
		return nil
	}

	return &common.UserResult{
		Id:        user.ID.Hex(),
		Name:      user.Name,
		Email:     user.Email,
		Active:    user.Active,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

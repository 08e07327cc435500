package interfaces

import (
	"context"

	"github.com/Jachacon12/arquitectura-de-servidores/internal/application/command"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/application/query"
)

type UserService interface {
	RegisterUser(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error)
	VerifyUser(ctx context.Context, verifyCommand *command.VerifyUserCommand) (*command.VerifyUserCommandResult, error)
	LoginUser(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
	FindUserById(ctx context.Context, id string) (*query.UserQueryResult, error)
}

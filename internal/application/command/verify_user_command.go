package command

type VerifyUserCommand struct {
	Token string `json:"token"`
}

type VerifyUserCommandResult struct {
	Message string `json:"message"`
}

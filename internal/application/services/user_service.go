package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Jachacon12/arquitectura-de-servidores/internal/application/command"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/application/interfaces"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/application/mapper"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/application/query"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/domain/entities"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/domain/repositories"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/infrastructure"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/infrastructure/email"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/infrastructure/messaging"
)

type UserService struct {
	userRepo        repositories.UserRepository
	jwtService      *infrastructure.JWTService
	emailSender     email.Sender
	rateLimiter     *infrastructure.RateLimiter
	redisService    *infrastructure.RedisService
	publisher       *messaging.Publisher
	verificationTTL time.Duration
	// requireVerified gates login on a verified account. The plain-JWT
	// variant of this API runs with it off.
	requireVerified bool
}

func NewUserService(
	userRepo repositories.UserRepository,
	jwtService *infrastructure.JWTService,
	emailSender email.Sender,
	rateLimiter *infrastructure.RateLimiter,
	redisService *infrastructure.RedisService,
	publisher *messaging.Publisher,
	verificationTTL time.Duration,
	requireVerified bool,
) interfaces.UserService {
	return &UserService{
		userRepo:        userRepo,
		jwtService:      jwtService,
		emailSender:     emailSender,
		rateLimiter:     rateLimiter,
		redisService:    redisService,
		publisher:       publisher,
		verificationTTL: verificationTTL,
		requireVerified: requireVerified,
	}
}

func (s *UserService) RegisterUser(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error) {
	if !s.rateLimiter.Allow("register:" + registerCommand.Email) {
		return nil, entities.ErrTooManyRequests
	}

	existingUser, err := s.userRepo.FindByEmail(ctx, registerCommand.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, entities.ErrUserAlreadyExists
	}

	newUser := entities.NewUser(registerCommand.Name, registerCommand.Email, registerCommand.Password)
	if err := newUser.HashPassword(); err != nil {
		return nil, err
	}

	verificationToken, err := entities.GenerateVerificationToken()
	if err != nil {
		return nil, err
	}
	newUser.BeginVerification(verificationToken, time.Now().Add(s.verificationTTL))

	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, err
	}

	// The unique index makes this the arbiter for concurrent registrations
	// with the same email: one insert wins, the other comes back as a
	// duplicate.
	createdUser, err := s.userRepo.Create(ctx, validatedUser)
	if err != nil {
		return nil, err
	}

	verificationLink := fmt.Sprintf("http://%s/api/users/verify/%s", registerCommand.Host, verificationToken)

	// Delivery runs off the request path and is best effort; a slow or
	// bounced email must not delay or undo the registration.
	emailTo := createdUser.Email
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.emailSender.Send(ctx,
			emailTo,
			"Account Verification",
			fmt.Sprintf("Please click this link to verify your account: %s", verificationLink),
		); err != nil {
			log.Printf("Failed to send verification email to %s: %v", emailTo, err)
		}
	}()

	if err := s.publisher.Publish(messaging.SubjectUserCreated, mapper.NewUserResultFromEntity(createdUser)); err != nil {
		log.Printf("Failed to publish %s event: %v", messaging.SubjectUserCreated, err)
	}

	token, err := s.jwtService.GenerateToken(createdUser.ID.Hex())
	if err != nil {
		return nil, err
	}

	return &command.RegisterUserCommandResult{
		Token:            token,
		Message:          "User created. Please check your email to verify your account.",
		VerificationLink: verificationLink,
	}, nil
}

func (s *UserService) VerifyUser(ctx context.Context, verifyCommand *command.VerifyUserCommand) (*command.VerifyUserCommandResult, error) {
	// The store consumes the token in a single step, so of two concurrent
	// presentations exactly one activates the account.
	user, err := s.userRepo.ConsumeVerificationToken(ctx, verifyCommand.Token, time.Now())
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, entities.ErrInvalidVerificationToken
	}

	if err := s.publisher.Publish(messaging.SubjectUserVerified, mapper.NewUserResultFromEntity(user)); err != nil {
		log.Printf("Failed to publish %s event: %v", messaging.SubjectUserVerified, err)
	}

	return &command.VerifyUserCommandResult{
		Message: "Account verified successfully. You can now log in.",
	}, nil
}

func (s *UserService) LoginUser(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	if !s.rateLimiter.Allow("login:" + loginCommand.Email) {
		return nil, entities.ErrTooManyRequests
	}

	// An unknown email and a wrong password must be indistinguishable to
	// the caller.
	user, err := s.userRepo.FindByEmail(ctx, loginCommand.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, entities.ErrInvalidCredentials
	}

	if s.requireVerified && !user.Active {
		return nil, entities.ErrAccountNotActive
	}

	if err := user.CheckPassword(loginCommand.Password); err != nil {
		return nil, err
	}

	accessToken, err := s.jwtService.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, err
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.redisService.SetToken(ctx, accessToken, user.ID.Hex(), s.jwtService.TTL()); err != nil {
			log.Printf("Failed to cache access token: %v", err)
		}
	}()

	return &command.LoginUserCommandResult{
		AccessToken: accessToken,
	}, nil
}

func (s *UserService) FindUserById(ctx context.Context, id string) (*query.UserQueryResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, entities.ErrUserNotFound
	}

	user, err := s.userRepo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, entities.ErrUserNotFound
	}

	return &query.UserQueryResult{
		Result: mapper.NewUserResultFromEntity(user),
	}, nil
}

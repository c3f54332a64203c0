package services

import (
	"errors"
	"net/http"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/quasar-gd/quasar_api/dto"
	"github.com/quasar-gd/quasar_api/model"
	"github.com/quasar-gd/quasar_api/services/repositories"
	"github.com/quasar-gd/quasar_api/shared"
)

// AuthService issues API credentials for the bot and tooling callers and
// guards the authenticated route group.
type AuthService struct {
	context.DefaultService

	accounts accountStore
	jwtSvc   *JWTService
}

const AUTH_SVC = "auth_svc"

func (svc AuthService) Id() string {
	return AUTH_SVC
}

func (svc *AuthService) Configure(ctx *context.Context) error {
	svc.jwtSvc = ctx.Service(JWT_SVC).(*JWTService)
	return svc.DefaultService.Configure(ctx)
}

func (svc *AuthService) Start() error {
	db := svc.Service(POSTGRES_SVC).(*PostgresService).Db()
	svc.accounts = repositories.NewAccountRepository(db)
	return nil
}

func (svc *AuthService) Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if _, err := svc.accounts.GetAccountByUsername(req.Username); err == nil {
		return nil, shared.NewConflictError(nil, "username already taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.NewInternalError(err, "database error")
	}

	if _, err := svc.accounts.GetAccountByEmail(req.Email); err == nil {
		return nil, shared.NewConflictError(nil, "email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.NewInternalError(err, "database error")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, shared.NewInternalError(err, "failed to hash password")
	}

	account := &model.Account{
		ID:       uuid.NewString(),
		Username: req.Username,
		Email:    req.Email,
		Password: string(hash),
	}
	if err := svc.accounts.CreateAccount(account); err != nil {
		return nil, shared.NewInternalError(err, "database error")
	}

	log.WithField("username", account.Username).Info("Account registered")
	return &dto.RegisterResponse{
		AccountID: account.ID,
		Username:  account.Username,
	}, nil
}

func (svc *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	account, err := svc.accounts.GetAccountByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewUnauthorizedError(nil, "invalid credentials")
		}
		return nil, shared.NewInternalError(err, "database error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		return nil, shared.NewUnauthorizedError(nil, "invalid credentials")
	}

	tokenPair, err := svc.jwtSvc.GenerateTokenPair(account.ID)
	if err != nil {
		return nil, shared.NewInternalError(err, "failed to issue token")
	}

	return &dto.LoginResponse{
		AccountID: account.ID,
		Token:     *tokenPair,
	}, nil
}

// RequiredAuth gates a route group on a valid bearer token whose account
// still exists.
func (svc *AuthService) RequiredAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := svc.jwtSvc.ExtractTokenFromHeader(c.Get("Authorization"))
		if err != nil {
			return shared.ResponseJSON(c, http.StatusUnauthorized, "Unauthorized", err.Error())
		}

		accountID, err := svc.jwtSvc.VerifyJWTToken(token)
		if err != nil {
			return shared.ResponseJSON(c, http.StatusUnauthorized, "Unauthorized", "Invalid JWT token")
		}

		if _, err := svc.accounts.GetAccount(accountID); err != nil {
			return shared.ResponseJSON(c, http.StatusUnauthorized, "Unauthorized", "Unknown account")
		}

		c.Locals(shared.AccountID, accountID)
		return c.Next()
	}
}

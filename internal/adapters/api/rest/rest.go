package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/playmixer/boosthub/docs"
	"github.com/playmixer/boosthub/internal/adapters/store/model"
	"github.com/playmixer/boosthub/pkg/jwt"
)

var (
	cookieName    = "token"
	cookieUserKey = "UserID"
	cookieRoleKey = "Role"

	errUnauthorize = errors.New("unauthorized")
)

type boosthubI interface {
	Register(ctx context.Context, login, password string, role model.Role) error
	Authorization(ctx context.Context, login, password string) (model.User, error)
	CreateOrder(ctx context.Context, customerID uint, game, currentRank, targetRank, currency string, price float64) (model.Order, error)
	ConfirmPayment(ctx context.Context, number string, succeeded bool) (model.Order, error)
	GetCustomerOrders(ctx context.Context, customerID uint) ([]*model.Order, error)
	GetBoosterOrders(ctx context.Context, boosterID uint) ([]*model.Order, error)
	ListAvailableOrders(ctx context.Context, actorID uint) ([]*model.Order, error)
	AssignOrder(ctx context.Context, actorID, orderID, boosterID uint, autoAssign bool) (model.Order, error)
	ClaimOrder(ctx context.Context, actorID, orderID uint) (model.Order, error)
	StartOrder(ctx context.Context, actorID, orderID uint) (model.Order, error)
	SetOrderProgress(ctx context.Context, actorID, orderID uint, progress int) (model.Order, error)
	CompleteOrder(ctx context.Context, actorID, orderID uint) (model.Order, error)
	CancelOrder(ctx context.Context, actorID, orderID uint) (model.Order, error)
}

type Server struct {
	log           *zap.Logger
	engine        *gin.Engine
	service       boosthubI
	address       string
	paymentSecret string
	secret        []byte
}

type Option func(*Server)

func Logger(log *zap.Logger) Option {
	return func(s *Server) {
		s.log = log
	}
}

func Configure(cfg *Config) Option {
	return func(s *Server) {
		s.address = cfg.Address
		s.secret = []byte(cfg.Secret)
		s.paymentSecret = cfg.PaymentSecret
	}
}

//	@title			boosthub
//	@version		1.0
//	@description	Rank boosting marketplace: orders, boosters, assignment.
//	@host			localhost:8080
//	@BasePath		/

func New(service boosthubI, options ...Option) (*Server, error) {
	s := &Server{
		log:     zap.NewNop(),
		service: service,
	}

	s.engine = gin.New()
	s.engine.Use(
		s.Logger(),
		s.GzipDecompress(),
	)

	api := s.engine.Group("/api")
	api.Use(s.GzipCompress())
	{
		api.POST("/user/register", s.handlerRegister)
		api.POST("/user/login", s.handlerLogin)
		api.POST("/payments/callback", s.handlerPaymentCallback)

		authAPI := api.Group("/")
		authAPI.Use(s.Authentication())
		{
			authAPI.POST("/orders", s.handlerCreateOrder)
			authAPI.GET("/orders", s.handlerGetOrders)
			authAPI.GET("/orders/available", s.handlerAvailableOrders)
			authAPI.POST("/orders/:id/assign", s.handlerAssignOrder)
			authAPI.POST("/orders/:id/claim", s.handlerClaimOrder)
			authAPI.POST("/orders/:id/start", s.handlerStartOrder)
			authAPI.POST("/orders/:id/progress", s.handlerOrderProgress)
			authAPI.POST("/orders/:id/complete", s.handlerCompleteOrder)
			authAPI.POST("/orders/:id/cancel", s.handlerCancelOrder)
		}
	}
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	for _, opt := range options {
		opt(s)
	}

	return s, nil
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) Run() error {
	if err := s.engine.Run(s.address); err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}

	return nil
}

func (s *Server) checkAuth(c *gin.Context) (userID uint, role model.Role, err error) {
	cookieToken, err := c.Request.Cookie(cookieName)
	if err != nil {
		return 0, "", fmt.Errorf("failed read user cookie: %w %w", err, errUnauthorize)
	}

	jwtRest := jwt.New(s.secret)
	userIDS, ok, err := jwtRest.Verify(cookieToken.Value, cookieUserKey)
	if err != nil {
		return 0, "", fmt.Errorf("failed verify token: %w %w", err, errUnauthorize)
	}
	if !ok {
		return 0, "", fmt.Errorf("unverify user cookie: %w", errUnauthorize)
	}
	roleS, ok, err := jwtRest.Verify(cookieToken.Value, cookieRoleKey)
	if err != nil || !ok {
		return 0, "", fmt.Errorf("unverify role claim: %w", errUnauthorize)
	}

	userID64, err := strconv.ParseUint(userIDS, 10, 32)
	if err != nil {
		return 0, "", fmt.Errorf("can't convert string userID to uint: %w", err)
	}

	return uint(userID64), model.Role(roleS), nil
}

func unauthorize(c *gin.Context) {
	userCookie := &http.Cookie{
		Name:  cookieName,
		Value: "",
		Path:  "/",
	}
	c.Request.AddCookie(userCookie)
	http.SetCookie(c.Writer, userCookie)
}

func (s *Server) authorization(c *gin.Context, login, password string) error {
	ctx := c.Request.Context()
	var err error
	var user model.User
	if user, err = s.service.Authorization(ctx, login, password); err != nil {
		return fmt.Errorf("failed authorization: %w", err)
	}

	jwtRest := jwt.New(s.secret)
	signedCookie, err := jwtRest.Create(map[string]string{
		cookieUserKey: strconv.Itoa(int(user.ID)),
		cookieRoleKey: string(user.Role),
	})
	if err != nil {
		return fmt.Errorf("can't create cookie data: %w", err)
	}

	userCookie := &http.Cookie{
		Name:  cookieName,
		Value: signedCookie,
		Path:  "/",
	}
	c.Request.AddCookie(userCookie)
	http.SetCookie(c.Writer, userCookie)

	return nil
}

package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/playmixer/boosthub/internal/adapters/store/errstore"
	"github.com/playmixer/boosthub/internal/adapters/store/model"
	"github.com/playmixer/boosthub/internal/core/boosthub"
	"go.uber.org/zap"
)

var (
	msgErrorCloseBody = "failed close body request"
)

// respondOrderError maps core and store errors to distinct user-facing
// responses. The UI needs to tell "someone beat you to it" apart from
// "you're at capacity" and "not authorized".
func (s *Server) respondOrderError(c *gin.Context, err error) {
	var capacityErr *errstore.CapacityError
	switch {
	case errors.Is(err, boosthub.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": boosthub.ErrPermissionDenied.Error()})
	case errors.Is(err, errstore.ErrNotOrderBooster):
		c.JSON(http.StatusForbidden, gin.H{"error": errstore.ErrNotOrderBooster.Error()})
	case errors.Is(err, errstore.ErrNotFoundData):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, boosthub.ErrBoosterNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": boosthub.ErrBoosterNotFound.Error()})
	case errors.Is(err, errstore.ErrOrderClaimed):
		c.JSON(http.StatusConflict, gin.H{"error": errstore.ErrOrderClaimed.Error()})
	case errors.Is(err, errstore.ErrOrderNotAvailable):
		c.JSON(http.StatusConflict, gin.H{"error": errstore.ErrOrderNotAvailable.Error()})
	case errors.Is(err, errstore.ErrOrderNotCancelable):
		c.JSON(http.StatusConflict, gin.H{"error": errstore.ErrOrderNotCancelable.Error()})
	case errors.Is(err, boosthub.ErrNoCandidate):
		c.JSON(http.StatusConflict, gin.H{"error": boosthub.ErrNoCandidate.Error()})
	case errors.Is(err, boosthub.ErrBoosterNotServing):
		c.JSON(http.StatusConflict, gin.H{"error": boosthub.ErrBoosterNotServing.Error()})
	case errors.Is(err, errstore.ErrPaymentNotComplete):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": errstore.ErrPaymentNotComplete.Error()})
	case errors.As(err, &capacityErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": capacityErr.Error()})
	case errors.Is(err, boosthub.ErrProgressNotValid), errors.Is(err, boosthub.ErrOrderNotValid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		s.log.Error("order operation failed", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
	}
}

func (s *Server) orderIDParam(c *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return 0, false
	}
	return uint(id64), true
}

//	@Summary	Register user
//	@Schemes
//	@Description	registration of a customer or booster account
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			registration	body	tRegistration	true	"registration"
//	@Success		200	"user registered and authenticated"
//	@failure		400	"invalid login, password or role"
//	@failure		409	"login already taken"
//	@failure		500	"internal error"
//	@Router			/api/user/register [post]
func (s *Server) handlerRegister(c *gin.Context) {
	ctx := c.Request.Context()

	unauthorize(c)

	bBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.log.Error("failed read body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	defer func() {
		if err := c.Request.Body.Close(); err != nil {
			s.log.Error(msgErrorCloseBody, zap.Error(err))
		}
	}()

	jBody := tRegistration{}
	if err = json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}
	if jBody.Role == "" {
		jBody.Role = model.RoleCustomer
	}

	if err = s.service.Register(ctx, jBody.Login, jBody.Password, jBody.Role); err != nil {
		if errors.Is(err, errstore.ErrLoginNotUnique) {
			c.Writer.WriteHeader(http.StatusConflict)
			return
		}
		if errors.Is(err, boosthub.ErrLoginNotValid) ||
			errors.Is(err, boosthub.ErrPasswordNotValid) ||
			errors.Is(err, boosthub.ErrRoleNotValid) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}

		s.log.Error("failed register user", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err = s.authorization(c, jBody.Login, jBody.Password); err != nil {
		s.log.Error("authorization failed", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.Writer.WriteHeader(http.StatusOK)
}

//	@Summary	Login user
//	@Schemes
//	@Description	authorization
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			auth	body	tAuthorization	true	"auth"
//	@Success		200	"authenticated"
//	@failure		400	"invalid request format"
//	@failure		401	"wrong login/password pair"
//	@failure		500	"internal error"
//	@Router			/api/user/login [post]
func (s *Server) handlerLogin(c *gin.Context) {
	unauthorize(c)

	bBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.log.Error("failed read body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	defer func() {
		if err := c.Request.Body.Close(); err != nil {
			s.log.Error(msgErrorCloseBody, zap.Error(err))
		}
	}()

	jBody := tAuthorization{}
	if err = json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = s.authorization(c, jBody.Login, jBody.Password); err != nil {
		if errors.Is(err, boosthub.ErrLoginNotValid) || errors.Is(err, boosthub.ErrPasswordNotValid) {
			c.Writer.WriteHeader(http.StatusBadRequest)
			return
		}
		if errors.Is(err, boosthub.ErrPasswordNotEquale) || errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusUnauthorized)
			return
		}
		s.log.Error("authorization failed", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	c.Writer.WriteHeader(http.StatusOK)
}

//	@Summary	Payment callback
//	@Schemes
//	@Description	payment collaborator confirms or fails an order payment
//	@Tags			payment
//	@Accept			json
//	@Produce		json
//	@Param			callback	body	tPaymentCallback	true	"callback"
//	@Success		200	{object}	tOrder	"payment recorded"
//	@failure		401	"bad callback secret"
//	@failure		404	"unknown order number"
//	@failure		409	"order is not awaiting payment"
//	@failure		500	"internal error"
//	@Router			/api/payments/callback [post]
func (s *Server) handlerPaymentCallback(c *gin.Context) {
	ctx := c.Request.Context()

	if c.GetHeader("X-Payment-Secret") != s.paymentSecret {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	bBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.log.Error("failed read body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	defer func() {
		if err := c.Request.Body.Close(); err != nil {
			s.log.Error(msgErrorCloseBody, zap.Error(err))
		}
	}()

	jBody := tPaymentCallback{}
	if err = json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	order, err := s.service.ConfirmPayment(ctx, jBody.Order, jBody.Succeeded)
	if err != nil {
		s.respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(&order))
}

//	@Summary	Create order
//	@Schemes
//	@Description	customer creates a rank boost order, awaiting payment
//	@Tags			order
//	@Accept			json
//	@Produce		json
//	@Param			order	body	tCreateOrder	true	"order"
//	@Success		201	{object}	tOrder	"order created"
//	@failure		400	"invalid order fields"
//	@failure		401	"not authenticated"
//	@failure		403	"not a customer"
//	@failure		500	"internal error"
//	@Router			/api/orders [post]
func (s *Server) handlerCreateOrder(c *gin.Context) {
	ctx := c.Request.Context()
	userID, role, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}
	if role != model.RoleCustomer {
		c.Writer.WriteHeader(http.StatusForbidden)
		return
	}

	bBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	defer func() {
		if err := c.Request.Body.Close(); err != nil {
			s.log.Error(msgErrorCloseBody, zap.Error(err))
		}
	}()

	jBody := tCreateOrder{}
	if err = json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	order, err := s.service.CreateOrder(ctx, userID, jBody.Game, jBody.CurrentRank, jBody.TargetRank, jBody.Currency, jBody.Price)
	if err != nil {
		s.respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newOrderResponse(&order))
}

//	@Summary	List own orders
//	@Schemes
//	@Description	customer sees created orders, booster sees assigned orders
//	@Tags			order
//	@Produce		json
//	@Success		200	{array}	tOrder	"orders"
//	@Success		204	"no orders yet"
//	@failure		401	"not authenticated"
//	@failure		500	"internal error"
//	@Router			/api/orders [get]
func (s *Server) handlerGetOrders(c *gin.Context) {
	ctx := c.Request.Context()
	userID, role, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	var orders []*model.Order
	switch role {
	case model.RoleBooster:
		orders, err = s.service.GetBoosterOrders(ctx, userID)
	default:
		orders, err = s.service.GetCustomerOrders(ctx, userID)
	}
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			c.Writer.WriteHeader(http.StatusNoContent)
			return
		}
		s.log.Error("failed get orders", zap.Error(err))
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := make([]tOrder, 0, len(orders))
	for _, order := range orders {
		response = append(response, newOrderResponse(order))
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	List claimable orders
//	@Schemes
//	@Description	paid unassigned orders, oldest paid first
//	@Tags			assignment
//	@Produce		json
//	@Success		200	{array}	tOrder	"orders open for claiming"
//	@failure		401	"not authenticated"
//	@failure		403	"not a booster"
//	@failure		500	"internal error"
//	@Router			/api/orders/available [get]
func (s *Server) handlerAvailableOrders(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	orders, err := s.service.ListAvailableOrders(ctx, userID)
	if err != nil {
		s.respondOrderError(c, err)
		return
	}

	response := make([]tOrder, 0, len(orders))
	for _, order := range orders {
		response = append(response, newOrderResponse(order))
	}
	c.JSON(http.StatusOK, response)
}

//	@Summary	Assign order
//	@Schemes
//	@Description	admin attaches a booster to a paid order, manually or via scoring
//	@Tags			assignment
//	@Accept			json
//	@Produce		json
//	@Param			id		path	integer			true	"order id"
//	@Param			assign	body	tAssignOrder	true	"assignment"
//	@Success		200	{object}	tOrder	"order assigned"
//	@failure		401	"not authenticated"
//	@failure		403	"not an admin"
//	@failure		404	"order or booster not found"
//	@failure		409	"order not paid, already claimed, or no eligible booster"
//	@failure		422	"booster at capacity"
//	@failure		500	"internal error"
//	@Router			/api/orders/{id}/assign [post]
func (s *Server) handlerAssignOrder(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}
	orderID, ok := s.orderIDParam(c)
	if !ok {
		return
	}

	bBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	defer func() {
		if err := c.Request.Body.Close(); err != nil {
			s.log.Error(msgErrorCloseBody, zap.Error(err))
		}
	}()

	jBody := tAssignOrder{}
	if err = json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}
	if !jBody.AutoAssign && jBody.BoosterID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "booster_id or auto_assign required"})
		return
	}

	order, err := s.service.AssignOrder(ctx, userID, orderID, jBody.BoosterID, jBody.AutoAssign)
	if err != nil {
		s.respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(&order))
}

//	@Summary	Claim order
//	@Schemes
//	@Description	booster atomically takes an unassigned paid order
//	@Tags			assignment
//	@Produce		json
//	@Param			id	path	integer	true	"order id"
//	@Success		200	{object}	tOrder	"order claimed"
//	@failure		401	"not authenticated"
//	@failure		402	"payment not completed"
//	@failure		403	"not a booster"
//	@failure		404	"order not found"
//	@failure		409	"already claimed or not available"
//	@failure		422	"active orders limit reached"
//	@failure		500	"internal error"
//	@Router			/api/orders/{id}/claim [post]
func (s *Server) handlerClaimOrder(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}
	orderID, ok := s.orderIDParam(c)
	if !ok {
		return
	}

	order, err := s.service.ClaimOrder(ctx, userID, orderID)
	if err != nil {
		s.respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(&order))
}

//	@Summary	Start order
//	@Schemes
//	@Description	assigned booster begins the boost
//	@Tags			order
//	@Produce		json
//	@Param			id	path	integer	true	"order id"
//	@Success		200	{object}	tOrder	"order in progress"
//	@failure		401	"not authenticated"
//	@failure		403	"assigned to another booster"
//	@failure		404	"order not found"
//	@failure		409	"order is not assigned"
//	@failure		500	"internal error"
//	@Router			/api/orders/{id}/start [post]
func (s *Server) handlerStartOrder(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}
	orderID, ok := s.orderIDParam(c)
	if !ok {
		return
	}

	order, err := s.service.StartOrder(ctx, userID, orderID)
	if err != nil {
		s.respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(&order))
}

//	@Summary	Report progress
//	@Schemes
//	@Description	assigned booster updates completion percentage
//	@Tags			order
//	@Accept			json
//	@Produce		json
//	@Param			id			path	integer			true	"order id"
//	@Param			progress	body	tOrderProgress	true	"progress"
//	@Success		200	{object}	tOrder	"progress updated"
//	@failure		400	"progress out of range"
//	@failure		401	"not authenticated"
//	@failure		403	"assigned to another booster"
//	@failure		404	"order not found"
//	@failure		409	"order is not in progress"
//	@failure		500	"internal error"
//	@Router			/api/orders/{id}/progress [post]
func (s *Server) handlerOrderProgress(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}
	orderID, ok := s.orderIDParam(c)
	if !ok {
		return
	}

	bBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}
	defer func() {
		if err := c.Request.Body.Close(); err != nil {
			s.log.Error(msgErrorCloseBody, zap.Error(err))
		}
	}()

	jBody := tOrderProgress{}
	if err = json.Unmarshal(bBody, &jBody); err != nil {
		s.log.Error("failed parse body", zap.Error(err))
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	order, err := s.service.SetOrderProgress(ctx, userID, orderID, jBody.Progress)
	if err != nil {
		s.respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(&order))
}

//	@Summary	Complete order
//	@Schemes
//	@Description	assigned booster marks the boost done
//	@Tags			order
//	@Produce		json
//	@Param			id	path	integer	true	"order id"
//	@Success		200	{object}	tOrder	"order completed"
//	@failure		401	"not authenticated"
//	@failure		403	"assigned to another booster"
//	@failure		404	"order not found"
//	@failure		409	"order is not in progress"
//	@failure		500	"internal error"
//	@Router			/api/orders/{id}/complete [post]
func (s *Server) handlerCompleteOrder(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}
	orderID, ok := s.orderIDParam(c)
	if !ok {
		return
	}

	order, err := s.service.CompleteOrder(ctx, userID, orderID)
	if err != nil {
		s.respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(&order))
}

//	@Summary	Cancel order
//	@Schemes
//	@Description	customer or admin cancels an order before assignment
//	@Tags			order
//	@Produce		json
//	@Param			id	path	integer	true	"order id"
//	@Success		200	{object}	tOrder	"order cancelled"
//	@failure		401	"not authenticated"
//	@failure		403	"not the order's customer"
//	@failure		404	"order not found"
//	@failure		409	"order cannot be cancelled"
//	@failure		500	"internal error"
//	@Router			/api/orders/{id}/cancel [post]
func (s *Server) handlerCancelOrder(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _, err := s.checkAuth(c)
	if err != nil {
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}
	orderID, ok := s.orderIDParam(c)
	if !ok {
		return
	}

	order, err := s.service.CancelOrder(ctx, userID, orderID)
	if err != nil {
		s.respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(&order))
}

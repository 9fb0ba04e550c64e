package rest

import (
	"time"

	"github.com/playmixer/boosthub/internal/adapters/store/model"
)

type tRegistration struct {
	Login    string     `json:"login"`
	Password string     `json:"password"`
	Role     model.Role `json:"role"`
}

type tAuthorization struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type tCreateOrder struct {
	Game        string  `json:"game"`
	CurrentRank string  `json:"current_rank"`
	TargetRank  string  `json:"target_rank"`
	Currency    string  `json:"currency"`
	Price       float64 `json:"price"`
}

type tAssignOrder struct {
	BoosterID  uint `json:"booster_id"`
	AutoAssign bool `json:"auto_assign"`
}

type tOrderProgress struct {
	Progress int `json:"progress"`
}

type tPaymentCallback struct {
	Order     string `json:"order"`
	Succeeded bool   `json:"succeeded"`
}

type tUserSummary struct {
	Login  string  `json:"login"`
	ID     uint    `json:"id"`
	Rating float64 `json:"rating,omitempty"`
}

type tOrder struct {
	createdAt       time.Time
	paidAt          *time.Time
	assignedAt      *time.Time
	Booster         *tUserSummary       `json:"booster,omitempty"`
	Customer        *tUserSummary       `json:"customer,omitempty"`
	PaidAt          string              `json:"paid_at,omitempty"`
	AssignedAt      string              `json:"assigned_at,omitempty"`
	Number          string              `json:"number"`
	Game            string              `json:"game"`
	CurrentRank     string              `json:"current_rank"`
	TargetRank      string              `json:"target_rank"`
	Currency        string              `json:"currency"`
	CreatedAt       string              `json:"created_at"`
	Status          model.OrderStatus   `json:"status"`
	PaymentStatus   model.PaymentStatus `json:"payment_status"`
	ID              uint                `json:"id"`
	Progress        int                 `json:"progress"`
	Price           float64             `json:"price"`
	BoosterEarnings float64             `json:"booster_earnings,omitempty"`
}

func newOrderResponse(order *model.Order) tOrder {
	res := tOrder{
		createdAt:       order.CreatedAt,
		paidAt:          order.PaidAt,
		assignedAt:      order.AssignedAt,
		Number:          order.Number,
		Game:            order.Game,
		CurrentRank:     order.CurrentRank,
		TargetRank:      order.TargetRank,
		Currency:        order.Currency,
		Status:          order.Status,
		PaymentStatus:   order.PaymentStatus,
		ID:              order.ID,
		Progress:        order.Progress,
		Price:           order.Price,
		BoosterEarnings: order.BoosterEarnings,
	}
	if order.Customer.ID != 0 {
		res.Customer = &tUserSummary{
			ID:    order.Customer.ID,
			Login: order.Customer.Login,
		}
	}
	if order.Booster != nil {
		res.Booster = &tUserSummary{
			ID:     order.Booster.ID,
			Login:  order.Booster.Login,
			Rating: order.Booster.Rating,
		}
	}
	return *res.Prepare()
}

func (o *tOrder) Prepare() *tOrder {
	o.CreatedAt = o.createdAt.Format(time.RFC3339)
	if o.paidAt != nil {
		o.PaidAt = o.paidAt.Format(time.RFC3339)
	}
	if o.assignedAt != nil {
		o.AssignedAt = o.assignedAt.Format(time.RFC3339)
	}
	return o
}

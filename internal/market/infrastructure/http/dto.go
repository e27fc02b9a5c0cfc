package http

import (
	"time"

	"github.com/Lexv0lk/marketplace/internal/market/domain"
	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

type createOrderRequestBody struct {
	ItemID     int64            `json:"itemId" binding:"required,gt=0"`
	SellerID   int64            `json:"sellerId" binding:"required,gt=0"`
	Quantity   int              `json:"quantity" binding:"required,gt=0"`
	TotalPrice *decimal.Decimal `json:"totalPrice" binding:"required"`
}

type publishItemRequestBody struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	Stock       int              `json:"stock" binding:"gte=0"`
}

type updateItemRequestBody struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	Restock     int              `json:"restock" binding:"gte=0"`
}

type registerRequestBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
}

type loginRequestBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type changePasswordRequestBody struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type rechargeRequestBody struct {
	Amount *decimal.Decimal `json:"amount" binding:"required"`
}

type updateContactsRequestBody struct {
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`
}

type orderResponse struct {
	ID         int64     `json:"id"`
	ItemID     int64     `json:"itemId"`
	BuyerID    int64     `json:"buyerId"`
	SellerID   int64     `json:"sellerId"`
	Quantity   int       `json:"quantity"`
	TotalPrice string    `json:"totalPrice"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toOrderResponse(order domain.Order) orderResponse {
	return orderResponse{
		ID:         order.ID,
		ItemID:     order.ItemID,
		BuyerID:    order.BuyerID,
		SellerID:   order.SellerID,
		Quantity:   order.Quantity,
		TotalPrice: order.TotalPrice.StringFixed(moneyPlaces),
		Status:     string(order.Status),
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
	}
}

func toOrderResponses(orders []domain.Order) []orderResponse {
	res := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		res = append(res, toOrderResponse(order))
	}

	return res
}

type contactsResponse struct {
	OrderID int64          `json:"orderId"`
	Buyer   contactPayload `json:"buyer"`
	Seller  contactPayload `json:"seller"`
}

type contactPayload struct {
	Username string `json:"username"`
	Phone    string `json:"phone"`
}

func toContactsResponse(contacts domain.OrderContacts) contactsResponse {
	return contactsResponse{
		OrderID: contacts.OrderID,
		Buyer:   contactPayload{Username: contacts.BuyerUsername, Phone: contacts.BuyerPhone},
		Seller:  contactPayload{Username: contacts.SellerUsername, Phone: contacts.SellerPhone},
	}
}

type itemResponse struct {
	ID          int64     `json:"id"`
	SellerID    int64     `json:"sellerId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Stock       int       `json:"stock"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toItemResponse(item domain.Item) itemResponse {
	return itemResponse{
		ID:          item.ID,
		SellerID:    item.SellerID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price.StringFixed(moneyPlaces),
		Stock:       item.Stock,
		Available:   item.Available,
		CreatedAt:   item.CreatedAt,
	}
}

func toItemResponses(items []domain.Item) []itemResponse {
	res := make([]itemResponse, 0, len(items))
	for _, item := range items {
		res = append(res, toItemResponse(item))
	}

	return res
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Balance  string `json:"balance"`
}

func toUserResponse(user domain.User) userResponse {
	return userResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Phone:    user.Phone,
		Balance:  user.Balance.StringFixed(moneyPlaces),
	}
}

type summaryResponse struct {
	User      userResponse    `json:"user"`
	Purchases []orderResponse `json:"purchases"`
	Sales     []orderResponse `json:"sales"`
}

type auditEventResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"createdAt"`
}

func toAuditEventResponses(events []domain.AuditEvent) []auditEventResponse {
	res := make([]auditEventResponse, 0, len(events))
	for _, event := range events {
		res = append(res, auditEventResponse{
			ID:        event.ID.String(),
			Type:      string(event.Type),
			Details:   event.Details,
			CreatedAt: event.CreatedAt,
		})
	}

	return res
}

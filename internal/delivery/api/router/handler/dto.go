package handler

import (
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItemResponse is a cart line with its subtotal.
type CartItemResponse struct {
	ProductID uuid.UUID       `json:"productId"`
	ShopID    uuid.UUID       `json:"shopId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CartResponse is the user's cart with its computed total.
type CartResponse struct {
	ID        uuid.UUID          `json:"id"`
	Items     []CartItemResponse `json:"items"`
	Total     decimal.Decimal    `json:"total"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

func toCartResponse(cart *entity.Cart) CartResponse {
	items := make([]CartItemResponse, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, CartItemResponse{
			ProductID: item.ProductID,
			ShopID:    item.ShopID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal(),
		})
	}

	return CartResponse{ID: cart.ID, Items: items, Total: cart.Total(), UpdatedAt: cart.UpdatedAt}
}

// ProductResponse is a product as seen by its seller.
type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	ShopID      uuid.UUID       `json:"shopId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	IsAvailable bool            `json:"isAvailable"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func toProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		ShopID:      p.ShopID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		IsAvailable: p.IsAvailable,
		UpdatedAt:   p.UpdatedAt,
	}
}

// VoucherResponse is a voucher definition.
type VoucherResponse struct {
	ID            uuid.UUID           `json:"id"`
	Code          string              `json:"code"`
	Description   string              `json:"description"`
	DiscountType  entity.DiscountType `json:"discountType"`
	DiscountValue decimal.Decimal     `json:"discountValue"`
	MinOrderValue decimal.Decimal     `json:"minOrderValue"`
	ExpiresAt     time.Time           `json:"expiresAt"`
	MaxUses       *int                `json:"maxUses"`
	UsedCount     int                 `json:"usedCount"`
	IsActive      bool                `json:"isActive"`
}

func toVoucherResponse(v *entity.Voucher) VoucherResponse {
	return VoucherResponse{
		ID:            v.ID,
		Code:          v.Code,
		Description:   v.Description,
		DiscountType:  v.DiscountType,
		DiscountValue: v.DiscountValue,
		MinOrderValue: v.MinOrderValue,
		ExpiresAt:     v.ExpiresAt,
		MaxUses:       v.MaxUses,
		UsedCount:     v.UsedCount,
		IsActive:      v.IsActive,
	}
}

func toVoucherResponses(vouchers []*entity.Voucher) []VoucherResponse {
	out := make([]VoucherResponse, 0, len(vouchers))
	for _, v := range vouchers {
		out = append(out, toVoucherResponse(v))
	}

	return out
}

// ClaimResponse is a voucher held by the user.
type ClaimResponse struct {
	ID        uuid.UUID        `json:"id"`
	Voucher   *VoucherResponse `json:"voucher,omitempty"`
	ClaimedAt time.Time        `json:"claimedAt"`
	IsUsed    bool             `json:"isUsed"`
	UsedAt    *time.Time       `json:"usedAt"`
	OrderID   *uuid.UUID       `json:"orderId"`
}

func toClaimResponse(c *entity.UserVoucher) ClaimResponse {
	resp := ClaimResponse{
		ID:        c.ID,
		ClaimedAt: c.ClaimedAt,
		IsUsed:    c.IsUsed,
		UsedAt:    c.UsedAt,
		OrderID:   c.OrderID,
	}
	if c.Voucher != nil {
		v := toVoucherResponse(c.Voucher)
		resp.Voucher = &v
	}

	return resp
}

// OrderItemResponse is a line of an order.
type OrderItemResponse struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse is an order with its payment state.
type OrderResponse struct {
	ID              uuid.UUID           `json:"id"`
	Code            int64               `json:"code"`
	BuyerID         uuid.UUID           `json:"buyerId"`
	ShopID          uuid.UUID           `json:"shopId"`
	Status          entity.OrderStatus  `json:"status"`
	Subtotal        decimal.Decimal     `json:"subtotal"`
	Discount        decimal.Decimal     `json:"discount"`
	Total           decimal.Decimal     `json:"total"`
	Notes           string              `json:"notes"`
	DeliveryAddress string              `json:"deliveryAddress"`
	CheckoutURL     string              `json:"checkoutUrl,omitempty"`
	PaidAt          *time.Time          `json:"paidAt"`
	Items           []OrderItemResponse `json:"items"`
	CreatedAt       time.Time           `json:"createdAt"`
}

func toOrderResponse(o *entity.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal(),
		})
	}

	return OrderResponse{
		ID:              o.ID,
		Code:            o.Code,
		BuyerID:         o.BuyerID,
		ShopID:          o.ShopID,
		Status:          o.Status,
		Subtotal:        o.Subtotal,
		Discount:        o.Discount,
		Total:           o.Total,
		Notes:           o.Notes,
		DeliveryAddress: o.DeliveryAddress,
		CheckoutURL:     o.CheckoutURL,
		PaidAt:          o.PaidAt,
		Items:           items,
		CreatedAt:       o.CreatedAt,
	}
}

// PaymentLinkResponse is a checkout link for an order.
type PaymentLinkResponse struct {
	PaymentLinkID string `json:"paymentLinkId"`
	OrderCode     int64  `json:"orderCode"`
	Amount        int64  `json:"amount"`
	Status        string `json:"status"`
	CheckoutURL   string `json:"checkoutUrl"`
	QRCode        string `json:"qrCode,omitempty"`
}

func toPaymentLinkResponse(l *service.PaymentLink) PaymentLinkResponse {
	return PaymentLinkResponse{
		PaymentLinkID: l.PaymentLinkID,
		OrderCode:     l.OrderCode,
		Amount:        l.Amount,
		Status:        l.Status,
		CheckoutURL:   l.CheckoutURL,
		QRCode:        l.QRCode,
	}
}

// PaymentInfoResponse is the payment state of an order. Fallback marks an
// answer built from local data while the gateway was unreachable.
type PaymentInfoResponse struct {
	PaymentLinkID string    `json:"paymentLinkId"`
	OrderCode     int64     `json:"orderCode"`
	Amount        int64     `json:"amount"`
	AmountPaid    int64     `json:"amountPaid"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	Fallback      bool      `json:"fallback"`
}

func toPaymentInfoResponse(i *service.PaymentInfo) PaymentInfoResponse {
	return PaymentInfoResponse{
		PaymentLinkID: i.PaymentLinkID,
		OrderCode:     i.OrderCode,
		Amount:        i.Amount,
		AmountPaid:    i.AmountPaid,
		Status:        i.Status,
		CreatedAt:     i.CreatedAt,
		Fallback:      i.Fallback,
	}
}

// ComplaintResponseItem is a message of a complaint thread.
type ComplaintResponseItem struct {
	ID         uuid.UUID `json:"id"`
	AuthorID   uuid.UUID `json:"authorId"`
	Message    string    `json:"message"`
	IsInternal bool      `json:"isInternal"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toComplaintResponseItem(r *entity.ComplaintResponse) ComplaintResponseItem {
	return ComplaintResponseItem{
		ID:         r.ID,
		AuthorID:   r.AuthorID,
		Message:    r.Message,
		IsInternal: r.IsInternal,
		CreatedAt:  r.CreatedAt,
	}
}

// ComplaintResponse is a complaint with its thread and evidence.
type ComplaintResponse struct {
	ID             uuid.UUID                 `json:"id"`
	Number         string                    `json:"number"`
	ComplainantID  uuid.UUID                 `json:"complainantId"`
	Category       entity.ComplaintCategory  `json:"category"`
	Subject        string                    `json:"subject"`
	Description    string                    `json:"description"`
	OrderID        *uuid.UUID                `json:"orderId"`
	TargetUserID   *uuid.UUID                `json:"targetUserId"`
	TargetShopID   *uuid.UUID                `json:"targetShopId"`
	Status         entity.ComplaintStatus    `json:"status"`
	AssigneeID     *uuid.UUID                `json:"assigneeId"`
	Decision       *entity.ComplaintDecision `json:"decision"`
	DecisionReason string                    `json:"decisionReason,omitempty"`
	AdminNote      string                    `json:"adminNote,omitempty"`
	ResolvedAt     *time.Time                `json:"resolvedAt"`
	Responses      []ComplaintResponseItem   `json:"responses"`
	ImageURLs      []string                  `json:"imageUrls"`
	CreatedAt      time.Time                 `json:"createdAt"`
}

// toComplaintResponse hides internal notes and the admin note from non-admin viewers.
func toComplaintResponse(c *entity.Complaint, isAdmin bool) ComplaintResponse {
	responses := c.Responses
	if !isAdmin {
		responses = c.PublicResponses()
	}
	items := make([]ComplaintResponseItem, 0, len(responses))
	for _, r := range responses {
		items = append(items, toComplaintResponseItem(r))
	}

	images := make([]string, 0, len(c.Images))
	for _, img := range c.Images {
		images = append(images, img.URL)
	}

	resp := ComplaintResponse{
		ID:             c.ID,
		Number:         c.Number,
		ComplainantID:  c.ComplainantID,
		Category:       c.Category,
		Subject:        c.Subject,
		Description:    c.Description,
		OrderID:        c.OrderID,
		TargetUserID:   c.TargetUserID,
		TargetShopID:   c.TargetShopID,
		Status:         c.Status,
		AssigneeID:     c.AssigneeID,
		Decision:       c.Decision,
		DecisionReason: c.DecisionReason,
		ResolvedAt:     c.ResolvedAt,
		Responses:      items,
		ImageURLs:      images,
		CreatedAt:      c.CreatedAt,
	}
	if isAdmin {
		resp.AdminNote = c.AdminNote
	}

	return resp
}

func toComplaintResponses(complaints []*entity.Complaint, isAdmin bool) []ComplaintResponse {
	out := make([]ComplaintResponse, 0, len(complaints))
	for _, c := range complaints {
		out = append(out, toComplaintResponse(c, isAdmin))
	}

	return out
}

// RoleApplicationResponse is a role application and its review state.
type RoleApplicationResponse struct {
	ID              uuid.UUID                `json:"id"`
	UserID          uuid.UUID                `json:"userId"`
	RequestedRole   entity.Role              `json:"requestedRole"`
	Reason          string                   `json:"reason"`
	ShopName        string                   `json:"shopName,omitempty"`
	Status          entity.ApplicationStatus `json:"status"`
	ReviewerID      *uuid.UUID               `json:"reviewerId"`
	RejectionReason string                   `json:"rejectionReason,omitempty"`
	ReviewedAt      *time.Time               `json:"reviewedAt"`
	CreatedAt       time.Time                `json:"createdAt"`
}

func toRoleApplicationResponse(a *entity.RoleApplication) RoleApplicationResponse {
	return RoleApplicationResponse{
		ID:              a.ID,
		UserID:          a.UserID,
		RequestedRole:   a.RequestedRole,
		Reason:          a.Reason,
		ShopName:        a.ShopName,
		Status:          a.Status,
		ReviewerID:      a.ReviewerID,
		RejectionReason: a.RejectionReason,
		ReviewedAt:      a.ReviewedAt,
		CreatedAt:       a.CreatedAt,
	}
}

func toRoleApplicationResponses(apps []*entity.RoleApplication) []RoleApplicationResponse {
	out := make([]RoleApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, toRoleApplicationResponse(a))
	}

	return out
}

package mongostore

import (
	"time"

	"click-collect/internal/domain/cart"
	"click-collect/internal/domain/catalog"
	"click-collect/internal/domain/favorite"
	"click-collect/internal/domain/order"
	"click-collect/internal/domain/payment"
	"click-collect/internal/domain/rating"
	"click-collect/internal/domain/slot"
	"click-collect/internal/domain/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UUIDs are stored as their string form in _id and reference fields.

type userDoc struct {
	ID                 string     `bson:"_id"`
	Username           string     `bson:"username"`
	Email              string     `bson:"email"`
	Phone              *string    `bson:"phone"`
	PasswordHash       string     `bson:"passwordHash"`
	ResetSelector      *string    `bson:"resetSelector,omitempty"`
	ResetDigest        *string    `bson:"resetDigest,omitempty"`
	ResetExpiresAt     *time.Time `bson:"resetExpiresAt,omitempty"`
	TwoFactorDigest    *string    `bson:"twoFactorDigest,omitempty"`
	TwoFactorExpiresAt *time.Time `bson:"twoFactorExpiresAt,omitempty"`
	CreatedAt          time.Time  `bson:"createdAt"`
	UpdatedAt          time.Time  `bson:"updatedAt"`
}

func fromUser(u *user.User) userDoc {
	d := userDoc{
		ID:           u.ID().String(),
		Username:     u.Username().Value(),
		Email:        u.Email().Value(),
		Phone:        u.Phone(),
		PasswordHash: u.PasswordHash(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
	if s := u.Reset(); s != nil {
		sel, enc, exp := s.Selector(), s.Encoded(), s.ExpiresAt()
		d.ResetSelector, d.ResetDigest, d.ResetExpiresAt = &sel, &enc, &exp
	}
	if s := u.TwoFactor(); s != nil {
		enc, exp := s.Encoded(), s.ExpiresAt()
		d.TwoFactorDigest, d.TwoFactorExpiresAt = &enc, &exp
	}
	return d
}

func (d userDoc) toDomain() (*user.User, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	var reset, twoFactor *user.OneTimeSecret
	if d.ResetDigest != nil && d.ResetExpiresAt != nil {
		sel := ""
		if d.ResetSelector != nil {
			sel = *d.ResetSelector
		}
		reset = user.ReconstructSecret(sel, *d.ResetDigest, d.ResetExpiresAt.UTC())
	}
	if d.TwoFactorDigest != nil && d.TwoFactorExpiresAt != nil {
		twoFactor = user.ReconstructSecret("", *d.TwoFactorDigest, d.TwoFactorExpiresAt.UTC())
	}
	return user.ReconstructUser(id, d.Username, d.Email, d.Phone, d.PasswordHash, reset, twoFactor, d.CreatedAt.UTC(), d.UpdatedAt.UTC()), nil
}

type categoryDoc struct {
	ID          string  `bson:"_id"`
	Name        string  `bson:"name"`
	Slug        string  `bson:"slug"`
	ImageURL    *string `bson:"imageUrl"`
	Description *string `bson:"description"`
}

type productDoc struct {
	ID            string               `bson:"_id"`
	SKU           string               `bson:"sku"`
	Name          string               `bson:"name"`
	Description   *string              `bson:"description"`
	Price         primitive.Decimal128 `bson:"price"`
	Images        []string             `bson:"images"`
	Stock         int                  `bson:"stock"`
	CategoryID    string               `bson:"categoryId"`
	IsActive      bool                 `bson:"isActive"`
	IsPerishable  bool                 `bson:"isPerishable"`
	RatingAverage primitive.Decimal128 `bson:"ratingAverage"`
	RatingCount   int                  `bson:"ratingCount"`
	CreatedAt     time.Time            `bson:"createdAt"`
}

func fromProduct(p *catalog.Product) (productDoc, error) {
	price, err := toDecimal128(p.Price())
	if err != nil {
		return productDoc{}, err
	}
	avg, err := toDecimal128(p.RatingAverage())
	if err != nil {
		return productDoc{}, err
	}
	images := p.Images()
	if images == nil {
		images = []string{}
	}
	return productDoc{
		ID:            p.ID().String(),
		SKU:           p.SKU(),
		Name:          p.Name(),
		Description:   p.Description(),
		Price:         price,
		Images:        images,
		Stock:         p.Stock(),
		CategoryID:    p.CategoryID().String(),
		IsActive:      p.IsActive(),
		IsPerishable:  p.IsPerishable(),
		RatingAverage: avg,
		RatingCount:   p.RatingCount(),
		CreatedAt:     p.CreatedAt(),
	}, nil
}

func (d productDoc) toDomain() (*catalog.Product, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	categoryID, err := uuid.Parse(d.CategoryID)
	if err != nil {
		return nil, err
	}
	price, err := fromDecimal128(d.Price)
	if err != nil {
		return nil, err
	}
	avg, err := fromDecimal128(d.RatingAverage)
	if err != nil {
		return nil, err
	}
	images := d.Images
	if images == nil {
		images = []string{}
	}
	return catalog.ReconstructProduct(catalog.ProductSnapshot{
		ID:            id,
		SKU:           d.SKU,
		Name:          d.Name,
		Description:   d.Description,
		Price:         price,
		Images:        images,
		Stock:         d.Stock,
		CategoryID:    categoryID,
		IsActive:      d.IsActive,
		IsPerishable:  d.IsPerishable,
		RatingAverage: avg,
		RatingCount:   d.RatingCount,
		CreatedAt:     d.CreatedAt.UTC(),
	}), nil
}

type favoriteDoc struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"userId"`
	ProductID string    `bson:"productId"`
	CreatedAt time.Time `bson:"createdAt"`
}

func (d favoriteDoc) toDomain() (*favorite.Favorite, error) {
	ids, err := parseIDs(d.ID, d.UserID, d.ProductID)
	if err != nil {
		return nil, err
	}
	return favorite.ReconstructFavorite(ids[0], ids[1], ids[2], d.CreatedAt.UTC()), nil
}

type ratingDoc struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"userId"`
	ProductID string    `bson:"productId"`
	Rating    int       `bson:"rating"`
	Comment   *string   `bson:"comment"`
	CreatedAt time.Time `bson:"createdAt"`
}

func (d ratingDoc) toDomain() (*rating.Rating, error) {
	ids, err := parseIDs(d.ID, d.UserID, d.ProductID)
	if err != nil {
		return nil, err
	}
	return rating.ReconstructRating(ids[0], ids[1], ids[2], d.Rating, d.Comment, d.CreatedAt.UTC()), nil
}

type cartItemDoc struct {
	ID        string    `bson:"_id"`
	UserID    *string   `bson:"userId"`
	SessionID *string   `bson:"sessionId"`
	ProductID string    `bson:"productId"`
	Quantity  int       `bson:"quantity"`
	CreatedAt time.Time `bson:"createdAt"`
}

func fromCartItem(it *cart.Item) cartItemDoc {
	d := cartItemDoc{
		ID:        it.ID().String(),
		ProductID: it.ProductID().String(),
		Quantity:  it.Quantity(),
		CreatedAt: it.CreatedAt(),
	}
	owner := it.Owner()
	if owner.IsGuest() {
		sid := owner.SessionID()
		d.SessionID = &sid
	} else {
		uid := owner.UserID().String()
		d.UserID = &uid
	}
	return d
}

func (d cartItemDoc) toDomain() (*cart.Item, error) {
	ids, err := parseIDs(d.ID, d.ProductID)
	if err != nil {
		return nil, err
	}
	var userID *uuid.UUID
	if d.UserID != nil {
		uid, err := uuid.Parse(*d.UserID)
		if err != nil {
			return nil, err
		}
		userID = &uid
	}
	sessionID := ""
	if d.SessionID != nil {
		sessionID = *d.SessionID
	}
	return cart.ReconstructItem(ids[0], cart.ReconstructOwner(userID, sessionID), ids[1], d.Quantity, d.CreatedAt.UTC()), nil
}

type slotDoc struct {
	ID        string `bson:"_id"`
	Date      string `bson:"date"`
	TimeFrom  string `bson:"timeFrom"`
	TimeTo    string `bson:"timeTo"`
	Capacity  int    `bson:"capacity"`
	Remaining int    `bson:"remaining"`
	IsActive  bool   `bson:"isActive"`
}

func (d slotDoc) toDomain() (*slot.PickupSlot, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	return slot.ReconstructPickupSlot(id, d.Date, d.TimeFrom, d.TimeTo, d.Capacity, d.Remaining, d.IsActive), nil
}

// Order lines are embedded; an order is written and read as one document.
type orderDoc struct {
	ID              string               `bson:"_id"`
	OrderNumber     string               `bson:"orderNumber"`
	UserID          *string              `bson:"userId"`
	CustomerName    string               `bson:"customerName"`
	CustomerPhone   string               `bson:"customerPhone"`
	CustomerEmail   *string              `bson:"customerEmail"`
	PickupSlotID    string               `bson:"pickupSlotId"`
	Status          string               `bson:"status"`
	Amount          primitive.Decimal128 `bson:"amount"`
	Currency        string               `bson:"currency"`
	PaymentMethod   string               `bson:"paymentMethod"`
	PaymentProvider string               `bson:"paymentProvider"`
	TempPickupCode  string               `bson:"tempPickupCode"`
	FinalPickupCode *string              `bson:"finalPickupCode"`
	Notes           *string              `bson:"notes"`
	ExpiresAt       time.Time            `bson:"expiresAt"`
	CreatedAt       time.Time            `bson:"createdAt"`
	Items           []orderItemDoc       `bson:"items"`
}

type orderItemDoc struct {
	ID           string               `bson:"id"`
	ProductID    string               `bson:"productId"`
	ProductName  string               `bson:"productName"`
	ProductPrice primitive.Decimal128 `bson:"productPrice"`
	Quantity     int                  `bson:"quantity"`
	Subtotal     primitive.Decimal128 `bson:"subtotal"`
}

func fromOrder(o *order.Order) (orderDoc, error) {
	amount, err := toDecimal128(o.Amount())
	if err != nil {
		return orderDoc{}, err
	}
	c := o.Customer()
	d := orderDoc{
		ID:              o.ID().String(),
		OrderNumber:     o.OrderNumber(),
		CustomerName:    c.Name(),
		CustomerPhone:   c.Phone(),
		CustomerEmail:   c.Email(),
		PickupSlotID:    o.PickupSlotID().String(),
		Status:          o.Status().String(),
		Amount:          amount,
		Currency:        o.Currency(),
		PaymentMethod:   o.PaymentMethod().String(),
		PaymentProvider: o.PaymentProvider(),
		TempPickupCode:  o.TempPickupCode(),
		FinalPickupCode: o.FinalPickupCode(),
		Notes:           o.Notes(),
		ExpiresAt:       o.ExpiresAt(),
		CreatedAt:       o.CreatedAt(),
		Items:           make([]orderItemDoc, 0, len(o.Items())),
	}
	if uid := o.UserID(); uid != nil {
		s := uid.String()
		d.UserID = &s
	}
	for _, it := range o.Items() {
		price, err := toDecimal128(it.ProductPrice())
		if err != nil {
			return orderDoc{}, err
		}
		subtotal, err := toDecimal128(it.Subtotal())
		if err != nil {
			return orderDoc{}, err
		}
		d.Items = append(d.Items, orderItemDoc{
			ID:           it.ID().String(),
			ProductID:    it.ProductID().String(),
			ProductName:  it.ProductName(),
			ProductPrice: price,
			Quantity:     it.Quantity(),
			Subtotal:     subtotal,
		})
	}
	return d, nil
}

func (d orderDoc) toDomain() (*order.Order, error) {
	ids, err := parseIDs(d.ID, d.PickupSlotID)
	if err != nil {
		return nil, err
	}
	var userID *uuid.UUID
	if d.UserID != nil {
		uid, err := uuid.Parse(*d.UserID)
		if err != nil {
			return nil, err
		}
		userID = &uid
	}
	amount, err := fromDecimal128(d.Amount)
	if err != nil {
		return nil, err
	}
	items := make([]*order.Item, 0, len(d.Items))
	for _, it := range d.Items {
		itemIDs, err := parseIDs(it.ID, it.ProductID)
		if err != nil {
			return nil, err
		}
		price, err := fromDecimal128(it.ProductPrice)
		if err != nil {
			return nil, err
		}
		subtotal, err := fromDecimal128(it.Subtotal)
		if err != nil {
			return nil, err
		}
		items = append(items, order.ReconstructItem(itemIDs[0], ids[0], itemIDs[1], it.ProductName, price, it.Quantity, subtotal))
	}
	return order.Reconstruct(order.Snapshot{
		ID:              ids[0],
		OrderNumber:     d.OrderNumber,
		UserID:          userID,
		Customer:        order.ReconstructCustomer(d.CustomerName, d.CustomerPhone, d.CustomerEmail),
		PickupSlotID:    ids[1],
		Status:          order.Status(d.Status),
		Amount:          amount,
		Currency:        d.Currency,
		PaymentMethod:   payment.Method(d.PaymentMethod),
		PaymentProvider: d.PaymentProvider,
		TempPickupCode:  d.TempPickupCode,
		FinalPickupCode: d.FinalPickupCode,
		Notes:           d.Notes,
		ExpiresAt:       d.ExpiresAt.UTC(),
		CreatedAt:       d.CreatedAt.UTC(),
		Items:           items,
	}), nil
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	return primitive.ParseDecimal128(d.String())
}

func fromDecimal128(v primitive.Decimal128) (decimal.Decimal, error) {
	return decimal.NewFromString(v.String())
}

func parseIDs(raw ...string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, len(raw))
	for i, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

package queries

import (
	"click-collect/internal/domain/catalog"
	"click-collect/internal/domain/order"
	"click-collect/internal/domain/slot"
	"click-collect/internal/domain/user"
)

func toUserView(u *user.User) *UserView {
	return &UserView{
		ID:        u.ID(),
		Username:  u.Username().Value(),
		Email:     u.Email().Value(),
		Phone:     u.Phone(),
		CreatedAt: u.CreatedAt(),
	}
}

func toCategoryView(c *catalog.Category) *CategoryView {
	return &CategoryView{
		ID:           c.ID(),
		Name:         c.Name(),
		Slug:         c.Slug(),
		ImageURL:     c.ImageURL(),
		Description:  c.Description(),
		ProductCount: c.ProductCount(),
	}
}

func toProductView(p *catalog.Product) *ProductView {
	images := p.Images()
	if images == nil {
		images = []string{}
	}
	return &ProductView{
		ID:            p.ID(),
		SKU:           p.SKU(),
		Name:          p.Name(),
		Description:   p.Description(),
		Price:         p.Price(),
		Images:        images,
		Stock:         p.Stock(),
		CategoryID:    p.CategoryID(),
		IsActive:      p.IsActive(),
		IsPerishable:  p.IsPerishable(),
		RatingAverage: p.RatingAverage(),
		RatingCount:   p.RatingCount(),
		CreatedAt:     p.CreatedAt(),
	}
}

func toSlotView(s *slot.PickupSlot) *SlotView {
	return &SlotView{
		ID:        s.ID(),
		Date:      s.Date(),
		TimeFrom:  s.TimeFrom(),
		TimeTo:    s.TimeTo(),
		Capacity:  s.Capacity(),
		Remaining: s.Remaining(),
		IsActive:  s.IsActive(),
	}
}

func toOrderView(o *order.Order, s *slot.PickupSlot) *OrderView {
	items := make([]*OrderItemView, len(o.Items()))
	for i, it := range o.Items() {
		items[i] = &OrderItemView{
			ID:           it.ID(),
			ProductID:    it.ProductID(),
			ProductName:  it.ProductName(),
			ProductPrice: it.ProductPrice(),
			Quantity:     it.Quantity(),
			Subtotal:     it.Subtotal(),
		}
	}
	c := o.Customer()
	v := &OrderView{
		ID:              o.ID(),
		OrderNumber:     o.OrderNumber(),
		UserID:          o.UserID(),
		CustomerName:    c.Name(),
		CustomerPhone:   c.Phone(),
		CustomerEmail:   c.Email(),
		PickupSlotID:    o.PickupSlotID(),
		Status:          o.Status().String(),
		Amount:          o.Amount(),
		Currency:        o.Currency(),
		PaymentMethod:   o.PaymentMethod().String(),
		PaymentProvider: o.PaymentProvider(),
		TempPickupCode:  o.TempPickupCode(),
		FinalPickupCode: o.FinalPickupCode(),
		Notes:           o.Notes(),
		ExpiresAt:       o.ExpiresAt(),
		CreatedAt:       o.CreatedAt(),
		Items:           items,
	}
	if s != nil {
		v.PickupSlot = toSlotView(s)
	}
	return v
}

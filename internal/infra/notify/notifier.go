// Package notify delivers customer messages by email and SMS.
package notify

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"time"

	"click-collect/internal/usecase/commands"
)

const brand = "Géant Casino"

//go:embed templates/*.html
var templateFS embed.FS

var pages = map[string]*template.Template{
	"order_confirmation": mustPage("order_confirmation.html"),
	"password_reset":     mustPage("password_reset.html"),
	"two_factor":         mustPage("two_factor.html"),
}

func mustPage(name string) *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/"+name))
}

type Notifier struct {
	mail  Mailer
	sms   SMSSender
	clock func() time.Time
}

func NewNotifier(mail Mailer, sms SMSSender) *Notifier {
	return &Notifier{mail: mail, sms: sms, clock: time.Now}
}

var _ commands.Notifier = (*Notifier)(nil)

type page struct {
	Brand string
	Year  int
	Data  any
}

type orderPage struct {
	OrderNumber  string
	CustomerName string
	Items        []orderLine
	Amount       string
	Currency     string
	PickupCode   string
	PickupDate   string
	PickupFrom   string
	PickupTo     string
	ExpiresAt    string
}

type orderLine struct {
	Name     string
	Quantity int
	Subtotal string
}

func (n *Notifier) OrderConfirmationEmail(ctx context.Context, to string, c commands.OrderConfirmation) error {
	lines := make([]orderLine, len(c.Items))
	for i, it := range c.Items {
		lines[i] = orderLine{Name: it.Name, Quantity: it.Quantity, Subtotal: it.Subtotal.StringFixed(0)}
	}
	body, err := n.render("order_confirmation", orderPage{
		OrderNumber:  c.OrderNumber,
		CustomerName: c.CustomerName,
		Items:        lines,
		Amount:       c.Amount.StringFixed(0),
		Currency:     c.Currency,
		PickupCode:   c.PickupCode,
		PickupDate:   c.PickupDate,
		PickupFrom:   c.PickupFrom,
		PickupTo:     c.PickupTo,
		ExpiresAt:    c.ExpiresAt.Format("02/01/2006 15:04"),
	})
	if err != nil {
		return err
	}
	return n.mail.Send(ctx, to, "Confirmation de commande "+c.OrderNumber, body)
}

func (n *Notifier) OrderConfirmationSMS(ctx context.Context, phone string, c commands.OrderConfirmation) error {
	msg := fmt.Sprintf("%s: Commande %s confirmée. Code retrait: %s. Retrait le %s entre %s et %s.",
		brand, c.OrderNumber, c.PickupCode, c.PickupDate, c.PickupFrom, c.PickupTo)
	return n.sms.Send(ctx, phone, msg)
}

func (n *Notifier) PasswordResetEmail(ctx context.Context, to, username, resetURL string) error {
	body, err := n.render("password_reset", struct{ Username, ResetURL string }{username, resetURL})
	if err != nil {
		return err
	}
	return n.mail.Send(ctx, to, "Réinitialisation de votre mot de passe", body)
}

func (n *Notifier) TwoFactorEmail(ctx context.Context, to, username, code string) error {
	body, err := n.render("two_factor", struct{ Username, Code string }{username, code})
	if err != nil {
		return err
	}
	return n.mail.Send(ctx, to, "Votre code de vérification", body)
}

func (n *Notifier) TwoFactorSMS(ctx context.Context, phone, code string) error {
	msg := fmt.Sprintf("%s: Votre code de vérification est %s. Valide 10min. Ne le partagez pas.", brand, code)
	return n.sms.Send(ctx, phone, msg)
}

func (n *Notifier) render(name string, data any) (string, error) {
	var buf bytes.Buffer
	err := pages[name].ExecuteTemplate(&buf, "layout", page{Brand: brand, Year: n.clock().Year(), Data: data})
	if err != nil {
		return "", fmt.Errorf("failed to render %s email: %w", name, err)
	}
	return buf.String(), nil
}

// Package handoff formats orders for WhatsApp and builds the wa.me deep
// link that delegates order transmission to the messaging app. This is a
// boundary: success means the link was produced, not that any message was
// delivered.
package handoff

import (
	"fmt"
	"net/url"
	"strings"

	"agua-gas/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Handoff prepares WhatsApp hand-offs for assembled orders.
type Handoff interface {
	// Prepare renders the order message and builds the deep link for the
	// given destination number.
	Prepare(order model.Order, businessNumber string) (Result, error)
}

// Result carries the rendered message and the link the storefront opens.
type Result struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

// whatsappHandoff implements Handoff against the wa.me web endpoint.
type whatsappHandoff struct {
	logger zerolog.Logger
}

// NewWhatsApp creates the wa.me-backed hand-off.
func NewWhatsApp(logger zerolog.Logger) Handoff {
	return &whatsappHandoff{
		logger: logger.With().Str("component", "whatsapp_handoff").Logger(),
	}
}

// Prepare renders the order message and builds the deep link.
func (h *whatsappHandoff) Prepare(order model.Order, businessNumber string) (Result, error) {
	number := normalizeNumber(businessNumber)
	if number == "" {
		h.logger.Error().Str("business_number", businessNumber).Msg("invalid business WhatsApp number")
		return Result{}, fmt.Errorf("%w: destination number %q is not usable", model.ErrHandoffFailed, businessNumber)
	}

	message := FormatOrder(order)

	link := url.URL{
		Scheme:   "https",
		Host:     "wa.me",
		Path:     "/" + number,
		RawQuery: url.Values{"text": {message}}.Encode(),
	}

	h.logger.Info().
		Str("order_id", order.ID.String()).
		Str("destination", number).
		Msg("whatsapp hand-off prepared")

	return Result{Message: message, URL: link.String()}, nil
}

// FormatOrder renders the deterministic customer-facing order message.
// Section order is fixed: contact block, payment method, itemised lines,
// optional observations, subtotal, then the delivery fee line and grand
// total only when a fee is present.
func FormatOrder(order model.Order) string {
	var b strings.Builder

	b.WriteString("*NOVO PEDIDO*\n\n")
	fmt.Fprintf(&b, "*Cliente:* %s\n", order.CustomerName)
	fmt.Fprintf(&b, "*Telefone:* %s\n", order.Phone)
	fmt.Fprintf(&b, "*Endereço:* %s\n", order.Address)
	if order.Neighborhood != "" {
		fmt.Fprintf(&b, "*Bairro:* %s\n", order.Neighborhood)
	}
	fmt.Fprintf(&b, "*Forma de Pagamento:* %s\n\n", order.PaymentMethod.Label())

	b.WriteString("*Itens do Pedido:*\n")
	for i, line := range order.Lines {
		fmt.Fprintf(&b, "%d. %dx %s - %s\n", i+1, line.Quantity, line.Product.Name, line.Size.Name)
	}

	if order.Observations != "" {
		fmt.Fprintf(&b, "\n*Observações:* %s\n", order.Observations)
	}

	fmt.Fprintf(&b, "\n*Subtotal:* %s", formatAmount(order.Subtotal))

	if order.DeliveryFee != nil {
		if order.DeliveryFee.IsZero() {
			b.WriteString("\n*Taxa de Entrega:* Grátis")
		} else {
			fmt.Fprintf(&b, "\n*Taxa de Entrega:* %s", formatAmount(*order.DeliveryFee))
			fmt.Fprintf(&b, "\n*Total Geral:* %s", formatAmount(order.GrandTotal()))
		}
	}

	return b.String()
}

func formatAmount(d decimal.Decimal) string {
	return "R$ " + d.StringFixed(2)
}

// normalizeNumber strips formatting characters, keeping digits only, as
// wa.me expects the number without plus sign or separators.
func normalizeNumber(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

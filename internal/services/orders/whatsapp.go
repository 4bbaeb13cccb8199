package orders

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/salmansarfraz67/Order-Buddy/internal/errs"
	"github.com/salmansarfraz67/Order-Buddy/internal/lib/phone"
	"github.com/salmansarfraz67/Order-Buddy/internal/models"
)

// MessageTemplate определяет тип готового сообщения покупателю.
type MessageTemplate string

const (
	TemplateReceived  MessageTemplate = "received"
	TemplatePayment   MessageTemplate = "payment"
	TemplateConfirmed MessageTemplate = "confirmed"
	TemplateShipped   MessageTemplate = "shipped"
	TemplateDelivered MessageTemplate = "delivered"
)

// ParseMessageTemplate преобразует строку в MessageTemplate.
func ParseMessageTemplate(s string) (MessageTemplate, error) {
	switch MessageTemplate(s) {
	case TemplateReceived, TemplatePayment, TemplateConfirmed, TemplateShipped, TemplateDelivered:
		return MessageTemplate(s), nil
	default:
		return "", fmt.Errorf("unknown message template: %q", s)
	}
}

// WhatsAppLink собирает ссылку wa.me с готовым текстом сообщения
// для заказа. Шаблон shipped доступен только физическим товарам.
func (s *Service) WhatsAppLink(order *models.Order, shopName string, template MessageTemplate) (string, error) {
	if template == TemplateShipped && order.Type == models.TypeDigital {
		return "", errs.Validation("template", "not applicable to digital orders")
	}

	target := phone.WhatsAppTarget(order.Phone)
	if target == "" {
		return "", errs.Validation("phone", "contains no digits")
	}

	msg := composeMessage(order, shopName, template)
	return fmt.Sprintf("https://wa.me/%s?text=%s", target, url.QueryEscape(msg)), nil
}

func composeMessage(order *models.Order, shopName string, template MessageTemplate) string {
	shortID := "#" + order.ID
	if len(order.ID) > 6 {
		shortID = "#" + order.ID[:6]
	}
	digital := order.Type == models.TypeDigital

	var msg string
	switch template {
	case TemplateReceived:
		if digital {
			msg = fmt.Sprintf("Hi %s, thanks for your order %s for %s. Total amount: Rs. %s. We are processing your request now.",
				order.CustomerName, shortID, order.Product, formatAmount(order.Total))
		} else {
			msg = fmt.Sprintf("Hi %s, thanks for your order %s for %s. Total amount: Rs. %s. We will confirm it shortly.",
				order.CustomerName, shortID, order.Product, formatAmount(order.Total))
		}
	case TemplatePayment:
		if digital {
			msg = fmt.Sprintf("Hi %s, payment received for order %s. We are generating your digital content/access now. Thanks!",
				order.CustomerName, shortID)
		} else {
			msg = fmt.Sprintf("Hi %s, payment received for order %s. We are packing your items now. Thanks!",
				order.CustomerName, shortID)
		}
	case TemplateConfirmed:
		if digital {
			msg = fmt.Sprintf("Hi %s, your order %s is CONFIRMED! You will receive your files/access shortly.",
				order.CustomerName, shortID)
		} else {
			msg = fmt.Sprintf("Hi %s, your order %s is CONFIRMED! Estimated delivery: 3-5 days. Thank you for shopping with us.",
				order.CustomerName, shortID)
		}
	case TemplateShipped:
		tracking := ""
		if order.TrackingNumber != "" {
			tracking = "Tracking No: " + order.TrackingNumber
		}
		msg = fmt.Sprintf("Great news %s! Your order %s has been SHIPPED. %s\nYou should receive it soon.",
			order.CustomerName, shortID, tracking)
	case TemplateDelivered:
		if digital {
			msg = fmt.Sprintf("Hi %s, your order %s is complete! We have sent the files/access credentials. Please check your inbox/messages.",
				order.CustomerName, shortID)
		} else {
			msg = fmt.Sprintf("Hi %s, your order %s has been marked as delivered. We hope you love it! Please let us know if you have any feedback.",
				order.CustomerName, shortID)
		}
	}
	return msg + "\n- " + shopName
}

// formatAmount выводит сумму с разделителями тысяч, копейки только
// если они ненулевые.
func formatAmount(v float64) string {
	str := strconv.FormatFloat(v, 'f', -1, 64)
	intPart, fracPart, hasFrac := strings.Cut(str, ".")

	var b strings.Builder
	offset := len(intPart) % 3
	if offset == 0 {
		offset = 3
	}
	for i, r := range intPart {
		if i != 0 && (i-offset)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}

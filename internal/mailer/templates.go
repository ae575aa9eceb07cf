package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/dabirisdesserts/order-intake/internal/orders"
	"github.com/dabirisdesserts/order-intake/internal/pricing"
)

// Renderer builds the HTML bodies and subjects for the two notification
// messages. Construct once and reuse; the parsed templates are read-only.
type Renderer struct {
	customer *template.Template
	business *template.Template
}

type pricedItem struct {
	Name      string
	Quantity  int
	UnitPrice float64
	LineTotal float64
}

type emailData struct {
	Order           orders.Order
	Items           []pricedItem // quantity > 0 only
	DaysUntilPickup int
	HasRushFee      bool
	RushFee         float64
}

const customerTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1>Dabiri's Desserts</h1>
  <h2>Thank you for your order!</h2>
  <p>
    <strong>Order ID:</strong> {{.Order.OrderID}}<br>
    <strong>Order Date:</strong> {{.Order.SubmittedAt.Format "January 2, 2006"}}<br>
    <strong>Pickup Date:</strong> {{.Order.PickupDate.Format "January 2, 2006"}}
  </p>
  <h3>Customer Information</h3>
  <p><strong>Name:</strong> {{.Order.CustomerName}}<br>
     <strong>Email:</strong> {{.Order.Email}}<br>
     <strong>Phone:</strong> {{.Order.Phone}}</p>
  <h3>Order Details</h3>
  {{range .Items}}<p><strong>{{.Name}}:</strong> {{.Quantity}} x ${{money .UnitPrice}} = ${{money .LineTotal}}</p>
  {{end}}{{with .Order.Annotations.SpecialInstructions}}<p><strong>Special Instructions:</strong> {{.}}</p>{{end}}
  <h3>Total: ${{money .Order.TotalPrice}}</h3>
  <p><strong>Next Steps:</strong><br>
     I will email you within 3 business days with a sketch of your order.<br>
     Final price confirmation will be provided.<br>
     Payment details will be shared once the design is approved.</p>
  <p>Questions? Reply to this email or call me directly.<br>
     Thank you for choosing Dabiri's Desserts!</p>
</div>`

const businessTemplate = `<div style="font-family: Arial, sans-serif; max-width: 700px; margin: 0 auto;">
  <h1>New Order Received</h1>
  <p><strong>Order ID:</strong> {{.Order.OrderID}}<br>
     <strong>Order Date:</strong> {{.Order.SubmittedAt.Format "January 2, 2006"}}<br>
     <strong>Pickup Date:</strong> {{.Order.PickupDate.Format "January 2, 2006"}}<br>
     <strong>Days Until Pickup:</strong> {{.DaysUntilPickup}} days</p>
  <h3>Customer Information</h3>
  <p><strong>Name:</strong> {{.Order.CustomerName}}<br>
     <strong>Email:</strong> {{.Order.Email}}<br>
     <strong>Phone:</strong> {{.Order.Phone}}</p>
  <h3>Order Details</h3>
  {{if .Items}}{{range .Items}}<p><strong>{{.Name}}</strong> — quantity {{.Quantity}}, ${{money .UnitPrice}} each = ${{money .LineTotal}}</p>
  {{end}}{{else}}<p>No specific products selected. Customer may have custom requirements in special instructions.</p>{{end}}
  {{with .Order.Annotations.SpecialInstructions}}<h3>Special Instructions</h3><p>{{.}}</p>{{end}}
  {{with .Order.Annotations.DesignRequests}}<h3>Design/Aesthetic Requests</h3><p>{{.}}</p>{{end}}
  {{with .Order.Annotations.CakeText}}<h3>Cake Text</h3><p>{{.}}</p>{{end}}
  {{with .Order.Annotations.ColorRequests}}<h3>Color Requests</h3><p>{{.}}</p>{{end}}
  {{with .Order.Annotations.CustomFlavor}}<h3>Custom Flavor/Filling</h3><p>{{.}}</p>{{end}}
  {{with .Order.Annotations.AdditionalSpecs}}<h3>Additional Specifications</h3><p>{{.}}</p>{{end}}
  {{with .Order.Annotations.Allergies}}<h3>Allergies/Dietary Restrictions</h3><p><strong>IMPORTANT:</strong> {{.}}</p>{{end}}
  {{with .Order.Annotations.HowDidYouHear}}<h3>How Did You Hear About Us</h3><p>{{.}}</p>{{end}}
  <h3>Pricing Breakdown</h3>
  {{range .Items}}<p>{{.Name}} ({{.Quantity}} x ${{money .UnitPrice}}) — ${{money .LineTotal}}</p>
  {{end}}{{if .HasRushFee}}<p>Rush Fee ({{.DaysUntilPickup}} days notice) — ${{money .RushFee}}</p>{{end}}
  <h3>Total: ${{money .Order.TotalPrice}}</h3>
  <p><strong>Action Required:</strong><br>
     Create sketch of the order and send to customer.<br>
     Send confirmation email with final pricing.<br>
     Contact customer if clarification is needed.</p>
</div>`

var templateFuncs = template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
}

// NewRenderer parses the notification templates. Parsing failures are a
// programming error, hence the Must.
func NewRenderer() *Renderer {
	return &Renderer{
		customer: template.Must(template.New("customer").Funcs(templateFuncs).Parse(customerTemplate)),
		business: template.Must(template.New("business").Funcs(templateFuncs).Parse(businessTemplate)),
	}
}

// Customer renders the order-confirmation message for the customer.
func (r *Renderer) Customer(o orders.Order, now time.Time) (subject, html string, err error) {
	subject = fmt.Sprintf("Order Confirmation - %s - Dabiri's Desserts", o.OrderID)
	html, err = render(r.customer, o, now)
	return subject, html, err
}

// Business renders the new-order notification for the business owner.
func (r *Renderer) Business(o orders.Order, now time.Time) (subject, html string, err error) {
	subject = fmt.Sprintf("New Order Received - %s", o.OrderID)
	html, err = render(r.business, o, now)
	return subject, html, err
}

func render(t *template.Template, o orders.Order, now time.Time) (string, error) {
	days := pricing.DaysUntilPickup(o.PickupDate, now)

	items := make([]pricedItem, 0, len(o.LineItems))
	for _, it := range o.LineItems {
		if it.Quantity <= 0 {
			continue
		}
		items = append(items, pricedItem{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			LineTotal: it.UnitPrice * float64(it.Quantity),
		})
	}

	data := emailData{
		Order:           o,
		Items:           items,
		DaysUntilPickup: days,
		HasRushFee:      days < pricing.RushThresholdDays,
		RushFee:         pricing.RushFee,
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s template: %w", t.Name(), err)
	}
	return buf.String(), nil
}

package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"showroom/internal/catalog"
	"showroom/internal/engine"
	"showroom/internal/selection"

	"github.com/chewxy/math32"
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	popupMaxWidth  = 900
	popupMaxHeight = 600
	popupMargin    = 16
	popupPad       = 24
	maxRating      = 5
)

// PopupLayout holds every rect of the product popup for one screen size.
type PopupLayout struct {
	Card      rl.Rectangle
	Close     rl.Rectangle
	Header    rl.Rectangle
	Left      rl.Rectangle
	Right     rl.Rectangle
	AddToCart rl.Rectangle
	Compare   rl.Rectangle
	Footer    rl.Rectangle
	Continue  rl.Rectangle
	BuyNow    rl.Rectangle
	Hint      rl.Rectangle
}

// LayoutPopup centers the card on the screen, shrinking it to fit small
// windows.
func LayoutPopup(w, h float32) PopupLayout {
	size := rl.Vector2{
		X: math32.Min(popupMaxWidth, w-2*popupMargin),
		Y: math32.Min(popupMaxHeight, h-2*popupMargin),
	}
	var l PopupLayout
	l.Card = At(middleCenter, rl.Vector2{}, size).Rect(screenRect(w, h))
	l.Close = rl.Rectangle{X: l.Card.X + l.Card.Width - 44, Y: l.Card.Y + 8, Width: 36, Height: 36}
	l.Hint = At(topRight, rl.Vector2{X: -16, Y: 16}, rl.Vector2{X: 200, Y: 40}).Rect(screenRect(w, h))

	content := inset(l.Card, popupPad)
	l.Header, content = splitRows(content, 80)
	body, footer := splitRows(content, content.Height-56)
	l.Footer = footer

	half := (body.Width - popupPad) / 2
	l.Left = rl.Rectangle{X: body.X, Y: body.Y, Width: half, Height: body.Height}
	l.Right = rl.Rectangle{X: body.X + half + popupPad, Y: body.Y, Width: half, Height: body.Height}

	buttonsY := l.Left.Y + l.Left.Height - 44
	l.AddToCart = rl.Rectangle{X: l.Left.X, Y: buttonsY, Width: half*0.6 - 6, Height: 40}
	l.Compare = rl.Rectangle{X: l.Left.X + half*0.6 + 6, Y: buttonsY, Width: half*0.4 - 6, Height: 40}

	footerY := footer.Y + 12
	l.BuyNow = rl.Rectangle{X: footer.X + footer.Width - 200, Y: footerY, Width: 200, Height: 40}
	l.Continue = rl.Rectangle{X: l.BuyNow.X - 12 - 180, Y: footerY, Width: 180, Height: 40}
	return l
}

// Popup is the modal product details window. It reads the selection store
// and closes it from its own buttons.
type Popup struct {
	store *selection.Store
	log   *slog.Logger

	layout PopupLayout

	AddToCart engine.EventWithArg[catalog.Product]
	Compare   engine.EventWithArg[catalog.Product]
	BuyNow    engine.EventWithArg[catalog.Product]
}

func NewPopup(store *selection.Store, log *slog.Logger) *Popup {
	if log == nil {
		log = slog.Default()
	}
	return &Popup{store: store, log: log}
}

// Layout recomputes the popup rects for a new screen size.
func (p *Popup) Layout(w, h float32) {
	p.layout = LayoutPopup(w, h)
}

// Contains reports whether pt falls on the open popup.
func (p *Popup) Contains(pt rl.Vector2) bool {
	return p.store.IsOpen() && rl.CheckCollisionPointRec(pt, p.layout.Card)
}

// FormatPrice renders a price the way the catalog shows it.
func FormatPrice(price float64) string {
	whole := int64(price)
	cents := int64(math32.Round(float32((price - float64(whole)) * 100)))
	if cents == 100 {
		whole, cents = whole+1, 0
	}
	digits := fmt.Sprint(whole)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if cents == 0 {
		return "$" + b.String()
	}
	return fmt.Sprintf("$%s.%02d", b.String(), cents)
}

func StockLabel(inStock bool) string {
	if inStock {
		return "In Stock"
	}
	return "Out of Stock"
}

func RatingLabel(rating float32) string {
	return fmt.Sprintf("(%.1f/%d stars)", rating, maxRating)
}

func (p *Popup) Draw(w, h float32) {
	product, ok := p.store.Selected()
	if !ok {
		return
	}
	l := p.layout

	rl.DrawRectangleRec(screenRect(w, h), colorBackdrop)
	Panel{Color: colorCard, BorderColor: colorCardBorder, BorderWidth: 1, Radius: 12}.Draw(l.Card)

	p.drawHeader(product, l)
	p.drawLeft(product, l)
	p.drawRight(product, l)
	p.drawFooter(product, l)

	Panel{Color: colorHint, Radius: 8}.Draw(l.Hint)
	Text(l.Hint, "Press ESC to close", 16, rl.White, AlignCenter)

	if gui.Button(l.Close, "X") {
		p.close(product, "close button")
	}
}

func (p *Popup) drawHeader(product catalog.Product, l PopupLayout) {
	title, rest := splitRows(l.Header, 40)
	title.Width -= 48
	Text(title, product.Name, 32, colorTextDark, AlignLeft)

	row, _ := splitRows(rest, 28)
	bar := rl.Rectangle{X: row.X, Y: row.Y + 8, Width: 100, Height: 12}
	Bar{Background: rl.NewColor(229, 231, 235, 255), Fill: colorStar, Border: colorCardBorder}.
		Draw(bar, product.Rating, maxRating)

	label := RatingLabel(product.Rating)
	labelRect := rl.Rectangle{X: bar.X + bar.Width + 8, Y: row.Y, Width: float32(rl.MeasureText(label, 16)), Height: row.Height}
	Text(labelRect, label, 16, colorTextMuted, AlignLeft)

	stock := StockLabel(product.InStock)
	bg, fg := colorStockBg, colorStockText
	if !product.InStock {
		bg, fg = colorSoldOutBg, colorSoldOutText
	}
	badge := rl.Rectangle{X: labelRect.X + labelRect.Width + 10, Y: row.Y + 3, Width: float32(rl.MeasureText(stock, 14)) + 16, Height: 22}
	Panel{Color: bg, Radius: 11}.Draw(badge)
	Text(badge, stock, 14, fg, AlignCenter)
}

func (p *Popup) drawLeft(product catalog.Product, l PopupLayout) {
	image := l.Left
	image.Height -= 56
	Panel{Color: colorInfoBg, BorderColor: colorCardBorder, BorderWidth: 1, Radius: 10}.Draw(image)

	info, rows := splitRows(inset(image, 16), 24)
	Text(info, "Product Information", 18, colorTextDark, AlignLeft)
	facts := [][2]string{
		{"SKU:", strings.ToUpper(product.ID)},
		{"Warranty:", "1 Year"},
		{"Shipping:", "2-3 Days"},
		{"Support:", "24/7"},
	}
	for _, f := range facts {
		var row rl.Rectangle
		row, rows = splitRows(rows, 24)
		Text(row, f[0], 16, colorTextMuted, AlignLeft)
		row.X += 90
		row.Width -= 90
		Text(row, f[1], 16, colorTextDark, AlignLeft)
	}

	if gui.Button(l.AddToCart, "Add to Cart") {
		p.AddToCart.Invoke(product)
	}
	if gui.Button(l.Compare, "Compare") {
		p.Compare.Invoke(product)
	}
}

func (p *Popup) drawRight(product catalog.Product, l PopupLayout) {
	body := l.Right
	row, body := splitRows(body, 44)
	Text(row, FormatPrice(product.Price), 36, colorPrice, AlignLeft)
	row, body = splitRows(body, 22)
	Text(row, "Free shipping - 30-day returns", 14, colorTextMuted, AlignLeft)

	measure := measurer(16)
	lines, body := Flow(body, product.Description, 20, 6, measure)
	for _, line := range lines {
		Text(line.Row, line.Text, 16, colorTextBody, AlignLeft)
	}
	if body.Height < 48 {
		return
	}

	row, body = splitRows(body, 28)
	Text(row, "Key Features:", 18, colorTextDark, AlignLeft)
	body.Width -= 18
	lines, _ = Flow(body, product.Features, 20, 0, measure)
	for _, line := range lines {
		if line.First {
			rl.DrawCircleV(rl.Vector2{X: line.Row.X + 4, Y: line.Row.Y + line.Row.Height/2}, 4, colorAccent)
		}
		line.Row.X += 18
		Text(line.Row, line.Text, 16, colorTextBody, AlignLeft)
	}
}

func (p *Popup) drawFooter(product catalog.Product, l PopupLayout) {
	rl.DrawLineEx(rl.Vector2{X: l.Footer.X, Y: l.Footer.Y}, rl.Vector2{X: l.Footer.X + l.Footer.Width, Y: l.Footer.Y}, 1, colorCardBorder)
	help := rl.Rectangle{X: l.Footer.X, Y: l.Continue.Y, Width: l.Continue.X - l.Footer.X - 12, Height: l.Continue.Height}
	Text(help, "Need help? Contact our sales team.", 14, colorTextMuted, AlignLeft)

	if gui.Button(l.Continue, "Continue Shopping") {
		p.close(product, "continue shopping")
	}
	if gui.Button(l.BuyNow, "Buy Now - "+FormatPrice(product.Price)) {
		p.BuyNow.Invoke(product)
	}
}

func (p *Popup) close(product catalog.Product, via string) {
	if p.store.Close() {
		p.log.Debug("popup dismissed", "product", product.ID, "via", via)
	}
}

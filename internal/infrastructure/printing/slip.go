package printing

import (
	"context"
	"errors"
	"fmt"
	"time"

	tradeapp "github.com/alshbh/storefront/internal/application/trade"
	"github.com/alshbh/storefront/internal/domain/shared"
	"github.com/alshbh/storefront/internal/domain/trade"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypePDF  = "application/pdf"
)

// SlipConfig holds the store details printed on every slip
type SlipConfig struct {
	StoreName  string
	StorePhone string
	PaperSize  PaperSize
}

// SlipPrinter renders order packing slips. With a PDF renderer it returns
// PDF documents, otherwise the HTML itself.
type SlipPrinter struct {
	engine *TemplateEngine
	pdf    PDFRenderer
	config SlipConfig
	logger *zap.Logger
}

// NewSlipPrinter creates a SlipPrinter; pdf may be nil
func NewSlipPrinter(engine *TemplateEngine, pdf PDFRenderer, config SlipConfig, logger *zap.Logger) *SlipPrinter {
	if config.StoreName == "" {
		config.StoreName = "Alshbh Fashion"
	}
	if config.PaperSize == "" {
		config.PaperSize = PaperA5
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SlipPrinter{engine: engine, pdf: pdf, config: config, logger: logger}
}

type slipView struct {
	StoreName      string
	StorePhone     string
	OrderNumber    int64
	CreatedAt      time.Time
	Status         string
	CustomerName   string
	PhonePrimary   string
	PhoneSecondary string
	Address        string
	Governorate    string
	Notes          string
	Items          []trade.OrderItem
	Subtotal       decimal.Decimal
	Shipping       decimal.Decimal
	Total          decimal.Decimal
}

// RenderPackingSlip implements trade.SlipRenderer
func (p *SlipPrinter) RenderPackingSlip(ctx context.Context, slip tradeapp.PackingSlip) (*tradeapp.Document, error) {
	o := slip.Order
	html, err := p.engine.Render("packing_slip.html", slipView{
		StoreName:      p.config.StoreName,
		StorePhone:     p.config.StorePhone,
		OrderNumber:    o.OrderNumber,
		CreatedAt:      o.CreatedAt,
		Status:         string(o.Status),
		CustomerName:   o.CustomerName,
		PhonePrimary:   o.PhonePrimary,
		PhoneSecondary: o.PhoneSecondary,
		Address:        o.Address,
		Governorate:    slip.GovernorateName,
		Notes:          o.Notes,
		Items:          o.Items,
		Subtotal:       o.Subtotal,
		Shipping:       o.ShippingPrice,
		Total:          o.TotalPrice,
	})
	if err != nil {
		return nil, asDomainError(err)
	}

	base := fmt.Sprintf("packing-slip-%d", o.OrderNumber)
	if p.pdf == nil {
		return &tradeapp.Document{ContentType: contentTypeHTML, Filename: base + ".html", Body: []byte(html)}, nil
	}

	result, err := p.pdf.Render(ctx, &RenderRequest{
		HTML:      html,
		Title:     base,
		PaperSize: p.config.PaperSize,
	})
	if err != nil {
		p.logger.Error("Packing slip PDF rendering failed",
			zap.String("order_id", o.ID.String()),
			zap.Error(err))
		return nil, asDomainError(err)
	}
	return &tradeapp.Document{ContentType: contentTypePDF, Filename: base + ".pdf", Body: result.PDFData}, nil
}

// asDomainError keeps the render code so the HTTP layer can map it
func asDomainError(err error) error {
	var re *RenderError
	if errors.As(err, &re) {
		code := re.Code
		if code != ErrCodeRenderTimeout {
			code = ErrCodeRenderFailed
		}
		return shared.NewDomainError(code, re.Message).WithCause(err)
	}
	return shared.NewDomainError(ErrCodeRenderFailed, "Failed to render packing slip").WithCause(err)
}

var _ tradeapp.SlipRenderer = (*SlipPrinter)(nil)

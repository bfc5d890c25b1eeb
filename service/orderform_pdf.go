package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"salespulse/models"
)

// A4 paper size in inches for Chrome's print backend.
const (
	a4WidthIn  = 8.27
	a4HeightIn = 11.69
)

// OrderFormPDF renders the printable A4 order form and prints it to a
// PDF file through headless Chrome.
type OrderFormPDF struct {
	rowsPerPage int
	chromePath  string
	log         *zap.Logger
}

// NewOrderFormPDF creates the PDF service. rowsPerPage defaults to 22
// when non-positive; an empty chromePath triggers autodetection.
func NewOrderFormPDF(rowsPerPage int, chromePath string, log *zap.Logger) *OrderFormPDF {
	if rowsPerPage <= 0 {
		rowsPerPage = 22
	}
	return &OrderFormPDF{rowsPerPage: rowsPerPage, chromePath: chromePath, log: log}
}

// ChunkPrintDetails splits detail rows into fixed-size pages, keeping
// row order.
func ChunkPrintDetails(details []models.OrderPrintDetail, size int) [][]models.OrderPrintDetail {
	if size <= 0 {
		size = 22
	}
	var chunks [][]models.OrderPrintDetail
	for start := 0; start < len(details); start += size {
		end := start + size
		if end > len(details) {
			end = len(details)
		}
		chunks = append(chunks, details[start:end])
	}
	return chunks
}

type pdfPageData struct {
	First bool
	Last  bool
	Rows  []models.OrderPrintDetail
}

type pdfTemplateData struct {
	Master   models.OrderPrintMaster
	Pages    []pdfPageData
	TotalQty int
}

// RenderHTML produces the order form HTML: company header on every
// page, master block on the first page only, detail table in 22-row
// chunks, quantity total on the last page.
func (s *OrderFormPDF) RenderHTML(master models.OrderPrintMaster, details []models.OrderPrintDetail) (string, error) {
	chunks := ChunkPrintDetails(details, s.rowsPerPage)
	if len(chunks) == 0 {
		chunks = [][]models.OrderPrintDetail{{}}
	}

	data := pdfTemplateData{Master: master}
	for i, rows := range chunks {
		data.Pages = append(data.Pages, pdfPageData{
			First: i == 0,
			Last:  i == len(chunks)-1,
			Rows:  rows,
		})
	}
	for _, d := range details {
		data.TotalQty += d.Qty.Int()
	}

	tmpl, err := template.New("orderform").Parse(orderFormTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// detectChromePath resolves the Chrome/Chromium executable: configured
// path first, then common installation locations.
func (s *OrderFormPDF) detectChromePath() string {
	if s.chromePath != "" {
		if _, err := os.Stat(s.chromePath); err == nil {
			return s.chromePath
		}
	}
	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Generate renders the order form and writes the PDF to outPath.
func (s *OrderFormPDF) Generate(ctx context.Context, master models.OrderPrintMaster, details []models.OrderPrintDetail, outPath string) error {
	html, err := s.RenderHTML(master, details)
	if err != nil {
		return err
	}

	tmpDir, err := os.MkdirTemp("", "salespulse-pdf-")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "orderform.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write render file: %w", err)
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, 90*time.Second)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // required when running inside containers
	)
	if chromePath := s.detectChromePath(); chromePath != "" {
		s.log.Debug("using chrome executable", zap.String("path", chromePath))
		opts = append(opts, chromedp.ExecPath(chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctxTimeout, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	var pdfBuf []byte
	err = chromedp.Run(chromedpCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			pdfBuf, _, printErr = page.PrintToPDF().
				WithPaperWidth(a4WidthIn).
				WithPaperHeight(a4HeightIn).
				WithPrintBackground(true).
				WithMarginTop(0.3).
				WithMarginBottom(0.3).
				WithMarginLeft(0.3).
				WithMarginRight(0.3).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to print order form: %w", err)
	}

	if err := os.WriteFile(outPath, pdfBuf, 0644); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	s.log.Info("order form printed",
		zap.String("path", outPath),
		zap.Int("pages", (len(details)+s.rowsPerPage-1)/s.rowsPerPage))
	return nil
}

package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"salespulse/models"
)

func details(n int) []models.OrderPrintDetail {
	out := make([]models.OrderPrintDetail, n)
	for i := range out {
		out[i] = models.OrderPrintDetail{
			SNo:   "1",
			Name:  "ACME KNITS",
			Style: "S1",
			Size:  "M",
			Qty:   models.FlexInt(2),
		}
	}
	return out
}

func TestChunkPrintDetails(t *testing.T) {
	chunks := ChunkPrintDetails(details(50), 22)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 22)
	assert.Len(t, chunks[1], 22)
	assert.Len(t, chunks[2], 6)
}

func TestChunkPrintDetails_ExactMultiple(t *testing.T) {
	chunks := ChunkPrintDetails(details(44), 22)
	assert.Len(t, chunks, 2)
}

func TestChunkPrintDetails_Empty(t *testing.T) {
	assert.Empty(t, ChunkPrintDetails(nil, 22))
}

func TestChunkPrintDetails_DefaultSize(t *testing.T) {
	chunks := ChunkPrintDetails(details(23), 0)
	require.Len(t, chunks, 2)
	assert.Len(t, chunks[0], 22)
}

func testMaster() models.OrderPrintMaster {
	return models.OrderPrintMaster{
		ID:      models.FlexInt(7),
		Date:    "01-09-2026",
		Contact: "GLOBE TEXTILES",
		Address: "44 MILL ROAD, ERODE",
		Phone:   "9876543210",
		User:    "Operator",
	}
}

func TestRenderHTML_SinglePage(t *testing.T) {
	s := NewOrderFormPDF(22, "", zap.NewNop())
	html, err := s.RenderHTML(testMaster(), details(3))
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(html, `class="page"`))
	assert.Contains(t, html, "ESSA GARMENTS PRIVATE LIMITED")
	assert.Contains(t, html, "ORDER FORM")
	assert.Contains(t, html, "GLOBE TEXTILES")
	assert.Contains(t, html, ">7<", "order number renders as a plain int")
	// 3 rows of qty 2 plus the total row
	assert.Contains(t, html, ">6<")
}

func TestRenderHTML_MasterOnFirstPageTotalOnLast(t *testing.T) {
	s := NewOrderFormPDF(22, "", zap.NewNop())
	html, err := s.RenderHTML(testMaster(), details(50))
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(html, `class="page"`))
	assert.Equal(t, 1, strings.Count(html, "FROM :"), "master block renders only on the first page")
	assert.Equal(t, 3, strings.Count(html, "ESSA GARMENTS PRIVATE LIMITED"), "company header repeats on every page")
	assert.Contains(t, html, ">100<", "quantity total renders once on the last page")
}

func TestRenderHTML_NoDetailsStillRendersOnePage(t *testing.T) {
	s := NewOrderFormPDF(22, "", zap.NewNop())
	html, err := s.RenderHTML(testMaster(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(html, `class="page"`))
	assert.Contains(t, html, "FROM :")
}

func TestRenderHTML_EscapesContent(t *testing.T) {
	s := NewOrderFormPDF(22, "", zap.NewNop())
	master := testMaster()
	master.Contact = `<script>alert("x")</script>`
	html, err := s.RenderHTML(master, nil)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert")
}

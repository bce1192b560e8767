// Package report renders the branded PDF documents of the analysis:
// the indication discovery report and the per-indication dossier.
// Drawing goes through an explicit Canvas so pagination and the
// per-page chrome are structural, not call-site discipline.
package report

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/yaoapp/kun/log"
)

// A4 portrait, millimeter units.
const (
	pageWidth        = 210.0
	pageHeight       = 297.0
	headerBand       = 25.0
	pageBreakReserve = 20.0
	metricBoxHeight  = 20.0
	bannerHeight     = 25.0
)

// Canvas is one paginated document with a running cursor. Every page
// receives the header band on creation and the footer band on
// finalization through the registered page hooks. A Canvas belongs to
// a single generation call and is never shared.
type Canvas struct {
	pdf   *fpdf.Fpdf
	style Style
	logo  string
	tr    func(string) string
}

// NewCanvas builds an empty document in the given style. A logo path
// that does not resolve to a readable image is dropped, the document
// renders without it.
func NewCanvas(style Style, logo string) *Canvas {
	canvas := &Canvas{
		pdf:   fpdf.New("P", "mm", "A4", ""),
		style: style,
	}
	canvas.pdf.SetCompression(style.Compression)
	canvas.tr = canvas.pdf.UnicodeTranslatorFromDescriptor("")

	if logo != "" {
		if _, err := os.Stat(logo); err != nil {
			log.Trace("logo %s skipped: %s", logo, err.Error())
		} else {
			canvas.pdf.RegisterImageOptions(logo, fpdf.ImageOptions{ReadDpi: true})
			if canvas.pdf.Err() {
				log.Trace("logo %s skipped: not a usable image", logo)
				canvas.pdf.ClearError()
			} else {
				canvas.logo = logo
			}
		}
	}

	canvas.pdf.SetHeaderFunc(canvas.header)
	canvas.pdf.SetFooterFunc(canvas.footer)
	return canvas
}

// header stamps the brand band, runs on every page creation.
func (canvas *Canvas) header() {
	pdf, style := canvas.pdf, canvas.style

	canvas.fill(style.LightBlue)
	pdf.Rect(0, 0, pageWidth, headerBand, "F")

	if canvas.logo != "" {
		pdf.ImageOptions(canvas.logo, 10, 5, 30, 0, false, fpdf.ImageOptions{ReadDpi: true}, 0, "")
	}

	canvas.font("B", 12)
	canvas.text(style.DeepBlue)
	pdf.SetXY(45, 8)
	pdf.CellFormat(0, 5, canvas.tr(style.HeaderTitle), "", 0, "L", false, 0, "")

	canvas.font("", 9)
	canvas.text(style.Violet)
	pdf.SetXY(45, 14)
	pdf.CellFormat(0, 5, canvas.tr(style.HeaderSubtitle), "", 0, "L", false, 0, "")

	pdf.Ln(headerBand)
}

// footer stamps the separator, footer text and page number, runs on
// every page finalization.
func (canvas *Canvas) footer() {
	pdf, style := canvas.pdf, canvas.style

	pdf.SetY(-20)
	canvas.draw(style.Violet)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())

	canvas.font("", 8)
	canvas.text(style.DeepBlue)
	pdf.Ln(3)
	pdf.CellFormat(0, 5, canvas.tr(style.FooterText), "", 0, "C", false, 0, "")

	pdf.SetXY(-30, -15)
	pdf.CellFormat(0, 5, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
}

func (canvas *Canvas) font(styleStr string, size float64) {
	canvas.pdf.SetFont(canvas.style.Font, styleStr, size)
}

func (canvas *Canvas) text(color RGB) {
	canvas.pdf.SetTextColor(color.R, color.G, color.B)
}

func (canvas *Canvas) fill(color RGB) {
	canvas.pdf.SetFillColor(color.R, color.G, color.B)
}

func (canvas *Canvas) draw(color RGB) {
	canvas.pdf.SetDrawColor(color.R, color.G, color.B)
}

// AddPage starts a new page. The hooks close the current page with
// the footer and stamp the header on the new one.
func (canvas *Canvas) AddPage() {
	canvas.pdf.AddPage()
}

// Ln advances the cursor to the next line, a negative height reuses
// the last cell height.
func (canvas *Canvas) Ln(height float64) {
	canvas.pdf.Ln(height)
}

// Y returns the vertical cursor position on the current page.
func (canvas *Canvas) Y() float64 {
	return canvas.pdf.GetY()
}

// Page returns the current page number.
func (canvas *Canvas) Page() int {
	return canvas.pdf.PageNo()
}

// PageCount returns the number of pages in the document.
func (canvas *Canvas) PageCount() int {
	return canvas.pdf.PageCount()
}

// EnsureSpace starts a new page when fewer than height units remain
// above the footer reserve. Blocks drawn at absolute coordinates call
// this first so nothing lands outside the printable area.
func (canvas *Canvas) EnsureSpace(height float64) {
	if canvas.pdf.GetY()+height > pageHeight-pageBreakReserve {
		canvas.pdf.AddPage()
	}
}

// Centered draws one full-width centered line.
func (canvas *Canvas) Centered(line string, height float64, size float64, bold bool, color RGB) {
	styleStr := ""
	if bold {
		styleStr = "B"
	}
	canvas.font(styleStr, size)
	canvas.text(color)
	canvas.pdf.CellFormat(0, height, canvas.tr(line), "", 1, "C", false, 0, "")
}

// SectionTitle draws a section heading with its underline rule and a
// fixed gap below.
func (canvas *Canvas) SectionTitle(title string) {
	canvas.font("B", 14)
	canvas.text(canvas.style.DeepBlue)
	canvas.pdf.Ln(5)
	canvas.pdf.CellFormat(0, 10, canvas.tr(title), "", 1, "L", false, 0, "")

	canvas.draw(canvas.style.Violet)
	canvas.pdf.Line(10, canvas.pdf.GetY(), 80, canvas.pdf.GetY())
	canvas.pdf.Ln(5)
}

// SubsectionTitle draws a smaller emphasized heading.
func (canvas *Canvas) SubsectionTitle(title string) {
	canvas.font("B", 11)
	canvas.text(canvas.style.Violet)
	canvas.pdf.Ln(3)
	canvas.pdf.CellFormat(0, 8, canvas.tr(title), "", 1, "L", false, 0, "")
}

// BodyText draws a word-wrapped paragraph at fixed line height,
// breaking pages as needed.
func (canvas *Canvas) BodyText(body string) {
	canvas.font("", 10)
	canvas.text(canvas.style.DeepBlue)
	canvas.pdf.MultiCell(0, 5, canvas.tr(body), "", "J", false)
}

// MetricBox draws a filled, bordered box with a large value over a
// small label at the given position. Line breaks in the value stack
// it across centered lines inside the value zone.
func (canvas *Canvas) MetricBox(label string, value string, x float64, y float64, width float64) {
	pdf, style := canvas.pdf, canvas.style

	canvas.fill(style.SoftLavender)
	pdf.Rect(x, y, width, metricBoxHeight, "F")
	canvas.draw(style.Violet)
	pdf.Rect(x, y, width, metricBoxHeight, "D")

	canvas.font("B", 14)
	canvas.text(style.Violet)
	lines := strings.Split(value, "\n")
	height := 8.0 / float64(len(lines))
	for i, line := range lines {
		pdf.SetXY(x, y+2+float64(i)*height)
		pdf.CellFormat(width, height, canvas.tr(strings.TrimSpace(line)), "", 0, "C", false, 0, "")
	}

	pdf.SetXY(x, y+11)
	canvas.font("", 7)
	canvas.text(style.DeepBlue)
	pdf.CellFormat(width, 5, canvas.tr(label), "", 0, "C", false, 0, "")
}

// Table is a bordered table block: an inverted header row followed by
// one row per record, fixed column widths, per-column alignment.
type Table struct {
	Widths       []float64
	Headers      []string
	Aligns       []string
	HeaderHeight float64
	RowHeight    float64
	TextSize     float64
	Rows         [][]string
}

// Table draws the table block at the cursor.
func (canvas *Canvas) Table(table Table) {
	pdf, style := canvas.pdf, canvas.style

	canvas.fill(style.Violet)
	canvas.text(style.White)
	canvas.font("B", 9)
	for i, header := range table.Headers {
		pdf.CellFormat(table.Widths[i], table.HeaderHeight, canvas.tr(header), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	canvas.font("", table.TextSize)
	canvas.text(style.DeepBlue)
	for _, row := range table.Rows {
		for i, cell := range row {
			pdf.CellFormat(table.Widths[i], table.RowHeight, canvas.tr(cell), "1", 0, table.Aligns[i], false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// Banner draws a filled call-out box with a bold lead line and a
// wrapped body.
func (canvas *Canvas) Banner(lead string, body string) {
	pdf, style := canvas.pdf, canvas.style

	canvas.EnsureSpace(bannerHeight)
	y := pdf.GetY()
	canvas.fill(style.SoftLavender)
	pdf.Rect(10, y, 190, bannerHeight, "F")

	pdf.SetXY(15, y+5)
	canvas.font("B", 10)
	canvas.text(style.DeepBlue)
	pdf.CellFormat(0, 5, canvas.tr(lead), "", 1, "L", false, 0, "")

	pdf.SetX(15)
	canvas.font("", 9)
	pdf.MultiCell(180, 5, canvas.tr(body), "", "J", false)
}

// Output closes the document and returns its bytes.
func (canvas *Canvas) Output() ([]byte, error) {
	var buf bytes.Buffer
	if err := canvas.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("can't render document: %s", err.Error())
	}
	return buf.Bytes(), nil
}

package report

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"marquee/internal/trending"
)

//go:embed report.html.tmpl
var reportTemplate string

var pageTemplate = template.Must(template.New("report").Parse(reportTemplate))

type sectionView struct {
	Title       string
	Description string
	Table       template.HTML
	Empty       bool
}

type pageView struct {
	OldLabel    string
	NewLabel    string
	OldPath     string
	NewPath     string
	GeneratedAt string
	Summary     trending.Summary
	Sections    []sectionView
}

// RenderHTML writes a self-contained HTML trending report.
func RenderHTML(w io.Writer, rep trending.Report, meta Meta) error {
	generated := meta.GeneratedAt
	if generated.IsZero() {
		generated = time.Now()
	}

	view := pageView{
		OldLabel:    meta.OldLabel,
		NewLabel:    meta.NewLabel,
		OldPath:     meta.OldPath,
		NewPath:     meta.NewPath,
		GeneratedAt: generated.Format("2006-01-02 15:04:05 MST"),
		Summary:     rep.Summary,
	}

	for _, section := range Tables(rep, meta) {
		view.Sections = append(view.Sections, sectionView{
			Title:       section.Title,
			Description: section.Description,
			Table:       htmlTable(section),
			Empty:       len(section.Rows) == 0,
		})
	}

	if err := pageTemplate.Execute(w, view); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

// htmlTable renders one section through go-pretty's HTML writer. Cell text is
// escaped by the writer; the result is safe to inline.
func htmlTable(section Table) template.HTML {
	tw := table.NewWriter()

	header := make(table.Row, len(section.Headers))
	for i, name := range section.Headers {
		header[i] = name
	}
	tw.AppendHeader(header)

	for _, row := range section.Rows {
		cells := make(table.Row, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		tw.AppendRow(cells)
	}

	return template.HTML(tw.RenderHTML())
}

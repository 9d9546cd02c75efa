// Package components renders the dashboard UI. Components are built directly
// on the templ runtime and written out as server-rendered HTML fragments.
package components

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// builder accumulates HTML output and carries the first write error.
type builder struct {
	w   io.Writer
	err error
}

func (b *builder) raw(s string) {
	if b.err == nil {
		_, b.err = io.WriteString(b.w, s)
	}
}

func (b *builder) rawf(format string, args ...any) {
	if b.err == nil {
		_, b.err = fmt.Fprintf(b.w, format, args...)
	}
}

func (b *builder) text(s string) {
	b.raw(templ.EscapeString(s))
}

func component(render func(b *builder)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &builder{w: w}
		render(b)
		return b.err
	})
}

var navLinks = []struct {
	href  string
	label string
}{
	{"/", "Overview"},
	{"/genomics", "Genomic Determinants"},
	{"/regulatory", "Regulatory Circuits"},
	{"/surveillance", "Surveillance"},
	{"/rna", "RNA Dynamics"},
}

// page wraps body in the shared document shell with the navigation bar.
func page(title string, body func(b *builder)) templ.Component {
	return component(func(b *builder) {
		b.raw("<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\">")
		b.rawf("<title>%s | MRSA Biofilm Surveillance</title>", templ.EscapeString(title))
		b.raw("<link rel=\"stylesheet\" href=\"/static/style.css\"></head><body>")
		b.raw("<nav><span class=\"brand\">&#129516; MRSA Biofilm Surveillance</span><ul>")
		for _, link := range navLinks {
			b.rawf("<li><a href=\"%s\">%s</a></li>", link.href, link.label)
		}
		b.raw("</ul></nav><main>")
		b.rawf("<h1>%s</h1>", templ.EscapeString(title))
		body(b)
		b.raw("</main></body></html>")
	})
}

func (b *builder) openSection(heading string) {
	b.rawf("<section><h2>%s</h2>", templ.EscapeString(heading))
}

func (b *builder) closeSection() {
	b.raw("</section>")
}

func (b *builder) metric(label string, value string) {
	b.rawf("<div class=\"metric\"><span class=\"metric-value\">%s</span><span class=\"metric-label\">%s</span></div>",
		templ.EscapeString(value), templ.EscapeString(label))
}

func (b *builder) table(headers []string, rows [][]string) {
	b.raw("<table><thead><tr>")
	for _, h := range headers {
		b.rawf("<th>%s</th>", templ.EscapeString(h))
	}
	b.raw("</tr></thead><tbody>")
	for _, row := range rows {
		b.raw("<tr>")
		for _, cell := range row {
			b.rawf("<td>%s</td>", templ.EscapeString(cell))
		}
		b.raw("</tr>")
	}
	b.raw("</tbody></table>")
}

// bar renders a labelled horizontal bar scaled to fraction in [0,1].
func (b *builder) bar(label string, fraction float64) {
	pct := fraction * 100
	b.rawf("<div class=\"bar-row\"><span class=\"bar-label\">%s</span>", templ.EscapeString(label))
	b.rawf("<span class=\"bar\" style=\"width:%.1f%%\"></span><span class=\"bar-value\">%.1f%%</span></div>", pct, pct)
}

// heatCell colors a table cell by coverage fraction.
func (b *builder) heatCell(v float64) {
	b.rawf("<td class=\"heat\" style=\"background:rgba(46,134,87,%.2f)\">%.2f</td>", v, v)
}

func pct(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

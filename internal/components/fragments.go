package components

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"github.com/abyounis/biofilmwatch/internal/domain"
)

type MatrixRow struct {
	Lineage string
	Values  []float64
}

type CocktailProps struct {
	RunId     string
	Therapy   string
	Threshold float64
	Entries   []domain.CocktailEntry
	Aggregate float64
	Agents    []string
	Matrix    []MatrixRow
}

func Cocktail(props CocktailProps) templ.Component {
	return page("Recommended Cocktail", func(b *builder) {
		b.openSection(fmt.Sprintf("Recommended %s Cocktail", props.Therapy))

		if len(props.Entries) == 0 {
			b.raw("<p class=\"warn\">No suitable therapeutic components found for the selected lineages. " +
				"Try different lineages or a lower coverage target.</p>")
		} else {
			rows := make([][]string, 0, len(props.Entries))
			for _, entry := range props.Entries {
				rows = append(rows, []string{
					entry.Name,
					entry.Target,
					pct(entry.Coverage),
					strings.Join(entry.Lineages, ", "),
				})
			}
			b.table([]string{"Component", "Target", "Coverage", "Newly Covered Lineages"}, rows)

			b.raw("<div class=\"metrics\">")
			b.metric("Aggregate Lineage Coverage", pct(props.Aggregate))
			b.metric("Coverage Target", pct(props.Threshold))
			b.raw("</div>")

			if props.Aggregate < props.Threshold {
				b.raw("<p class=\"warn\">The cocktail under-covers the requested target: no remaining agent " +
					"adds further lineages above the effectiveness cutoff.</p>")
			}

			b.raw("<form method=\"post\" action=\"/export/cocktail\">")
			b.rawf("<input type=\"hidden\" name=\"therapy\" value=\"%s\">", templ.EscapeString(props.Therapy))
			b.rawf("<input type=\"hidden\" name=\"threshold\" value=\"%.2f\">", props.Threshold)
			for _, row := range props.Matrix {
				b.rawf("<input type=\"hidden\" name=\"lineage\" value=\"%s\">", templ.EscapeString(row.Lineage))
			}
			b.raw("<button type=\"submit\">Export CSV</button></form>")
		}
		b.closeSection()

		if len(props.Agents) > 0 {
			b.openSection("Coverage Matrix")
			b.raw("<table><thead><tr><th>Lineage</th>")
			for _, agent := range props.Agents {
				b.rawf("<th>%s</th>", templ.EscapeString(agent))
			}
			b.raw("</tr></thead><tbody>")
			for _, row := range props.Matrix {
				b.rawf("<tr><td>%s</td>", templ.EscapeString(row.Lineage))
				for _, v := range row.Values {
					b.heatCell(v)
				}
				b.raw("</tr>")
			}
			b.raw("</tbody></table>")
			b.closeSection()
		}

		b.rawf("<p class=\"note\">Run %s</p>", templ.EscapeString(props.RunId))
		b.raw("<p><a href=\"/surveillance\">&larr; Back to calculator</a></p>")
	})
}

type UploadProps struct {
	RunId    string
	Filename string
	Size     int64
	Records  int
}

func Upload(props UploadProps) templ.Component {
	return page("Genome Analysis", func(b *builder) {
		b.openSection("Sequence Information")
		b.table([]string{"File", "Size", "Sequences"}, [][]string{{
			props.Filename,
			fmt.Sprintf("%d bytes", props.Size),
			fmt.Sprintf("%d", props.Records),
		}})
		b.raw("<p class=\"note\">Demonstration mode: the uploaded genome is profiled against sample models only.</p>")
		b.closeSection()

		b.openSection("Predicted Biofilm Risk")
		b.raw("<p>This genome has a <strong>76% probability</strong> of forming strong biofilms.</p>")
		features := []struct {
			name       string
			importance float64
		}{
			{"SCCmec-Type IV", 0.35},
			{"ACME Presence", 0.28},
			{"phiSa3 Integration", 0.22},
			{"agr System", 0.08},
			{"sarA Variant", 0.07},
		}
		for _, f := range features {
			b.bar(f.name, f.importance/0.35)
		}
		b.closeSection()

		b.openSection("RNA Target Analysis")
		b.table([]string{"Gene", "mRNA Stability", "ASO Efficacy", "CRISPR Efficacy"}, [][]string{
			{"icaA", "High", "88.0%", "92.0%"},
			{"sarA", "Medium", "75.0%", "86.0%"},
			{"fnbA", "High", "82.0%", "78.0%"},
		})
		b.raw("<p>Recommended RNA-based intervention: CRISPR-Cas13 targeting icaA mRNA.</p>")
		b.closeSection()

		b.rawf("<p class=\"note\">Run %s</p>", templ.EscapeString(props.RunId))
		b.raw("<p><a href=\"/\">&larr; Back to overview</a></p>")
	})
}

func Error(code int, title string, msg string) templ.Component {
	return page(title, func(b *builder) {
		b.rawf("<p class=\"warn\">%d: %s</p>", code, templ.EscapeString(msg))
		b.raw("<p><a href=\"/\">&larr; Back to overview</a></p>")
	})
}

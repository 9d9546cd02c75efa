package components

import (
	"fmt"

	"github.com/a-h/templ"

	"github.com/abyounis/biofilmwatch/internal/domain"
)

type HistogramBin struct {
	Label string
	Low   int
	High  int
}

type IndexProps struct {
	TotalIsolates int
	HighBiofilm   int
	Histogram     []HistogramBin
	Phylogeny     []domain.PhyloNode
}

func Index(props IndexProps) templ.Component {
	return page("Overview", func(b *builder) {
		b.raw("<p>AI-driven genomic surveillance and mechanistic inference of high-biofilm MRSA lineages. " +
			"Explore genetic determinants, regulatory circuitry, global spread and therapeutic prioritisation " +
			"through the pages above. All data shown is synthetic demonstration data.</p>")

		b.openSection("Collection at a Glance")
		b.raw("<div class=\"metrics\">")
		b.metric("Analyzed Isolates", fmt.Sprintf("%d", props.TotalIsolates))
		b.metric("High-Biofilm Isolates", fmt.Sprintf("%d", props.HighBiofilm))
		b.metric("MGEs Identified", "37")
		b.metric("Key Regulators", "23")
		b.raw("</div>")
		b.closeSection()

		b.openSection("Biofilm Formation Distribution (OD590)")
		maxCount := 1
		for _, bin := range props.Histogram {
			if bin.Low+bin.High > maxCount {
				maxCount = bin.Low + bin.High
			}
		}
		for _, bin := range props.Histogram {
			b.bar(bin.Label, float64(bin.Low+bin.High)/float64(maxCount))
		}
		b.raw("<p class=\"note\">Isolates above OD590 0.30 are classed as high-biofilm formers.</p>")
		b.closeSection()

		b.openSection("Sample Phylogeny with Biofilm Risk")
		rows := make([][]string, 0, len(props.Phylogeny))
		for _, node := range props.Phylogeny {
			indent := ""
			if node.Level == 1 {
				indent = "└ "
			}
			rows = append(rows, []string{indent + node.Id, pct(node.BiofilmRisk)})
		}
		b.table([]string{"Lineage / Strain", "Biofilm Risk"}, rows)
		b.closeSection()

		b.openSection("Upload New MRSA Genome")
		b.raw("<form method=\"post\" action=\"/upload\" enctype=\"multipart/form-data\">")
		b.raw("<input type=\"file\" name=\"genome\" accept=\".fasta,.fastq,.fa,.fq\" required> ")
		b.raw("<button type=\"submit\">Analyze</button></form>")
		b.raw("<p class=\"note\">Demonstration mode: uploads are profiled against the sample pipeline only.</p>")
		b.closeSection()
	})
}

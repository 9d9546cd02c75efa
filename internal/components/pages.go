package components

import (
	"fmt"

	"github.com/a-h/templ"

	"github.com/abyounis/biofilmwatch/internal/domain"
)

type GenomicsProps struct {
	TopHits     []domain.GwasHit
	Models      []domain.ModelScore
	Importances []domain.FeatureImportance
}

func Genomics(props GenomicsProps) templ.Component {
	return page("Genomic Determinants", func(b *builder) {
		b.openSection("Top GWAS Hits")
		rows := make([][]string, 0, len(props.TopHits))
		for _, hit := range props.TopHits {
			rows = append(rows, []string{
				hit.Feature,
				hit.FeatureType,
				fmt.Sprintf("%d", hit.Position),
				fmt.Sprintf("%.2e", hit.PValue),
				fmt.Sprintf("%.1f", hit.NegLogP),
				fmt.Sprintf("%.2f", hit.OddsRatio),
			})
		}
		b.table([]string{"Feature", "Type", "Position", "p-value", "-log10(p)", "Odds Ratio"}, rows)
		b.closeSection()

		b.openSection("Biofilm Prediction Models")
		rows = rows[:0]
		for _, score := range props.Models {
			rows = append(rows, []string{
				score.Model,
				fmt.Sprintf("%.2f", score.AUROC),
				fmt.Sprintf("%.2f", score.Accuracy),
				fmt.Sprintf("%.2f", score.Precision),
				fmt.Sprintf("%.2f", score.Recall),
				fmt.Sprintf("%.3f", score.F1),
			})
		}
		b.table([]string{"Model", "AUROC", "Accuracy", "Precision", "Recall", "F1"}, rows)
		b.closeSection()

		b.openSection("Feature Importance")
		max := 0.01
		for _, imp := range props.Importances {
			if imp.Importance > max {
				max = imp.Importance
			}
		}
		for _, imp := range props.Importances {
			b.bar(fmt.Sprintf("%s (%s)", imp.Feature, imp.Category), imp.Importance/max)
		}
		b.closeSection()
	})
}

type RegulatoryProps struct {
	Nodes []domain.RegulatoryNode
	Edges []domain.RegulatoryEdge
}

func Regulatory(props RegulatoryProps) templ.Component {
	return page("Regulatory Circuits", func(b *builder) {
		b.raw("<p>The regulatory network governing the planktonic to sessile switch. " +
			"Mobile genetic elements modulate the core sarA/agr axis.</p>")

		b.openSection("Network Nodes")
		rows := make([][]string, 0, len(props.Nodes))
		for _, node := range props.Nodes {
			rows = append(rows, []string{node.Id, node.Type, node.BiofilmEffect})
		}
		b.table([]string{"Element", "Type", "Biofilm Effect"}, rows)
		b.closeSection()

		b.openSection("Regulatory Interactions")
		rows = rows[:0]
		for _, edge := range props.Edges {
			rows = append(rows, []string{
				edge.Source,
				edge.Type,
				edge.Target,
				fmt.Sprintf("%.1f", edge.Weight),
			})
		}
		b.table([]string{"Source", "Interaction", "Target", "Weight"}, rows)
		b.closeSection()
	})
}

type CountrySummary struct {
	Country         string
	Isolates        int
	AvgRisk         float64
	DominantLineage string
}

type LineageSummary struct {
	Lineage  string
	Isolates int
	AvgRisk  float64
}

type SurveillanceProps struct {
	TotalRecords    int
	DominantLineage string
	AvgRisk         float64
	Countries       []CountrySummary
	LineageSummary  []LineageSummary
	Lineages        []string
}

func Surveillance(props SurveillanceProps) templ.Component {
	return page("Surveillance Dashboard", func(b *builder) {
		b.openSection("Summary")
		b.raw("<div class=\"metrics\">")
		b.metric("Total Isolates", fmt.Sprintf("%d", props.TotalRecords))
		b.metric("Dominant Lineage", props.DominantLineage)
		b.metric("Avg. Biofilm Risk", pct(props.AvgRisk))
		b.metric("Countries Affected", fmt.Sprintf("%d", len(props.Countries)))
		b.raw("</div>")
		b.closeSection()

		b.openSection("Top Countries by Isolate Count")
		rows := make([][]string, 0, len(props.Countries))
		for _, c := range props.Countries {
			rows = append(rows, []string{c.Country, fmt.Sprintf("%d", c.Isolates), pct(c.AvgRisk), c.DominantLineage})
		}
		b.table([]string{"Country", "Isolates", "Avg. Risk", "Dominant Lineage"}, rows)
		b.raw("<form method=\"post\" action=\"/export\"><button type=\"submit\">Export CSV</button></form>")
		b.closeSection()

		b.openSection("Biofilm Risk by Lineage")
		for _, l := range props.LineageSummary {
			b.bar(fmt.Sprintf("%s (n=%d)", l.Lineage, l.Isolates), l.AvgRisk)
		}
		b.closeSection()

		b.openSection("Therapeutic Coverage Calculator")
		b.raw("<form method=\"post\" action=\"/cocktail\" class=\"calculator\">")
		b.raw("<fieldset><legend>Target lineages</legend>")
		for _, lineage := range props.Lineages {
			b.rawf("<label><input type=\"checkbox\" name=\"lineage\" value=\"%s\"> %s</label>",
				templ.EscapeString(lineage), templ.EscapeString(lineage))
		}
		b.raw("</fieldset>")
		b.raw("<label>Therapy type <select name=\"therapy\">" +
			"<option>Phage</option><option>Antibiofilm Peptide</option><option>Combination</option>" +
			"</select></label>")
		b.raw("<label>Minimum coverage target (%) <input type=\"number\" name=\"threshold\" min=\"70\" max=\"100\" value=\"90\"></label>")
		b.raw("<button type=\"submit\">Calculate Optimal Cocktail</button></form>")
		b.closeSection()
	})
}

type RNAProps struct {
	HalfLives    []domain.HalfLife
	Interactions []domain.MGEInteraction
	TargetGene   string
	Oligos       []domain.OligoDesign
	Guides       []domain.GuideDesign
}

func RNA(props RNAProps) templ.Component {
	return page("RNA Dynamics", func(b *builder) {
		b.openSection("mRNA Half-Life: Planktonic vs Biofilm")
		rows := make([][]string, 0, len(props.HalfLives))
		for _, life := range props.HalfLives {
			flag := ""
			if life.Significant {
				flag = "yes"
			}
			rows = append(rows, []string{
				life.Gene,
				life.Category,
				fmt.Sprintf("%.1f min", life.PlanktonicHalfLife),
				fmt.Sprintf("%.1f min", life.BiofilmHalfLife),
				fmt.Sprintf("%.2fx", life.FoldChange),
				flag,
			})
		}
		b.table([]string{"Gene", "Category", "Planktonic", "Biofilm", "Fold Change", "Significant"}, rows)
		b.closeSection()

		b.openSection("MGE-Encoded RNA Interactions")
		rows = rows[:0]
		for _, x := range props.Interactions {
			rows = append(rows, []string{
				x.MGEElement, x.MGEType, x.HostTarget, x.InteractionType, x.BiofilmEffect,
				pct(x.Confidence),
			})
		}
		b.table([]string{"MGE Element", "Type", "Host Target", "Interaction", "Biofilm Effect", "Confidence"}, rows)
		b.closeSection()

		b.openSection(fmt.Sprintf("Intervention Designs for %s", props.TargetGene))
		b.raw("<form method=\"get\" action=\"/rna\"><label>Target gene " +
			"<input type=\"text\" name=\"gene\" value=\"" + templ.EscapeString(props.TargetGene) + "\"></label> " +
			"<button type=\"submit\">Design</button></form>")

		b.raw("<h3>Antisense Oligonucleotides</h3>")
		rows = rows[:0]
		for _, oligo := range props.Oligos {
			rows = append(rows, []string{oligo.Sequence, oligo.TargetRegion, pct(oligo.Efficacy), oligo.Stability})
		}
		b.table([]string{"Sequence", "Target Region", "Efficacy", "Stability"}, rows)

		b.raw("<h3>CRISPR-Cas13 Guides</h3>")
		rows = rows[:0]
		for _, guide := range props.Guides {
			rows = append(rows, []string{guide.Sequence, guide.TargetRegion, pct(guide.Efficacy), fmt.Sprintf("%d", guide.OffTargets)})
		}
		b.table([]string{"Sequence", "Target Region", "Efficacy", "Off-Targets"}, rows)
		b.closeSection()
	})
}

package catalog

import (
	"fmt"
	"math/rand"

	"github.com/abyounis/biofilmwatch/internal/domain"
)

var genePool = []string{
	"icaA", "icaD", "icaB", "icaC", "sarA", "agrA", "agrC",
	"fnbA", "fnbB", "clfA", "clfB", "spa", "rbf", "sigB",
	"luxS", "codY", "rot", "mgrA", "sucD", "pgm", "spoVG",
	"saeR", "saeS", "hla", "cidA", "lytS", "lytR", "atl",
	"ebh", "dltA", "dltB", "sdrC", "sasG", "isdA", "isdB",
	"map", "arlR", "arlS", "geh", "lip", "nuc",
}

var geneCategories = map[string]string{
	"icaA": "EPS production", "icaD": "EPS production",
	"icaB": "EPS production", "icaC": "EPS production",
	"sarA": "Quorum sensing", "agrA": "Quorum sensing",
	"agrC": "Quorum sensing", "luxS": "Quorum sensing",
	"fnbA": "Adhesion", "fnbB": "Adhesion",
	"clfA": "Adhesion", "clfB": "Adhesion", "spa": "Adhesion",
	"sigB": "Stress response", "codY": "Metabolism",
	"rot": "Quorum sensing", "mgrA": "Quorum sensing",
	"sucD": "Metabolism", "pgm": "Metabolism",
	"rbf": "EPS production", "spoVG": "Stress response",
	"saeR": "Quorum sensing", "saeS": "Quorum sensing",
	"hla": "Toxin production", "cidA": "Cell death",
	"lytS": "Autolysis", "lytR": "Autolysis",
	"atl": "Adhesion", "ebh": "Adhesion",
	"dltA": "Cell wall", "dltB": "Cell wall",
	"sdrC": "Adhesion", "sasG": "Adhesion",
	"isdA": "Iron acquisition", "isdB": "Iron acquisition",
	"map": "Metabolism", "arlR": "Quorum sensing",
	"arlS": "Quorum sensing", "geh": "Metabolism",
	"lip": "Metabolism", "nuc": "Nuclease",
}

var biofilmStabilized = map[string]bool{
	"icaA": true, "icaB": true, "icaC": true, "sarA": true,
	"fnbA": true, "clfA": true, "rbf": true, "sasG": true,
}

var biofilmDestabilized = map[string]bool{
	"agrA": true, "agrC": true, "rot": true, "hla": true,
}

var mgeElements = []struct {
	name string
	kind string
}{
	{"SCCmec-sprC", "sRNA"},
	{"SCCmec-sRNA-42", "sRNA"},
	{"SCCmec-RBP1", "RNA-binding protein"},
	{"phiSa3-sRNA-F11", "sRNA"},
	{"phiSa3-sRNA-A3", "sRNA"},
	{"phiSa3-RBP3", "RNA-binding protein"},
	{"ACME-sRNA-A2", "sRNA"},
	{"ACME-RBP2", "RNA-binding protein"},
	{"SCCmec-III-RNase", "RNase"},
	{"phiSa3-Hfq-like", "RNA chaperone"},
}

var hostTargets = []string{
	"icaA-mRNA", "icaR-mRNA", "agrA-mRNA", "sarA-mRNA",
	"fnbA-mRNA", "clfA-mRNA", "sigB-mRNA", "codY-mRNA",
	"spoVG-mRNA", "rbf-mRNA", "mgrA-mRNA", "saeR-mRNA",
	"lytS-mRNA", "ebh-mRNA", "sasG-mRNA", "rot-mRNA",
}

var interactionTypes = []string{"Stabilization", "Degradation", "Translation control"}

// RNARepo serves the RNA dynamics datasets: half-lives, MGE-RNA interactions
// and intervention designs.
type RNARepo struct{}

// HalfLives returns per-gene mRNA half-lives for the planktonic and biofilm
// states. Genes central to biofilm formation are stabilized in the biofilm
// state, quorum-sensing effectors destabilized.
func (RNARepo) HalfLives() []domain.HalfLife {
	r := newRand()

	const n = 20
	picked := r.Perm(len(genePool))[:n]

	lives := make([]domain.HalfLife, n)
	for i := 0; i < n; i++ {
		gene := genePool[picked[i]]

		planktonic := 5 + r.Float64()*10

		var factor float64
		switch {
		case biofilmStabilized[gene]:
			factor = 1.8 + r.Float64()*2.2
		case biofilmDestabilized[gene]:
			factor = 0.3 + r.Float64()*0.4
		default:
			factor = 0.7 + r.Float64()*1.8
		}

		category := geneCategories[gene]
		if category == "" {
			category = "Other"
		}

		lives[i] = domain.HalfLife{
			Gene:               gene,
			Category:           category,
			PlanktonicHalfLife: planktonic,
			BiofilmHalfLife:    planktonic * factor,
			FoldChange:         factor,
			Significant:        factor > 1.5 || factor < 0.67,
		}
	}

	return lives
}

// Interactions returns 25 MGE-encoded element / host RNA interactions.
func (RNARepo) Interactions() []domain.MGEInteraction {
	r := newRand()

	const n = 25
	interactions := make([]domain.MGEInteraction, n)

	for i := 0; i < n; i++ {
		element := mgeElements[r.Intn(len(mgeElements))]
		target := hostTargets[r.Intn(len(hostTargets))]

		var kind string
		switch {
		case element.kind == "RNase":
			kind = "Degradation"
		case element.kind == "RNA-binding protein":
			kind = pickWeighted(r, interactionTypes, []float64{0.6, 0.1, 0.3})
		default:
			kind = interactionTypes[r.Intn(len(interactionTypes))]
		}

		interactions[i] = domain.MGEInteraction{
			MGEElement:      element.name,
			MGEType:         element.kind,
			HostTarget:      target,
			InteractionType: kind,
			BiofilmEffect:   biofilmEffect(r, target, kind),
			Confidence:      0.6 + r.Float64()*0.35,
		}
	}

	return interactions
}

func biofilmEffect(r *rand.Rand, target string, interaction string) string {
	switch target {
	case "icaA-mRNA", "sarA-mRNA", "fnbA-mRNA", "clfA-mRNA", "sasG-mRNA":
		// Biofilm promoters: more transcript means more biofilm.
		if interaction == "Degradation" {
			return "Decrease"
		}
		return "Increase"
	case "icaR-mRNA", "agrA-mRNA", "rot-mRNA":
		// Biofilm repressors: losing the transcript lifts the repression.
		if interaction == "Degradation" {
			return "Increase"
		}
		return "Decrease"
	}

	if r.Intn(2) == 0 {
		return "Increase"
	}
	return "Decrease"
}

// OligoDesigns returns candidate antisense oligos against the target gene.
// Sequences are fabricated; a real pipeline would derive them from the gene.
func (RNARepo) OligoDesigns(gene string) []domain.OligoDesign {
	r := designRand(gene)

	regions := []string{
		"5' UTR",
		"Start codon",
		fmt.Sprintf("ORF position %d-%d", 100+r.Intn(200), 300+r.Intn(200)),
	}
	stabilities := []string{"High", "Medium", "Low"}

	designs := make([]domain.OligoDesign, len(regions))
	for i := 0; i < len(regions); i++ {
		designs[i] = domain.OligoDesign{
			Sequence:     rnaSequence(r, 17),
			TargetRegion: regions[i],
			Efficacy:     0.7 + r.Float64()*0.25,
			Stability:    stabilities[r.Intn(len(stabilities))],
		}
	}

	return designs
}

// GuideDesigns returns candidate CRISPR-Cas13 guides against the target gene.
func (RNARepo) GuideDesigns(gene string) []domain.GuideDesign {
	r := designRand(gene)

	regions := []string{"5' region", "Middle region", "3' region"}

	designs := make([]domain.GuideDesign, len(regions))
	for i := 0; i < len(regions); i++ {
		designs[i] = domain.GuideDesign{
			Sequence:     rnaSequence(r, 24),
			TargetRegion: regions[i],
			Efficacy:     0.7 + r.Float64()*0.25,
			OffTargets:   r.Intn(3),
		}
	}

	return designs
}

// designRand seeds per target gene so designs differ between genes but stay
// stable across requests for the same gene.
func designRand(gene string) *rand.Rand {
	var h int64 = seed
	for _, c := range gene {
		h = h*31 + int64(c)
	}
	return rand.New(rand.NewSource(h))
}

func rnaSequence(r *rand.Rand, length int) string {
	const bases = "ACGU"
	seq := make([]byte, length)
	for i := 0; i < length; i++ {
		seq[i] = bases[r.Intn(len(bases))]
	}
	return string(seq)
}

package catalog

import (
	"fmt"

	"github.com/abyounis/biofilmwatch/internal/domain"
)

// RegulatoryRepo serves the biofilm regulatory network and the sample
// phylogeny used on the overview page.
type RegulatoryRepo struct{}

func (RegulatoryRepo) Nodes() []domain.RegulatoryNode {
	return []domain.RegulatoryNode{
		{Id: "sarA", Type: "regulator", BiofilmEffect: "positive"},
		{Id: "agr", Type: "regulator", BiofilmEffect: "negative"},
		{Id: "icaA", Type: "target", BiofilmEffect: "positive"},
		{Id: "icaD", Type: "target", BiofilmEffect: "positive"},
		{Id: "fnbA", Type: "target", BiofilmEffect: "positive"},
		{Id: "clfA", Type: "target", BiofilmEffect: "positive"},
		{Id: "sigB", Type: "regulator", BiofilmEffect: "positive"},
		{Id: "saeRS", Type: "regulator", BiofilmEffect: "variable"},
		{Id: "rot", Type: "regulator", BiofilmEffect: "positive"},
		{Id: "spa", Type: "target", BiofilmEffect: "positive"},
		{Id: "hla", Type: "target", BiofilmEffect: "negative"},
		{Id: "ACME", Type: "MGE", BiofilmEffect: "positive"},
		{Id: "SCCmec_II", Type: "MGE", BiofilmEffect: "positive"},
		{Id: "phiSa3", Type: "MGE", BiofilmEffect: "variable"},
	}
}

func (RegulatoryRepo) Edges() []domain.RegulatoryEdge {
	return []domain.RegulatoryEdge{
		{Source: "sarA", Target: "icaA", Type: "activation", Weight: 2.0},
		{Source: "sarA", Target: "fnbA", Type: "activation", Weight: 1.5},
		{Source: "sarA", Target: "clfA", Type: "activation", Weight: 1.5},
		{Source: "agr", Target: "sarA", Type: "repression", Weight: 1.0},
		{Source: "agr", Target: "rot", Type: "repression", Weight: 2.0},
		{Source: "agr", Target: "hla", Type: "activation", Weight: 2.5},
		{Source: "rot", Target: "spa", Type: "activation", Weight: 1.5},
		{Source: "sigB", Target: "sarA", Type: "activation", Weight: 1.0},
		{Source: "sigB", Target: "icaA", Type: "activation", Weight: 0.5},
		{Source: "saeRS", Target: "fnbA", Type: "activation", Weight: 1.0},
		{Source: "phiSa3", Target: "agr", Type: "modulation", Weight: 1.0},
		{Source: "SCCmec_II", Target: "sarA", Type: "modulation", Weight: 0.8},
		{Source: "ACME", Target: "biofilm", Type: "activation", Weight: 1.2},
	}
}

// Phylogeny returns one node per lineage plus 3-5 strain leaves each, with
// leaf risk scattered around the lineage risk.
func (RegulatoryRepo) Phylogeny() []domain.PhyloNode {
	r := newRand()

	var nodes []domain.PhyloNode
	for _, lineage := range isolateLineages {
		risk := 0.6 + r.Float64()*0.3
		nodes = append(nodes, domain.PhyloNode{Id: lineage, Level: 0, BiofilmRisk: risk})

		strains := 3 + r.Intn(3)
		for i := 0; i < strains; i++ {
			nodes = append(nodes, domain.PhyloNode{
				Id:          fmt.Sprintf("%s-%d", lineage, i+1),
				Parent:      lineage,
				Level:       1,
				BiofilmRisk: clamp(risk+r.NormFloat64()*0.1, 0.1, 1.0),
			})
		}
	}

	return nodes
}

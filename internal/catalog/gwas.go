package catalog

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/abyounis/biofilmwatch/internal/domain"
)

var featureTypes = []string{"MGE", "SCCmec", "Core Genome", "Plasmid", "Phage"}
var featureTypeWeights = []float64{0.2, 0.15, 0.3, 0.15, 0.2}

var coreGenes = []string{"sarA", "agr", "icaA", "icaD", "fnbA", "clfA", "sigB", "hla", "spa"}
var sccmecCassettes = []string{"I", "II", "III", "IV", "V"}

// GwasRepo serves the sample genome-wide association hits.
type GwasRepo struct{}

// Hits returns 100 genetic features with tiered p-values: a handful of very
// significant hits, a moderately significant band, and a non-significant tail.
func (GwasRepo) Hits() []domain.GwasHit {
	r := newRand()

	const n = 100
	hits := make([]domain.GwasHit, n)

	for i := 0; i < n; i++ {
		var p float64
		switch {
		case i < 10:
			p = 1e-20 + r.Float64()*(1e-8-1e-20)
		case i < 30:
			p = 1e-8 + r.Float64()*(1e-5-1e-8)
		case i < 60:
			p = 1e-5 + r.Float64()*(0.05-1e-5)
		default:
			p = 0.05 + r.Float64()*0.95
		}

		featureType := pickWeighted(r, featureTypes, featureTypeWeights)
		feature, description := featureName(r, featureType)

		hits[i] = domain.GwasHit{
			Feature:     feature,
			FeatureType: featureType,
			Description: description,
			Position:    1 + r.Intn(3000000),
			PValue:      p,
			NegLogP:     -math.Log10(p),
			OddsRatio:   math.Abs(r.NormFloat64()*0.8 + 1.5),
		}
	}

	return hits
}

func featureName(r *rand.Rand, featureType string) (string, string) {
	switch featureType {
	case "MGE":
		return fmt.Sprintf("MGE_%d", 1+r.Intn(49)), "Mobile genetic element affecting biofilm regulation"
	case "SCCmec":
		cassette := sccmecCassettes[r.Intn(len(sccmecCassettes))]
		return fmt.Sprintf("SCCmec_type_%s", cassette), fmt.Sprintf("SCCmec type %s cassette", cassette)
	case "Core Genome":
		if r.Intn(10) == 9 {
			return fmt.Sprintf("core_gene_%d", 1+r.Intn(99)), "Core genome gene involved in biofilm formation"
		}
		return coreGenes[r.Intn(len(coreGenes))], "Core genome gene involved in biofilm formation"
	case "Plasmid":
		return fmt.Sprintf("plasmid_%d", 1+r.Intn(19)), "Plasmid-encoded factor"
	default:
		return fmt.Sprintf("phage_%d", 1+r.Intn(14)), "Phage-encoded factor affecting biofilm"
	}
}

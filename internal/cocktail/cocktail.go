// Package cocktail selects therapeutic cocktails of phages and antibiofilm
// peptides against MRSA lineages using a greedy set-cover heuristic.
package cocktail

import (
	"sort"

	"github.com/abyounis/biofilmwatch/internal/domain"
)

const (
	TherapyPhage       = "Phage"
	TherapyPeptide     = "Antibiofilm Peptide"
	TherapyCombination = "Combination"
)

// An agent only counts as covering a lineage at or above this fraction.
const effectivenessCutoff = 0.7

const DefaultThreshold = 0.9

// Matrix holds per-agent coverage fractions over a fixed lineage set. Agent
// order is the order agents were added in; the greedy tie-break depends on it.
type Matrix struct {
	order    []string
	targets  map[string]string
	coverage map[string]map[string]float64
}

func (m Matrix) Agents() []string {
	return m.order
}

func (m Matrix) Coverage(agent string, lineage string) float64 {
	return m.coverage[agent][lineage]
}

func (m *Matrix) add(agent domain.Agent, lineages []string) {
	row := make(map[string]float64, len(lineages))
	for _, lineage := range lineages {
		row[lineage] = agent.Coverage[lineage]
	}

	if m.coverage == nil {
		m.targets = map[string]string{}
		m.coverage = map[string]map[string]float64{}
	}

	m.order = append(m.order, agent.Name)
	m.targets[agent.Name] = agent.Target
	m.coverage[agent.Name] = row
}

// BuildMatrix filters the agent catalog down to the requested therapy type
// and lineage subset. Lineages an agent has no record for enter the matrix as
// 0.0. An empty target set defaults to every lineage known to the first
// included agent (sorted for a stable order), or stays empty if there are no
// agents.
func BuildMatrix(phages []domain.Agent, peptides []domain.Agent, therapy string, targetLineages []string) (Matrix, []string) {
	var included []domain.Agent

	if therapy == TherapyPhage || therapy == TherapyCombination {
		included = append(included, phages...)
	}
	if therapy == TherapyPeptide || therapy == TherapyCombination {
		included = append(included, peptides...)
	}

	if len(targetLineages) == 0 && len(included) > 0 {
		for lineage := range included[0].Coverage {
			targetLineages = append(targetLineages, lineage)
		}
		sort.Strings(targetLineages)
	}

	var matrix Matrix
	for i := 0; i < len(included); i++ {
		matrix.add(included[i], targetLineages)
	}

	return matrix, targetLineages
}

// Recommend greedily picks agents until the covered share of targetLineages
// reaches threshold or no remaining agent covers a new lineage. Each round it
// takes the agent covering the most still-uncovered lineages at or above the
// effectiveness cutoff; ties go to the agent added to the matrix first. The
// reported coverage of an entry is the unweighted mean over all target
// lineages, not just the newly covered ones.
//
// The threshold is a goal, not a guarantee: the result may under-cover when
// no agent can add further lineages. Callers should check CoveredFraction.
func Recommend(matrix Matrix, targetLineages []string, threshold float64) []domain.CocktailEntry {
	entries := []domain.CocktailEntry{}

	if len(targetLineages) == 0 {
		return entries
	}

	selected := map[string]bool{}
	covered := map[string]bool{}

	// Hard cap so pathological inputs cannot loop forever.
	maxIterations := len(matrix.order) + 1

	for i := 0; i < maxIterations; i++ {
		if float64(len(covered)) >= float64(len(targetLineages))*threshold {
			break
		}

		var bestAgent string
		var bestLineages []string

		for _, agent := range matrix.order {
			if selected[agent] {
				continue
			}

			var newlyCovered []string
			for _, lineage := range targetLineages {
				if covered[lineage] {
					continue
				}
				if matrix.coverage[agent][lineage] >= effectivenessCutoff {
					newlyCovered = append(newlyCovered, lineage)
				}
			}

			if len(newlyCovered) > len(bestLineages) {
				bestAgent = agent
				bestLineages = newlyCovered
			}
		}

		if bestAgent == "" || len(bestLineages) == 0 {
			break
		}

		var sum float64
		for _, lineage := range targetLineages {
			sum += matrix.coverage[bestAgent][lineage]
		}

		selected[bestAgent] = true
		entries = append(entries, domain.CocktailEntry{
			Name:     bestAgent,
			Target:   matrix.targets[bestAgent],
			Coverage: sum / float64(len(targetLineages)),
			Lineages: bestLineages,
		})

		for _, lineage := range bestLineages {
			covered[lineage] = true
		}
	}

	return entries
}

// CoveredFraction reports the share of targetLineages covered by the cocktail.
func CoveredFraction(entries []domain.CocktailEntry, targetLineages []string) float64 {
	if len(targetLineages) == 0 {
		return 0
	}

	covered := map[string]bool{}
	for i := 0; i < len(entries); i++ {
		for _, lineage := range entries[i].Lineages {
			covered[lineage] = true
		}
	}

	return float64(len(covered)) / float64(len(targetLineages))
}

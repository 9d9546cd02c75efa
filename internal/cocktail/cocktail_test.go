package cocktail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abyounis/biofilmwatch/internal/domain"
)

func agent(name string, target string, coverage map[string]float64) domain.Agent {
	return domain.Agent{Id: name, Name: name, Target: target, Class: "phage", Coverage: coverage}
}

func TestRecommendComplementaryPair(t *testing.T) {
	phages := []domain.Agent{
		agent("A", "Cell Wall", map[string]float64{"L1": 0.9, "L2": 0.2}),
		agent("B", "Biofilm EPS", map[string]float64{"L1": 0.1, "L2": 0.95}),
	}

	matrix, targets := BuildMatrix(phages, nil, TherapyPhage, []string{"L1", "L2"})
	entries := Recommend(matrix, targets, 0.9)

	require.Len(t, entries, 2)
	assert.Equal(t, "A", entries[0].Name)
	assert.Equal(t, []string{"L1"}, entries[0].Lineages)
	assert.Equal(t, "B", entries[1].Name)
	assert.Equal(t, []string{"L2"}, entries[1].Lineages)
	assert.Equal(t, 1.0, CoveredFraction(entries, targets))
}

func TestRecommendNoAgentMeetsCutoff(t *testing.T) {
	phages := []domain.Agent{
		agent("A", "Cell Wall", map[string]float64{"L1": 0.5, "L2": 0.5}),
	}

	matrix, targets := BuildMatrix(phages, nil, TherapyPhage, []string{"L1", "L2"})
	entries := Recommend(matrix, targets, 0.9)

	assert.Empty(t, entries)
	assert.Equal(t, 0.0, CoveredFraction(entries, targets))
}

func TestRecommendEmptyTargets(t *testing.T) {
	matrix, targets := BuildMatrix(nil, nil, TherapyCombination, nil)

	assert.Empty(t, targets)
	assert.Empty(t, Recommend(matrix, targets, 0.9))
}

func TestRecommendEmptyMatrix(t *testing.T) {
	var matrix Matrix

	entries := Recommend(matrix, []string{"L1", "L2"}, 0.9)

	assert.Empty(t, entries)
}

func TestRecommendTieBreakFirstAgentWins(t *testing.T) {
	phages := []domain.Agent{
		agent("first", "Cell Wall", map[string]float64{"L1": 0.7}),
		agent("second", "Cell Membrane", map[string]float64{"L1": 0.99}),
	}

	matrix, targets := BuildMatrix(phages, nil, TherapyPhage, []string{"L1"})
	entries := Recommend(matrix, targets, 0.9)

	require.Len(t, entries, 1)
	assert.Equal(t, "first", entries[0].Name)
}

func TestRecommendMeanCoverageSpansAllTargets(t *testing.T) {
	// L2 is unknown to the agent and counts as 0.0 in the mean.
	phages := []domain.Agent{
		agent("A", "Cell Wall", map[string]float64{"L1": 0.8}),
	}

	matrix, targets := BuildMatrix(phages, nil, TherapyPhage, []string{"L1", "L2"})
	entries := Recommend(matrix, targets, 0.9)

	require.Len(t, entries, 1)
	assert.InDelta(t, 0.4, entries[0].Coverage, 1e-9)
	assert.Equal(t, []string{"L1"}, entries[0].Lineages)
}

func TestRecommendStopsAtThreshold(t *testing.T) {
	phages := []domain.Agent{
		agent("A", "Cell Wall", map[string]float64{"L1": 0.9, "L2": 0.1}),
		agent("B", "Biofilm EPS", map[string]float64{"L1": 0.1, "L2": 0.9}),
	}

	matrix, targets := BuildMatrix(phages, nil, TherapyPhage, []string{"L1", "L2"})
	entries := Recommend(matrix, targets, 0.5)

	require.Len(t, entries, 1)
	assert.Equal(t, "A", entries[0].Name)
}

func TestRecommendDeterministic(t *testing.T) {
	phages := []domain.Agent{
		agent("A", "Cell Wall", map[string]float64{"L1": 0.9, "L2": 0.76, "L3": 0.45}),
		agent("B", "Biofilm EPS", map[string]float64{"L1": 0.76, "L2": 0.82, "L3": 0.79}),
		agent("C", "Surface Proteins", map[string]float64{"L1": 0.92, "L2": 0.88, "L3": 0.65}),
	}

	matrix, targets := BuildMatrix(phages, nil, TherapyPhage, []string{"L1", "L2", "L3"})

	first := Recommend(matrix, targets, 0.9)
	second := Recommend(matrix, targets, 0.9)

	assert.Equal(t, first, second)
}

func TestRecommendGreedyInvariants(t *testing.T) {
	phages := []domain.Agent{
		agent("A", "Cell Wall", map[string]float64{"L1": 0.89, "L2": 0.76, "L3": 0.45, "L4": 0.67}),
		agent("B", "Biofilm EPS", map[string]float64{"L1": 0.76, "L2": 0.82, "L3": 0.79, "L4": 0.45}),
		agent("C", "Surface Proteins", map[string]float64{"L1": 0.92, "L2": 0.88, "L3": 0.65, "L4": 0.72}),
	}
	peptides := []domain.Agent{
		agent("P1", "Cell Membrane", map[string]float64{"L1": 0.85, "L2": 0.79, "L3": 0.82, "L4": 0.76}),
		agent("P2", "Biofilm Matrix", map[string]float64{"L1": 0.92, "L2": 0.87, "L3": 0.78, "L4": 0.85}),
	}

	matrix, targets := BuildMatrix(phages, peptides, TherapyCombination, []string{"L1", "L2", "L3", "L4"})
	entries := Recommend(matrix, targets, 1.0)

	assert.LessOrEqual(t, len(entries), len(matrix.Agents()))

	seen := map[string]bool{}
	for i := 0; i < len(entries); i++ {
		assert.False(t, seen[entries[i].Name], "agent %s selected twice", entries[i].Name)
		seen[entries[i].Name] = true

		if i > 0 {
			assert.LessOrEqual(t, len(entries[i].Lineages), len(entries[i-1].Lineages),
				"marginal gain must be non-increasing")
		}
	}
}

func TestBuildMatrixTherapyFilter(t *testing.T) {
	phages := []domain.Agent{agent("phage", "Cell Wall", map[string]float64{"L1": 0.9})}
	peptides := []domain.Agent{agent("peptide", "EPS", map[string]float64{"L1": 0.9})}

	phageOnly, _ := BuildMatrix(phages, peptides, TherapyPhage, []string{"L1"})
	assert.Equal(t, []string{"phage"}, phageOnly.Agents())

	peptideOnly, _ := BuildMatrix(phages, peptides, TherapyPeptide, []string{"L1"})
	assert.Equal(t, []string{"peptide"}, peptideOnly.Agents())

	both, _ := BuildMatrix(phages, peptides, TherapyCombination, []string{"L1"})
	assert.Equal(t, []string{"phage", "peptide"}, both.Agents())
}

func TestBuildMatrixDefaultsTargetsToFirstAgent(t *testing.T) {
	phages := []domain.Agent{
		agent("A", "Cell Wall", map[string]float64{"ST8": 0.9, "ST5": 0.8}),
		agent("B", "Biofilm EPS", map[string]float64{"ST22": 0.7}),
	}

	matrix, targets := BuildMatrix(phages, nil, TherapyPhage, nil)

	assert.Equal(t, []string{"ST5", "ST8"}, targets)
	assert.Equal(t, 0.0, matrix.Coverage("B", "ST5"))
}

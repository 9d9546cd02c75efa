package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentsParseFromCatalog(t *testing.T) {
	phages, peptides, err := AgentRepo{}.Agents()

	require.NoError(t, err)
	require.Len(t, phages, 5)
	require.Len(t, peptides, 4)

	assert.Equal(t, "vB_SauM-C1", phages[0].Name)
	assert.Equal(t, "phage", phages[0].Class)
	assert.Equal(t, "LL-37 Derivative", peptides[0].Name)
	assert.Equal(t, "peptide", peptides[0].Class)

	for _, agent := range append(phages, peptides...) {
		require.NotEmpty(t, agent.Coverage, "agent %s has no coverage", agent.Name)
		for lineage, fraction := range agent.Coverage {
			assert.GreaterOrEqual(t, fraction, 0.0, "%s/%s", agent.Name, lineage)
			assert.LessOrEqual(t, fraction, 1.0, "%s/%s", agent.Name, lineage)
		}
	}
}

func TestIsolatesDeterministic(t *testing.T) {
	first := IsolateRepo{}.Isolates()
	second := IsolateRepo{}.Isolates()

	require.Len(t, first, 200)
	assert.Equal(t, first, second)

	for _, isolate := range first {
		assert.Greater(t, isolate.BiofilmOD590, 0.0)
		assert.Equal(t, isolate.BiofilmOD590 > highBiofilmOD, isolate.IsHighBiofilm)
	}
}

func TestGwasHitsShape(t *testing.T) {
	hits := GwasRepo{}.Hits()

	require.Len(t, hits, 100)
	assert.Equal(t, hits, GwasRepo{}.Hits())

	strong := 0
	for _, hit := range hits {
		assert.Greater(t, hit.PValue, 0.0)
		assert.LessOrEqual(t, hit.PValue, 1.0)
		assert.Greater(t, hit.OddsRatio, 0.0)
		assert.GreaterOrEqual(t, hit.Position, 1)
		if hit.PValue < 1e-8 {
			strong++
		}
	}
	assert.Equal(t, 10, strong)
}

func TestSurveillanceRecordsShape(t *testing.T) {
	records := SurveillanceRepo{}.Records()

	require.Len(t, records, 1000)

	for _, record := range records {
		assert.GreaterOrEqual(t, record.BiofilmRisk, 0.1)
		assert.LessOrEqual(t, record.BiofilmRisk, 1.0)
		assert.NotEmpty(t, record.Country)
		assert.NotEmpty(t, record.Lineage)
		assert.NotEmpty(t, record.Date)
	}
}

func TestPhylogenyLeavesReferenceLineages(t *testing.T) {
	nodes := RegulatoryRepo{}.Phylogeny()

	roots := map[string]bool{}
	for _, node := range nodes {
		if node.Level == 0 {
			roots[node.Id] = true
		}
	}

	require.Len(t, roots, 7)
	for _, node := range nodes {
		if node.Level == 1 {
			assert.True(t, roots[node.Parent], "leaf %s has unknown parent %s", node.Id, node.Parent)
		}
	}
}

func TestHalfLivesSignificance(t *testing.T) {
	lives := RNARepo{}.HalfLives()

	require.Len(t, lives, 20)
	assert.Equal(t, lives, RNARepo{}.HalfLives())

	for _, life := range lives {
		assert.InDelta(t, life.FoldChange, life.BiofilmHalfLife/life.PlanktonicHalfLife, 1e-9)
		assert.Equal(t, life.FoldChange > 1.5 || life.FoldChange < 0.67, life.Significant)
	}
}

func TestDesignsStablePerGene(t *testing.T) {
	repo := RNARepo{}

	icaA := repo.OligoDesigns("icaA")
	require.Len(t, icaA, 3)
	assert.Equal(t, icaA, repo.OligoDesigns("icaA"))
	assert.NotEqual(t, icaA, repo.OligoDesigns("sarA"))

	guides := repo.GuideDesigns("icaA")
	require.Len(t, guides, 3)
	for _, guide := range guides {
		assert.Len(t, guide.Sequence, 24)
		assert.GreaterOrEqual(t, guide.Efficacy, 0.7)
	}
}

package persistence

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abyounis/biofilmwatch/internal/domain"
)

func TestWriteSurveillance(t *testing.T) {
	records := []domain.SurveillanceRecord{
		{
			Id: "MRSA_0001", Date: "2024-05-01", Country: "Hungary",
			Latitude: 47.1625, Longitude: 19.5033, Lineage: "ST239",
			SCCmecType: "III", BiofilmRisk: 0.91, MGEProfile: "profile_4",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSurveillance(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "isolate_id", rows[0][0])
	assert.Equal(t, "MRSA_0001", rows[1][0])
	assert.Equal(t, "0.910", rows[1][7])
}

func TestWriteCocktail(t *testing.T) {
	entries := []domain.CocktailEntry{
		{Name: "vB_SauM-K2", Target: "Surface Proteins", Coverage: 0.776, Lineages: []string{"ST5", "ST8"}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCocktail(&buf, entries))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"vB_SauM-K2", "Surface Proteins", "0.776", "ST5 ST8"}, rows[1])
}

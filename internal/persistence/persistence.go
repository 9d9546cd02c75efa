package persistence

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/abyounis/biofilmwatch/internal/domain"
)

// WriteSurveillance writes surveillance records as CSV for download.
func WriteSurveillance(w io.Writer, records []domain.SurveillanceRecord) error {
	writer := csv.NewWriter(w)

	header := []string{"isolate_id", "date", "country", "latitude", "longitude", "lineage", "sccmec_type", "biofilm_risk_score", "mge_profile"}
	err := writer.Write(header)
	if err != nil {
		return err
	}

	for i := 0; i < len(records); i++ {
		record := []string{
			records[i].Id,
			records[i].Date,
			records[i].Country,
			fmt.Sprintf("%.4f", records[i].Latitude),
			fmt.Sprintf("%.4f", records[i].Longitude),
			records[i].Lineage,
			records[i].SCCmecType,
			fmt.Sprintf("%.3f", records[i].BiofilmRisk),
			records[i].MGEProfile,
		}

		err = writer.Write(record)
		if err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteCocktail writes a recommended cocktail as CSV for download.
func WriteCocktail(w io.Writer, entries []domain.CocktailEntry) error {
	writer := csv.NewWriter(w)

	err := writer.Write([]string{"component", "target", "coverage", "lineages"})
	if err != nil {
		return err
	}

	for i := 0; i < len(entries); i++ {
		record := []string{
			entries[i].Name,
			entries[i].Target,
			fmt.Sprintf("%.3f", entries[i].Coverage),
			strings.Join(entries[i].Lineages, " "),
		}

		err = writer.Write(record)
		if err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

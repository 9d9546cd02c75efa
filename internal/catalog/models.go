package catalog

import "github.com/abyounis/biofilmwatch/internal/domain"

// ModelRepo serves the benchmark scores of the biofilm prediction models.
type ModelRepo struct{}

func (ModelRepo) Scores() []domain.ModelScore {
	return []domain.ModelScore{
		{Model: "XGBoost", AUROC: 0.93, Accuracy: 0.88, Precision: 0.86, Recall: 0.85, F1: 0.855},
		{Model: "RandomForest", AUROC: 0.91, Accuracy: 0.87, Precision: 0.84, Recall: 0.82, F1: 0.83},
		{Model: "GraphNeuralNetwork", AUROC: 0.94, Accuracy: 0.89, Precision: 0.87, Recall: 0.86, F1: 0.865},
	}
}

func (ModelRepo) FeatureImportances() []domain.FeatureImportance {
	return []domain.FeatureImportance{
		{Feature: "SCCmec_type_II", Category: "SCCmec", Importance: 0.152},
		{Feature: "ACME_presence", Category: "MGE", Importance: 0.142},
		{Feature: "phiSa3_integration", Category: "MGE", Importance: 0.127},
		{Feature: "ica_operon_complete", Category: "Adhesin", Importance: 0.112},
		{Feature: "SCCmec_type_IV", Category: "SCCmec", Importance: 0.098},
		{Feature: "sarA_allele1", Category: "Core Regulator", Importance: 0.085},
		{Feature: "sigB_mutation", Category: "Core Regulator", Importance: 0.079},
		{Feature: "ica_deletion", Category: "Adhesin", Importance: 0.076},
		{Feature: "sarA_allele2", Category: "Core Regulator", Importance: 0.074},
		{Feature: "agr_group_I", Category: "Core Regulator", Importance: 0.065},
		{Feature: "pSK41_presence", Category: "MGE", Importance: 0.062},
		{Feature: "fnbA_allele1", Category: "Adhesin", Importance: 0.058},
		{Feature: "clfA_variant", Category: "Adhesin", Importance: 0.047},
		{Feature: "arcA_presence", Category: "Metabolic", Importance: 0.046},
		{Feature: "saeRS_variant", Category: "Core Regulator", Importance: 0.045},
		{Feature: "agr_group_II", Category: "Core Regulator", Importance: 0.043},
		{Feature: "fnbB_presence", Category: "Adhesin", Importance: 0.042},
		{Feature: "rot_mutation", Category: "Core Regulator", Importance: 0.038},
		{Feature: "speG_presence", Category: "Metabolic", Importance: 0.037},
		{Feature: "clfB_variant", Category: "Adhesin", Importance: 0.035},
		{Feature: "spa_deletion", Category: "Surface Protein", Importance: 0.032},
		{Feature: "protein_A_variant", Category: "Surface Protein", Importance: 0.031},
		{Feature: "arginine_deiminase", Category: "Metabolic", Importance: 0.028},
		{Feature: "spa_repeat_number", Category: "Surface Protein", Importance: 0.025},
		{Feature: "urease_operon_variant", Category: "Metabolic", Importance: 0.023},
	}
}

package domain

type Agent struct {
	Id       string             `json:"id"`
	Name     string             `json:"name"`
	Target   string             `json:"target"`
	Class    string             `json:"class"`
	Coverage map[string]float64 `json:"coverage"`
}

type CocktailEntry struct {
	Name     string   `json:"name"`
	Target   string   `json:"target"`
	Coverage float64  `json:"coverage"`
	Lineages []string `json:"lineages"`
}

type Isolate struct {
	Id            string  `json:"id"`
	Lineage       string  `json:"lineage"`
	BiofilmOD590  float64 `json:"biofilm_od590"`
	IsHighBiofilm bool    `json:"is_high_biofilm"`
}

type SurveillanceRecord struct {
	Id          string  `json:"id"`
	Date        string  `json:"date"`
	Country     string  `json:"country"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Lineage     string  `json:"lineage"`
	SCCmecType  string  `json:"sccmec_type"`
	BiofilmRisk float64 `json:"biofilm_risk_score"`
	MGEProfile  string  `json:"mge_profile"`
}

type GwasHit struct {
	Feature     string  `json:"feature"`
	FeatureType string  `json:"feature_type"`
	Description string  `json:"feature_description"`
	Position    int     `json:"position"`
	PValue      float64 `json:"p_value"`
	NegLogP     float64 `json:"neg_log10_pvalue"`
	OddsRatio   float64 `json:"odds_ratio"`
}

type ModelScore struct {
	Model     string  `json:"model"`
	AUROC     float64 `json:"auroc"`
	Accuracy  float64 `json:"accuracy"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
}

type FeatureImportance struct {
	Feature    string  `json:"feature"`
	Category   string  `json:"category"`
	Importance float64 `json:"importance"`
}

type RegulatoryNode struct {
	Id            string `json:"id"`
	Type          string `json:"type"`
	BiofilmEffect string `json:"biofilm_effect"`
}

type RegulatoryEdge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Type   string  `json:"type"`
	Weight float64 `json:"weight"`
}

type PhyloNode struct {
	Id          string  `json:"id"`
	Parent      string  `json:"parent"`
	Level       int     `json:"level"`
	BiofilmRisk float64 `json:"biofilm_risk"`
}

type HalfLife struct {
	Gene               string  `json:"gene"`
	Category           string  `json:"category"`
	PlanktonicHalfLife float64 `json:"planktonic_halflife"`
	BiofilmHalfLife    float64 `json:"biofilm_halflife"`
	FoldChange         float64 `json:"fold_change"`
	Significant        bool    `json:"significant"`
}

type MGEInteraction struct {
	MGEElement      string  `json:"mge_element"`
	MGEType         string  `json:"mge_type"`
	HostTarget      string  `json:"host_target"`
	InteractionType string  `json:"interaction_type"`
	BiofilmEffect   string  `json:"biofilm_effect"`
	Confidence      float64 `json:"confidence"`
}

type OligoDesign struct {
	Sequence     string  `json:"sequence"`
	TargetRegion string  `json:"target_region"`
	Efficacy     float64 `json:"efficacy"`
	Stability    string  `json:"stability"`
}

type GuideDesign struct {
	Sequence     string  `json:"sequence"`
	TargetRegion string  `json:"target_region"`
	Efficacy     float64 `json:"efficacy"`
	OffTargets   int     `json:"off_targets"`
}

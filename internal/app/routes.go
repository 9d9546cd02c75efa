package app

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/google/uuid"

	"github.com/abyounis/biofilmwatch/internal/cocktail"
	"github.com/abyounis/biofilmwatch/internal/components"
	"github.com/abyounis/biofilmwatch/internal/domain"
	"github.com/abyounis/biofilmwatch/internal/persistence"
)

type AgentRepo interface {
	Agents() ([]domain.Agent, []domain.Agent, error)
}

type IsolateRepo interface {
	Isolates() []domain.Isolate
}

type SurveillanceRepo interface {
	Records() []domain.SurveillanceRecord
}

type GwasRepo interface {
	Hits() []domain.GwasHit
}

type ModelRepo interface {
	Scores() []domain.ModelScore
	FeatureImportances() []domain.FeatureImportance
}

type RegulatoryRepo interface {
	Nodes() []domain.RegulatoryNode
	Edges() []domain.RegulatoryEdge
	Phylogeny() []domain.PhyloNode
}

type RNARepo interface {
	HalfLives() []domain.HalfLife
	Interactions() []domain.MGEInteraction
	OligoDesigns(gene string) []domain.OligoDesign
	GuideDesigns(gene string) []domain.GuideDesign
}

type ComponentBuilder struct {
	Index        func(components.IndexProps) templ.Component
	Genomics     func(components.GenomicsProps) templ.Component
	Regulatory   func(components.RegulatoryProps) templ.Component
	Surveillance func(components.SurveillanceProps) templ.Component
	RNA          func(components.RNAProps) templ.Component
	Cocktail     func(components.CocktailProps) templ.Component
	Upload       func(components.UploadProps) templ.Component
	Error        func(code int, title string, msg string) templ.Component
}

type App struct {
	AgentRepo        AgentRepo
	IsolateRepo      IsolateRepo
	SurveillanceRepo SurveillanceRepo
	GwasRepo         GwasRepo
	ModelRepo        ModelRepo
	RegulatoryRepo   RegulatoryRepo
	RNARepo          RNARepo
	ComponentBuilder ComponentBuilder
	Config           Config
}

func ok(c component) *ComponentResponse {
	return &ComponentResponse{Component: c, Code: 200, Message: "OK", ContentType: "text/html", Error: nil}
}

func (a App) index(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	if r.URL.Path != "/" {
		return a.errResponse(get404(), nil)
	}

	isolates := a.IsolateRepo.Isolates()

	high := 0
	for _, isolate := range isolates {
		if isolate.IsHighBiofilm {
			high++
		}
	}

	return ok(a.ComponentBuilder.Index(components.IndexProps{
		TotalIsolates: len(isolates),
		HighBiofilm:   high,
		Histogram:     histogram(isolates),
		Phylogeny:     a.RegulatoryRepo.Phylogeny(),
	}))
}

// histogram buckets OD590 readings into 0.1-wide bins.
func histogram(isolates []domain.Isolate) []components.HistogramBin {
	const width = 0.1
	const bins = 8

	out := make([]components.HistogramBin, bins)
	for i := 0; i < bins; i++ {
		out[i].Label = fmt.Sprintf("%.1f-%.1f", float64(i)*width, float64(i+1)*width)
	}

	for _, isolate := range isolates {
		i := int(isolate.BiofilmOD590 / width)
		if i >= bins {
			i = bins - 1
		}
		if isolate.IsHighBiofilm {
			out[i].High++
		} else {
			out[i].Low++
		}
	}

	return out
}

func (a App) genomics(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	hits := a.GwasRepo.Hits()
	sort.Slice(hits, func(i, j int) bool { return hits[i].PValue < hits[j].PValue })
	if len(hits) > 15 {
		hits = hits[:15]
	}

	return ok(a.ComponentBuilder.Genomics(components.GenomicsProps{
		TopHits:     hits,
		Models:      a.ModelRepo.Scores(),
		Importances: a.ModelRepo.FeatureImportances(),
	}))
}

func (a App) regulatory(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	return ok(a.ComponentBuilder.Regulatory(components.RegulatoryProps{
		Nodes: a.RegulatoryRepo.Nodes(),
		Edges: a.RegulatoryRepo.Edges(),
	}))
}

func (a App) surveillance(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	records := a.SurveillanceRepo.Records()

	return ok(a.ComponentBuilder.Surveillance(components.SurveillanceProps{
		TotalRecords:    len(records),
		DominantLineage: dominantLineage(records),
		AvgRisk:         avgRisk(records),
		Countries:       countrySummaries(records, 10),
		LineageSummary:  lineageSummaries(records, 5),
		Lineages:        lineages(records),
	}))
}

func dominantLineage(records []domain.SurveillanceRecord) string {
	counts := map[string]int{}
	best := "N/A"
	for _, record := range records {
		counts[record.Lineage]++
		if counts[record.Lineage] > counts[best] {
			best = record.Lineage
		}
	}
	return best
}

func avgRisk(records []domain.SurveillanceRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	sum := 0.0
	for _, record := range records {
		sum += record.BiofilmRisk
	}
	return sum / float64(len(records))
}

func countrySummaries(records []domain.SurveillanceRecord, limit int) []components.CountrySummary {
	byCountry := map[string][]domain.SurveillanceRecord{}
	for _, record := range records {
		byCountry[record.Country] = append(byCountry[record.Country], record)
	}

	summaries := make([]components.CountrySummary, 0, len(byCountry))
	for country, group := range byCountry {
		summaries = append(summaries, components.CountrySummary{
			Country:         country,
			Isolates:        len(group),
			AvgRisk:         avgRisk(group),
			DominantLineage: dominantLineage(group),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Isolates != summaries[j].Isolates {
			return summaries[i].Isolates > summaries[j].Isolates
		}
		return summaries[i].Country < summaries[j].Country
	})

	if len(summaries) > limit {
		summaries = summaries[:limit]
	}
	return summaries
}

func lineageSummaries(records []domain.SurveillanceRecord, minIsolates int) []components.LineageSummary {
	byLineage := map[string][]domain.SurveillanceRecord{}
	for _, record := range records {
		byLineage[record.Lineage] = append(byLineage[record.Lineage], record)
	}

	summaries := make([]components.LineageSummary, 0, len(byLineage))
	for lineage, group := range byLineage {
		if len(group) < minIsolates {
			continue
		}
		summaries = append(summaries, components.LineageSummary{
			Lineage:  lineage,
			Isolates: len(group),
			AvgRisk:  avgRisk(group),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].AvgRisk != summaries[j].AvgRisk {
			return summaries[i].AvgRisk > summaries[j].AvgRisk
		}
		return summaries[i].Lineage < summaries[j].Lineage
	})

	return summaries
}

func lineages(records []domain.SurveillanceRecord) []string {
	seen := map[string]bool{}
	var out []string
	for _, record := range records {
		if !seen[record.Lineage] {
			seen[record.Lineage] = true
			out = append(out, record.Lineage)
		}
	}
	sort.Strings(out)
	return out
}

func (a App) rna(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	gene := r.URL.Query().Get("gene")
	if gene == "" {
		gene = "icaA"
	}

	return ok(a.ComponentBuilder.RNA(components.RNAProps{
		HalfLives:    a.RNARepo.HalfLives(),
		Interactions: a.RNARepo.Interactions(),
		TargetGene:   gene,
		Oligos:       a.RNARepo.OligoDesigns(gene),
		Guides:       a.RNARepo.GuideDesigns(gene),
	}))
}

type cocktailReq struct {
	Therapy   string   `json:"therapy"`
	Lineages  []string `json:"lineages"`
	Threshold float64  `json:"threshold"`
}

func (a App) cocktail(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	if r.Method != http.MethodPost {
		return a.errResponse(get405(), nil)
	}

	req, err := parseCocktailReq(r)
	if err != nil {
		return a.errResponse(get500(), err)
	}

	phages, peptides, err := a.AgentRepo.Agents()
	if err != nil {
		return a.errResponse(get500(), err)
	}

	runId := uuid.New().String()

	matrix, targets := cocktail.BuildMatrix(phages, peptides, req.Therapy, req.Lineages)
	entries := cocktail.Recommend(matrix, targets, req.Threshold)
	aggregate := cocktail.CoveredFraction(entries, targets)

	slog.Info(fmt.Sprintf("cocktail run %s: therapy=%s targets=%d selected=%d coverage=%.2f",
		runId, req.Therapy, len(targets), len(entries), aggregate))

	return ok(a.ComponentBuilder.Cocktail(components.CocktailProps{
		RunId:     runId,
		Therapy:   req.Therapy,
		Threshold: req.Threshold,
		Entries:   entries,
		Aggregate: aggregate,
		Agents:    matrix.Agents(),
		Matrix:    matrixRows(matrix, targets),
	}))
}

func parseCocktailReq(r *http.Request) (*cocktailReq, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		content, err := Read(r.Body)
		if err != nil {
			return nil, err
		}

		req, err := ReadJSON[cocktailReq](content)
		if err != nil {
			return nil, err
		}

		return normalizeCocktailReq(req), nil
	}

	err := r.ParseForm()
	if err != nil {
		return nil, err
	}

	threshold := 0.0
	if raw := r.PostForm.Get("threshold"); raw != "" {
		threshold, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, err
		}
	}

	return normalizeCocktailReq(&cocktailReq{
		Therapy:   r.PostForm.Get("therapy"),
		Lineages:  r.PostForm["lineage"],
		Threshold: threshold,
	}), nil
}

func normalizeCocktailReq(req *cocktailReq) *cocktailReq {
	if req.Therapy == "" {
		req.Therapy = cocktail.TherapyPhage
	}
	// The form submits whole percent, the JSON API a fraction.
	if req.Threshold > 1 {
		req.Threshold = req.Threshold / 100
	}
	if req.Threshold <= 0 {
		req.Threshold = cocktail.DefaultThreshold
	}
	return req
}

func matrixRows(matrix cocktail.Matrix, targets []string) []components.MatrixRow {
	agents := matrix.Agents()

	rows := make([]components.MatrixRow, len(targets))
	for i, lineage := range targets {
		values := make([]float64, len(agents))
		for j, agent := range agents {
			values[j] = matrix.Coverage(agent, lineage)
		}
		rows[i] = components.MatrixRow{Lineage: lineage, Values: values}
	}

	return rows
}

func (a App) upload(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	if r.Method != http.MethodPost {
		return a.errResponse(get405(), nil)
	}

	file, header, err := r.FormFile("genome")
	if err != nil {
		return a.errResponse(get500(), err)
	}

	content, err := Read(file)
	if err != nil {
		return a.errResponse(get500(), err)
	}

	runId := uuid.New().String()
	slog.Info(fmt.Sprintf("upload run %s: file=%s size=%d", runId, header.Filename, header.Size))

	return ok(a.ComponentBuilder.Upload(components.UploadProps{
		RunId:    runId,
		Filename: header.Filename,
		Size:     header.Size,
		Records:  countSequences(content),
	}))
}

// countSequences counts FASTA headers, falling back to a FASTQ estimate of
// one record per four lines.
func countSequences(content []byte) int {
	lines := bytes.Split(content, []byte("\n"))

	count := 0
	for _, line := range lines {
		if len(line) > 0 && line[0] == '>' {
			count++
		}
	}

	if count == 0 && len(lines) >= 4 && len(lines[0]) > 0 && lines[0][0] == '@' {
		count = len(lines) / 4
	}

	return count
}

func (a App) export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Add("Content-Type", "text/csv")
	w.Header().Add("Content-Disposition", `attachment; filename="surveillance.csv"`)

	err := persistence.WriteSurveillance(w, a.SurveillanceRepo.Records())
	if err != nil {
		slog.Error(fmt.Sprintf(`Error occured: %s`, err.Error()))
	}
}

// exportCocktail recomputes the cocktail from the submitted selection and
// streams it as CSV. Recommend is deterministic, so the download matches the
// rendered result for the same inputs.
func (a App) exportCocktail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req, err := parseCocktailReq(r)
	if err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	phages, peptides, err := a.AgentRepo.Agents()
	if err != nil {
		slog.Error(fmt.Sprintf(`Error occured: %s`, err.Error()))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	matrix, targets := cocktail.BuildMatrix(phages, peptides, req.Therapy, req.Lineages)
	entries := cocktail.Recommend(matrix, targets, req.Threshold)

	w.Header().Add("Content-Type", "text/csv")
	w.Header().Add("Content-Disposition", `attachment; filename="cocktail.csv"`)

	err = persistence.WriteCocktail(w, entries)
	if err != nil {
		slog.Error(fmt.Sprintf(`Error occured: %s`, err.Error()))
	}
}

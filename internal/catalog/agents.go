package catalog

import (
	_ "embed"

	"gopkg.in/yaml.v3"

	"github.com/abyounis/biofilmwatch/internal/domain"
)

//go:embed catalog.yaml
var catalogYAML []byte

type agentRecord struct {
	Id       string             `yaml:"id"`
	Name     string             `yaml:"name"`
	Target   string             `yaml:"target"`
	Coverage map[string]float64 `yaml:"coverage"`
}

type agentCatalog struct {
	Phages   []agentRecord `yaml:"phages"`
	Peptides []agentRecord `yaml:"peptides"`
}

// AgentRepo serves the therapeutic agent catalog embedded with the binary.
type AgentRepo struct{}

func (AgentRepo) Agents() ([]domain.Agent, []domain.Agent, error) {
	var catalog agentCatalog
	err := yaml.Unmarshal(catalogYAML, &catalog)

	if err != nil {
		return nil, nil, err
	}

	return toAgents(catalog.Phages, "phage"), toAgents(catalog.Peptides, "peptide"), nil
}

func toAgents(records []agentRecord, class string) []domain.Agent {
	agents := make([]domain.Agent, len(records))
	for i := 0; i < len(records); i++ {
		agents[i] = domain.Agent{
			Id:       records[i].Id,
			Name:     records[i].Name,
			Target:   records[i].Target,
			Class:    class,
			Coverage: records[i].Coverage,
		}
	}
	return agents
}

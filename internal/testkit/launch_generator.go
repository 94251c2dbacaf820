package testkit

import (
	"math"
	"math/rand"

	"spacexdash/domain/launch"
)

// BoosterProfile describes one booster generation: how heavy its payloads
// run and how often it succeeds.
type BoosterProfile struct {
	Category       string  `json:"category"`
	MaxPayloadKg   float64 `json:"max_payload_kg"`
	SuccessRate    float64 `json:"success_rate"`
	ZeroPayloadPct float64 `json:"zero_payload_pct"`
}

// LaunchGeneratorConfig configures the launch record generator
type LaunchGeneratorConfig struct {
	Count    int              `json:"count"`
	Sites    []string         `json:"sites"`
	Boosters []BoosterProfile `json:"boosters"`
	Seed     int64            `json:"seed"`
}

// DefaultLaunchConfig returns a config shaped like the published launch
// history: early boosters carry light payloads and fail often, later ones
// carry heavy payloads and mostly succeed.
func DefaultLaunchConfig() LaunchGeneratorConfig {
	return LaunchGeneratorConfig{
		Count: 56,
		Sites: []string{
			"Cape Canaveral",
			"Kennedy Space Center",
			"Vandenberg",
		},
		Boosters: []BoosterProfile{
			{Category: "v1.0", MaxPayloadKg: 700, SuccessRate: 0.1, ZeroPayloadPct: 0.4},
			{Category: "v1.1", MaxPayloadKg: 4500, SuccessRate: 0.25},
			{Category: "FT", MaxPayloadKg: 9600, SuccessRate: 0.7},
			{Category: "B4", MaxPayloadKg: 9600, SuccessRate: 0.55},
			{Category: "B5", MaxPayloadKg: 15600, SuccessRate: 0.9},
		},
		Seed: 42,
	}
}

// LaunchDataGenerator produces deterministic synthetic launch records
type LaunchDataGenerator struct {
	config LaunchGeneratorConfig
	rng    *rand.Rand
}

// NewLaunchDataGenerator creates a generator seeded from config.Seed
func NewLaunchDataGenerator(config LaunchGeneratorConfig) *LaunchDataGenerator {
	return &LaunchDataGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Generate returns config.Count records. Boosters are assigned in
// chronological blocks so generations appear in order, as they flew.
func (g *LaunchDataGenerator) Generate() []launch.Record {
	if g.config.Count <= 0 || len(g.config.Sites) == 0 || len(g.config.Boosters) == 0 {
		return []launch.Record{}
	}

	records := make([]launch.Record, g.config.Count)
	for i := range records {
		booster := g.config.Boosters[i*len(g.config.Boosters)/g.config.Count]
		records[i] = launch.Record{
			Site:            g.config.Sites[g.rng.Intn(len(g.config.Sites))],
			PayloadMassKg:   g.payload(booster),
			Class:           g.outcome(booster),
			BoosterCategory: booster.Category,
		}
	}
	return records
}

// Dataset is Generate wrapped as a dataset.
func (g *LaunchDataGenerator) Dataset() *launch.Dataset {
	return launch.NewDataset(g.Generate())
}

func (g *LaunchDataGenerator) payload(b BoosterProfile) float64 {
	if g.rng.Float64() < b.ZeroPayloadPct {
		return 0
	}
	// Rounded to whole kilograms, like the manifest figures.
	return math.Round(g.rng.Float64() * b.MaxPayloadKg)
}

func (g *LaunchDataGenerator) outcome(b BoosterProfile) launch.Outcome {
	if g.rng.Float64() < b.SuccessRate {
		return launch.Success
	}
	return launch.Failure
}

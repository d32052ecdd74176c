package server

import (
	"gamewatch/internal/config"
	"gamewatch/internal/domain"
	"gamewatch/internal/providers"
	"gamewatch/internal/providers/espn"
	"gamewatch/internal/providers/fixture"
	"gamewatch/internal/providers/nhl"
)

// buildProviders assembles one schedule provider per league. PROVIDERS=fixture
// swaps in deterministic local data for development and smoke tests.
func buildProviders(cfg config.Config) []providers.ScheduleProvider {
	if cfg.Providers == "fixture" {
		return []providers.ScheduleProvider{
			fixture.New(domain.LeagueNHL),
			fixture.New(domain.LeagueNBA),
			fixture.New(domain.LeagueMLB),
		}
	}
	return []providers.ScheduleProvider{
		nhl.NewClient(nhl.Config{}),
		espn.NewClient(espn.Config{League: domain.LeagueNBA}),
		espn.NewClient(espn.Config{League: domain.LeagueMLB}),
	}
}

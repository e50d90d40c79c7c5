package feed

import (
	"slices"
	"testing"
)

func TestMatchTeamsCurated(t *testing.T) {
	extractor := NewExtractor()

	entities := extractor.Run(
		"Manchester United edge Liverpool in five-goal thriller",
		"Late drama at Old Trafford.",
	)

	if !slices.Contains(entities.Teams, "Manchester United") {
		t.Errorf("Expected Manchester United in teams, got: %v", entities.Teams)
	}
	if !slices.Contains(entities.Teams, "Liverpool") {
		t.Errorf("Expected Liverpool in teams, got: %v", entities.Teams)
	}
	if len(entities.Teams) > maxTeams {
		t.Errorf("Teams exceed cap: %v", entities.Teams)
	}
}

func TestMatchTeamsClubPrefix(t *testing.T) {
	extractor := NewExtractor()

	entities := extractor.Run("FC Porto stun RC Lens in Europe", "")

	if !slices.Contains(entities.Teams, "FC Porto") {
		t.Errorf("Expected club-prefix match FC Porto, got: %v", entities.Teams)
	}
	if !slices.Contains(entities.Teams, "RC Lens") {
		t.Errorf("Expected club-prefix match RC Lens, got: %v", entities.Teams)
	}
}

func TestMatchPlayers(t *testing.T) {
	extractor := NewExtractor()

	entities := extractor.Run(
		"Marcus Rashford stars as substitutes shine",
		"Virgil van Dijk could not stop the late surge.",
	)

	if !slices.Contains(entities.Players, "Marcus Rashford") {
		t.Errorf("Expected Marcus Rashford in players, got: %v", entities.Players)
	}
	if !slices.Contains(entities.Players, "Virgil van Dijk") {
		t.Errorf("Expected particle name Virgil van Dijk, got: %v", entities.Players)
	}
}

func TestMatchPlayersStoplist(t *testing.T) {
	extractor := NewExtractor()

	entities := extractor.Run(
		"After Super Bowl heartbreak, what next",
		"This Grand Prix weekend promises drama.",
	)

	if len(entities.Players) != 0 {
		t.Errorf("Stoplisted phrases leaked into players: %v", entities.Players)
	}
}

func TestMatchPlayersMinimumLength(t *testing.T) {
	extractor := NewExtractor()

	entities := extractor.Run("Bo Li wins the opening frame", "")

	for _, player := range entities.Players {
		if len(player) < minPlayerNameLen {
			t.Errorf("Player below minimum length admitted: %q", player)
		}
	}
}

func TestMatchEventsAndLeagues(t *testing.T) {
	extractor := NewExtractor()

	entities := extractor.Run(
		"Wimbledon order of play as ATP rankings shift",
		"The build-up to the World Cup continues.",
	)

	if !slices.Contains(entities.Events, "Wimbledon") {
		t.Errorf("Expected Wimbledon in events, got: %v", entities.Events)
	}
	if !slices.Contains(entities.Events, "World Cup") {
		t.Errorf("Expected World Cup in events, got: %v", entities.Events)
	}
	if !slices.Contains(entities.Leagues, "ATP") {
		t.Errorf("Expected ATP in leagues, got: %v", entities.Leagues)
	}
	if len(entities.Leagues) > maxLeagues {
		t.Errorf("Leagues exceed cap: %v", entities.Leagues)
	}
}

func TestMatchTopics(t *testing.T) {
	extractor := NewExtractor()

	entities := extractor.Run(
		"Striker's hat-trick seals the derby",
		"An injury scare overshadowed the transfer talk.",
	)

	if len(entities.Topics) == 0 {
		t.Fatal("Expected topic matches")
	}
	if len(entities.Topics) > maxTopics {
		t.Errorf("Topics exceed cap: %v", entities.Topics)
	}
	for _, topic := range entities.Topics {
		if topic[0] < 'A' || topic[0] > 'Z' {
			t.Errorf("Topic not in display form: %q", topic)
		}
	}
}

func TestEntitiesDedupedCaseInsensitively(t *testing.T) {
	extractor := NewExtractor()

	entities := extractor.Run(
		"LIVERPOOL vs Liverpool: Liverpool in focus",
		"More about liverpool.",
	)

	if len(entities.Teams) != 1 {
		t.Errorf("Expected a single deduplicated team, got: %v", entities.Teams)
	}
}

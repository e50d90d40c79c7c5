package feed

import (
	"regexp"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Per-kind caps keep cards scannable; the extractor is best-effort
// and noisy by design, so it never yields more than a handful of
// candidates per kind.
const (
	maxTeams   = 2
	maxPlayers = 2
	maxEvents  = 2
	maxLeagues = 1
	maxTopics  = 2

	minPlayerNameLen = 8
)

// Entities holds everything the extractor recognized in one item.
type Entities struct {
	Teams   []string
	Players []string
	Events  []string
	Leagues []string
	Topics  []string
}

// Extractor pattern-matches teams, players, events, leagues and
// topics out of free text. Each kind has its own matcher so the
// tables in entities.go can be tuned and tested independently.
type Extractor struct {
	teamListRe   *regexp.Regexp
	clubPrefixRe *regexp.Regexp
	playerRe     *regexp.Regexp
	eventRe      *regexp.Regexp
	leagueRe     *regexp.Regexp
}

func NewExtractor() *Extractor {
	particles := make([]string, len(nameParticles))
	for i, p := range nameParticles {
		particles[i] = strings.ReplaceAll(regexp.QuoteMeta(p), " ", `\s+`)
	}

	return &Extractor{
		teamListRe:   regexp.MustCompile(`(?i)\b(?:` + alternation(teamNames) + `)\b`),
		clubPrefixRe: regexp.MustCompile(`\b(?:` + strings.Join(clubPrefixes, "|") + `)\s+[A-Z][A-Za-z]+(?:\s+[A-Z][A-Za-z]+)?`),
		playerRe:     regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+(?:` + strings.Join(particles, "|") + `))?\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?\b`),
		eventRe:      regexp.MustCompile(`(?i)\b(?:` + alternation(eventNames) + `)\b`),
		leagueRe:     regexp.MustCompile(`(?i)\b(?:` + alternation(leagueNames) + `)\b`),
	}
}

// Run extracts entities from an item's title and description.
func (e *Extractor) Run(title, description string) Entities {
	text := strings.TrimSpace(title + " " + description)

	return Entities{
		Teams:   e.matchTeams(text),
		Players: e.matchPlayers(text),
		Events:  e.matchEvents(text),
		Leagues: e.matchLeagues(text),
		Topics:  e.matchTopics(text),
	}
}

func (e *Extractor) matchTeams(text string) []string {
	var teams []string
	teams = append(teams, e.teamListRe.FindAllString(text, -1)...)
	teams = append(teams, e.clubPrefixRe.FindAllString(text, -1)...)
	return uniqueFold(teams, maxTeams)
}

func (e *Extractor) matchPlayers(text string) []string {
	candidates := e.playerRe.FindAllString(text, -1)

	players := lo.Filter(candidates, func(candidate string, _ int) bool {
		if len(candidate) < minPlayerNameLen {
			return false
		}
		for _, stop := range playerStopwords {
			if strings.Contains(candidate, stop) {
				return false
			}
		}
		return true
	})

	return uniqueFold(players, maxPlayers)
}

func (e *Extractor) matchEvents(text string) []string {
	return uniqueFold(e.eventRe.FindAllString(text, -1), maxEvents)
}

func (e *Extractor) matchLeagues(text string) []string {
	return uniqueFold(e.leagueRe.FindAllString(text, -1), maxLeagues)
}

func (e *Extractor) matchTopics(text string) []string {
	lowered := strings.ToLower(text)

	var topics []string
	for match, display := range topicVocabulary {
		if strings.Contains(lowered, match) {
			topics = append(topics, display)
		}
	}

	// Map iteration order is random; keep output stable for tag
	// assembly downstream.
	sort.Strings(topics)
	return uniqueFold(topics, maxTopics)
}

func alternation(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = strings.ReplaceAll(regexp.QuoteMeta(name), " ", `\s+`)
	}
	return strings.Join(quoted, "|")
}

// uniqueFold deduplicates case-insensitively, keeps first occurrence
// order, trims entries, and caps the result.
func uniqueFold(values []string, max int) []string {
	trimmed := lo.Map(values, func(v string, _ int) string {
		return strings.TrimSpace(v)
	})
	unique := lo.UniqBy(trimmed, strings.ToLower)
	if len(unique) > max {
		unique = unique[:max]
	}
	return unique
}

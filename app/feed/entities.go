package feed

// Curated entity tables backing the extractor. These are deliberately
// editable data, not logic: tuning recall for a new league or
// competition means adding a line here, nothing else.

// Well-known clubs and franchises across football, NBA, NFL and MLB.
var teamNames = []string{
	"Manchester United", "Manchester City", "Liverpool", "Chelsea",
	"Arsenal", "Tottenham", "Barcelona", "Real Madrid", "Bayern Munich",
	"Juventus", "PSG", "Inter Milan", "AC Milan", "Borussia Dortmund",
	"Ajax", "Feyenoord", "PSV", "AZ Alkmaar", "Leeds", "Everton",
	"Newcastle", "West Ham", "Aston Villa",
	"Lakers", "Celtics", "Warriors", "Bucks", "Heat", "Nets", "76ers",
	"Knicks", "Bulls", "Suns", "Mavericks", "Clippers",
	"Cowboys", "Patriots", "Chiefs", "Eagles", "49ers", "Bills",
	"Ravens", "Seahawks", "Packers", "Raiders",
	"Yankees", "Dodgers", "Red Sox", "Cubs", "Cardinals", "Mets",
	"Braves", "Giants", "Phillies",
}

// Club-type prefixes that mark "<prefix> <ProperNoun>" as a team name
// (FC Porto, AS Roma, RC Lens, ...).
var clubPrefixes = []string{"FC", "AC", "AS", "SS", "SC", "CF", "CD", "RC"}

// Named tournaments and competitions.
var eventNames = []string{
	"World Cup", "Champions League", "Europa League", "Euro 2024",
	"Euro 2028", "Olympics", "Winter Olympics", "Grand Prix",
	"Wimbledon", "US Open", "Australian Open", "French Open",
	"Roland Garros", "Tour de France", "Giro d'Italia", "NBA Finals",
	"Super Bowl", "World Series", "Stanley Cup", "Ryder Cup",
	"FA Cup", "Copa America", "Ashes",
}

// Leagues and governing organizations.
var leagueNames = []string{
	"NBA", "NFL", "MLB", "NHL", "PGA", "ATP", "WTA", "UFC", "MLS",
	"Eredivisie", "Premier League", "La Liga", "Bundesliga", "Serie A",
	"Ligue 1", "Champions League",
}

// Generic sports-journalism vocabulary surfaced as topic tags, keyed
// by the lowercase match form with its display form as value.
var topicVocabulary = map[string]string{
	"transfer":     "Transfer",
	"injury":       "Injury",
	"injured":      "Injury",
	"hat-trick":    "Hat-trick",
	"penalty":      "Penalty",
	"red card":     "Red Card",
	"contract":     "Contract",
	"comeback":     "Comeback",
	"world record": "World Record",
	"champion":     "Champion",
	"derby":        "Derby",
	"qualifier":    "Qualifier",
	"retirement":   "Retirement",
}

// Lowercase particles allowed inside multi-word player names.
var nameParticles = []string{"van der", "van de", "van", "de", "der"}

// Capitalized sequences that look like player names but are not.
// Sentence-leading words and multi-word event names dominate the
// false positives.
var playerStopwords = []string{
	"The", "This", "That", "From", "With", "After", "Before", "About",
	"Why", "How", "What", "When", "Where", "Watch", "Live",
	"Super Bowl", "World Cup", "Grand Prix", "Premier League",
	"Champions League", "World Series", "Stanley Cup", "United States",
	"New York", "Los Angeles", "San Francisco",
}

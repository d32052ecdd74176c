package domain

// Directory is the static league → team reference table, loaded once at
// startup. Lookups are by (league, abbrev).
type Directory struct {
	teams map[League][]Team
	index map[League]map[string]Team
}

// NewDirectory builds a Directory over the built-in rosters.
func NewDirectory() *Directory {
	return newDirectory(rosters)
}

func newDirectory(byLeague map[League][]Team) *Directory {
	index := make(map[League]map[string]Team, len(byLeague))
	for league, teams := range byLeague {
		m := make(map[string]Team, len(teams))
		for _, t := range teams {
			m[t.Abbrev] = t
		}
		index[league] = m
	}
	return &Directory{teams: byLeague, index: index}
}

// Lookup returns the team for (league, abbrev) when present.
func (d *Directory) Lookup(league League, abbrev string) (Team, bool) {
	t, ok := d.index[league][abbrev]
	return t, ok
}

// Teams returns the ordered roster for a league.
func (d *Directory) Teams(league League) []Team {
	return d.teams[league]
}

// All returns the full league → roster table keyed by league name.
func (d *Directory) All() map[League][]Team {
	return d.teams
}

func nhlTeam(abbrev, name, city, slug string) Team {
	return Team{League: LeagueNHL, Abbrev: abbrev, Name: name, City: city, Slug: slug}
}

func nbaTeam(abbrev, name, city, slug string) Team {
	return Team{League: LeagueNBA, Abbrev: abbrev, Name: name, City: city, Slug: slug}
}

func mlbTeam(abbrev, name, city, slug string) Team {
	return Team{League: LeagueMLB, Abbrev: abbrev, Name: name, City: city, Slug: slug}
}

var rosters = map[League][]Team{
	LeagueNHL: {
		nhlTeam("ANA", "Anaheim Ducks", "Anaheim", "anaheim-ducks"),
		nhlTeam("ARI", "Arizona Coyotes", "Arizona", "arizona-coyotes"),
		nhlTeam("BOS", "Boston Bruins", "Boston", "boston-bruins"),
		nhlTeam("BUF", "Buffalo Sabres", "Buffalo", "buffalo-sabres"),
		nhlTeam("CGY", "Calgary Flames", "Calgary", "calgary-flames"),
		nhlTeam("CAR", "Carolina Hurricanes", "Carolina", "carolina-hurricanes"),
		nhlTeam("CHI", "Chicago Blackhawks", "Chicago", "chicago-blackhawks"),
		nhlTeam("COL", "Colorado Avalanche", "Colorado", "colorado-avalanche"),
		nhlTeam("CBJ", "Columbus Blue Jackets", "Columbus", "columbus-blue-jackets"),
		nhlTeam("DAL", "Dallas Stars", "Dallas", "dallas-stars"),
		nhlTeam("DET", "Detroit Red Wings", "Detroit", "detroit-red-wings"),
		nhlTeam("EDM", "Edmonton Oilers", "Edmonton", "edmonton-oilers"),
		nhlTeam("FLA", "Florida Panthers", "Florida", "florida-panthers"),
		nhlTeam("LAK", "Los Angeles Kings", "Los Angeles", "los-angeles-kings"),
		nhlTeam("MIN", "Minnesota Wild", "Minnesota", "minnesota-wild"),
		nhlTeam("MTL", "Montreal Canadiens", "Montreal", "montreal-canadiens"),
		nhlTeam("NSH", "Nashville Predators", "Nashville", "nashville-predators"),
		nhlTeam("NJD", "New Jersey Devils", "New Jersey", "new-jersey-devils"),
		nhlTeam("NYI", "New York Islanders", "New York", "new-york-islanders"),
		nhlTeam("NYR", "New York Rangers", "New York", "new-york-rangers"),
		nhlTeam("OTT", "Ottawa Senators", "Ottawa", "ottawa-senators"),
		nhlTeam("PHI", "Philadelphia Flyers", "Philadelphia", "philadelphia-flyers"),
		nhlTeam("PIT", "Pittsburgh Penguins", "Pittsburgh", "pittsburgh-penguins"),
		nhlTeam("SJS", "San Jose Sharks", "San Jose", "san-jose-sharks"),
		nhlTeam("SEA", "Seattle Kraken", "Seattle", "seattle-kraken"),
		nhlTeam("STL", "St. Louis Blues", "St. Louis", "st-louis-blues"),
		nhlTeam("TBL", "Tampa Bay Lightning", "Tampa Bay", "tampa-bay-lightning"),
		nhlTeam("TOR", "Toronto Maple Leafs", "Toronto", "toronto-maple-leafs"),
		nhlTeam("UTA", "Utah Hockey Club", "Utah", "utah-hockey-club"),
		nhlTeam("VAN", "Vancouver Canucks", "Vancouver", "vancouver-canucks"),
		nhlTeam("VGK", "Vegas Golden Knights", "Vegas", "vegas-golden-knights"),
		nhlTeam("WSH", "Washington Capitals", "Washington", "washington-capitals"),
		nhlTeam("WPG", "Winnipeg Jets", "Winnipeg", "winnipeg-jets"),
	},
	LeagueNBA: {
		nbaTeam("ATL", "Atlanta Hawks", "Atlanta", "atlanta-hawks"),
		nbaTeam("BOS", "Boston Celtics", "Boston", "boston-celtics"),
		nbaTeam("BKN", "Brooklyn Nets", "Brooklyn", "brooklyn-nets"),
		nbaTeam("CHA", "Charlotte Hornets", "Charlotte", "charlotte-hornets"),
		nbaTeam("CHI", "Chicago Bulls", "Chicago", "chicago-bulls"),
		nbaTeam("CLE", "Cleveland Cavaliers", "Cleveland", "cleveland-cavaliers"),
		nbaTeam("DAL", "Dallas Mavericks", "Dallas", "dallas-mavericks"),
		nbaTeam("DEN", "Denver Nuggets", "Denver", "denver-nuggets"),
		nbaTeam("DET", "Detroit Pistons", "Detroit", "detroit-pistons"),
		nbaTeam("GSW", "Golden State Warriors", "Golden State", "golden-state-warriors"),
		nbaTeam("HOU", "Houston Rockets", "Houston", "houston-rockets"),
		nbaTeam("IND", "Indiana Pacers", "Indiana", "indiana-pacers"),
		nbaTeam("LAC", "Los Angeles Clippers", "Los Angeles", "los-angeles-clippers"),
		nbaTeam("LAL", "Los Angeles Lakers", "Los Angeles", "los-angeles-lakers"),
		nbaTeam("MEM", "Memphis Grizzlies", "Memphis", "memphis-grizzlies"),
		nbaTeam("MIA", "Miami Heat", "Miami", "miami-heat"),
		nbaTeam("MIL", "Milwaukee Bucks", "Milwaukee", "milwaukee-bucks"),
		nbaTeam("MIN", "Minnesota Timberwolves", "Minnesota", "minnesota-timberwolves"),
		nbaTeam("NOP", "New Orleans Pelicans", "New Orleans", "new-orleans-pelicans"),
		nbaTeam("NYK", "New York Knicks", "New York", "new-york-knicks"),
		nbaTeam("OKC", "Oklahoma City Thunder", "Oklahoma City", "oklahoma-city-thunder"),
		nbaTeam("ORL", "Orlando Magic", "Orlando", "orlando-magic"),
		nbaTeam("PHI", "Philadelphia 76ers", "Philadelphia", "philadelphia-76ers"),
		nbaTeam("PHX", "Phoenix Suns", "Phoenix", "phoenix-suns"),
		nbaTeam("POR", "Portland Trail Blazers", "Portland", "portland-trail-blazers"),
		nbaTeam("SAC", "Sacramento Kings", "Sacramento", "sacramento-kings"),
		nbaTeam("SAS", "San Antonio Spurs", "San Antonio", "san-antonio-spurs"),
		nbaTeam("TOR", "Toronto Raptors", "Toronto", "toronto-raptors"),
		nbaTeam("UTA", "Utah Jazz", "Utah", "utah-jazz"),
		nbaTeam("WAS", "Washington Wizards", "Washington", "washington-wizards"),
	},
	LeagueMLB: {
		mlbTeam("ARI", "Arizona Diamondbacks", "Arizona", "arizona-diamondbacks"),
		mlbTeam("ATL", "Atlanta Braves", "Atlanta", "atlanta-braves"),
		mlbTeam("BAL", "Baltimore Orioles", "Baltimore", "baltimore-orioles"),
		mlbTeam("BOS", "Boston Red Sox", "Boston", "boston-red-sox"),
		mlbTeam("CHC", "Chicago Cubs", "Chicago", "chicago-cubs"),
		mlbTeam("CHW", "Chicago White Sox", "Chicago", "chicago-white-sox"),
		mlbTeam("CIN", "Cincinnati Reds", "Cincinnati", "cincinnati-reds"),
		mlbTeam("CLE", "Cleveland Guardians", "Cleveland", "cleveland-guardians"),
		mlbTeam("COL", "Colorado Rockies", "Colorado", "colorado-rockies"),
		mlbTeam("DET", "Detroit Tigers", "Detroit", "detroit-tigers"),
		mlbTeam("HOU", "Houston Astros", "Houston", "houston-astros"),
		mlbTeam("KCR", "Kansas City Royals", "Kansas City", "kansas-city-royals"),
		mlbTeam("LAA", "Los Angeles Angels", "Los Angeles", "los-angeles-angels"),
		mlbTeam("LAD", "Los Angeles Dodgers", "Los Angeles", "los-angeles-dodgers"),
		mlbTeam("MIA", "Miami Marlins", "Miami", "miami-marlins"),
		mlbTeam("MIL", "Milwaukee Brewers", "Milwaukee", "milwaukee-brewers"),
		mlbTeam("MIN", "Minnesota Twins", "Minnesota", "minnesota-twins"),
		mlbTeam("NYM", "New York Mets", "New York", "new-york-mets"),
		mlbTeam("NYY", "New York Yankees", "New York", "new-york-yankees"),
		mlbTeam("OAK", "Oakland Athletics", "Oakland", "oakland-athletics"),
		mlbTeam("PHI", "Philadelphia Phillies", "Philadelphia", "philadelphia-phillies"),
		mlbTeam("PIT", "Pittsburgh Pirates", "Pittsburgh", "pittsburgh-pirates"),
		mlbTeam("SDP", "San Diego Padres", "San Diego", "san-diego-padres"),
		mlbTeam("SFG", "San Francisco Giants", "San Francisco", "san-francisco-giants"),
		mlbTeam("SEA", "Seattle Mariners", "Seattle", "seattle-mariners"),
		mlbTeam("STL", "St. Louis Cardinals", "St. Louis", "st-louis-cardinals"),
		mlbTeam("TBR", "Tampa Bay Rays", "Tampa Bay", "tampa-bay-rays"),
		mlbTeam("TEX", "Texas Rangers", "Texas", "texas-rangers"),
		mlbTeam("TOR", "Toronto Blue Jays", "Toronto", "toronto-blue-jays"),
		mlbTeam("WSN", "Washington Nationals", "Washington", "washington-nationals"),
	},
}

package nhl

// The NHL api-web schedule payload groups games under gameWeek days. Only the
// fields this service reads are modeled; everything else is ignored on decode
// and absent fields simply stay zero.
type scheduleResponse struct {
	GameWeek []gameDay `json:"gameWeek"`
}

type gameDay struct {
	Date  string         `json:"date"`
	Games []gameResponse `json:"games"`
}

type gameResponse struct {
	ID           int64        `json:"id"`
	StartTimeUTC string       `json:"startTimeUTC"`
	GameState    string       `json:"gameState"`
	HomeTeam     teamResponse `json:"homeTeam"`
	AwayTeam     teamResponse `json:"awayTeam"`
}

type teamResponse struct {
	Abbrev     string    `json:"abbrev"`
	PlaceName  localName `json:"placeName"`
	CommonName localName `json:"commonName"`
}

type localName struct {
	Default string `json:"default"`
}

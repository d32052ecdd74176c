package espn

// ESPN's scoreboard payload nests teams three levels deep. Only the fields
// this service reads are modeled; the mapper treats every nested path as
// optional so a sparse event degrades instead of failing the batch.
type scoreboardResponse struct {
	Events []eventResponse `json:"events"`
}

type eventResponse struct {
	ID           string                `json:"id"`
	Date         string                `json:"date"`
	Competitions []competitionResponse `json:"competitions"`
	Status       statusResponse        `json:"status"`
}

type competitionResponse struct {
	Competitors []competitorResponse `json:"competitors"`
}

type competitorResponse struct {
	HomeAway string       `json:"homeAway"`
	Team     teamResponse `json:"team"`
}

type teamResponse struct {
	Abbreviation string `json:"abbreviation"`
	DisplayName  string `json:"displayName"`
}

type statusResponse struct {
	Type statusTypeResponse `json:"type"`
}

type statusTypeResponse struct {
	Name string `json:"name"`
}

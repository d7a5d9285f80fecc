package wikidata

// Predicate labels as they appear in the Wikidata export. These are a fixed
// vocabulary contract with the upstream SPARQL query and must match byte-for-byte.
const (
	PredicateLichessUsername = "Lichess username"
	PredicateChessComID      = "Chess.com member ID"
	PredicateChessTitle      = "title of chess person"
	PredicateEloRating       = "Elo rating"
	PredicateBirthPlace      = "place of birth"
	PredicateBirthDate       = "date of birth"
	PredicateSportCountry    = "country for sport"
	PredicateCitizenship     = "country of citizenship"
	PredicateImage           = "image"
)

// TitleGrandmaster is the only chess title the pipeline cares about.
const TitleGrandmaster = "Grandmaster"

// Statement is one subject-predicate-object row of the raw dump. The JSON field
// names mirror the SPARQL projection used to export the dump.
type Statement struct {
	PlayerLabel    string  `json:"playerLabel"`
	Predicate      string  `json:"wdLabel"`
	Value          string  `json:"ps_Label"`
	QualifierLabel *string `json:"wdpqLabel,omitempty"`
	QualifierValue *string `json:"pq_Label,omitempty"`
}

// PlayerRecord is the normalized, merged profile for one player. Records are
// built once per pipeline run and immutable afterwards.
type PlayerRecord struct {
	Name               string   `json:"name" msgpack:"name"`
	BirthDate          string   `json:"birth_date" msgpack:"birth_date"`
	BirthPlace         string   `json:"birth_place" msgpack:"birth_place"`
	YearOfGM           int      `json:"year_of_gm" msgpack:"year_of_gm"`
	ChessComName       []string `json:"chess_com_name" msgpack:"chess_com_name"`
	LichessName        []string `json:"lichess_name" msgpack:"lichess_name"`
	PeakRating         uint32   `json:"peak_rating" msgpack:"peak_rating"`
	SportCountry       string   `json:"sport_country" msgpack:"sport_country"`
	CitizenshipCountry string   `json:"citizenship_country" msgpack:"citizenship_country"`
	Images             []string `json:"images" msgpack:"images"`
}

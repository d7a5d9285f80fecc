package wikidata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// dumpQuery is the SPARQL projection the dump format is contracted against:
// every statement of every player rated 2700 or above, one row per
// (player, predicate, value, qualifier).
const dumpQuery = `
SELECT ?playerLabel ?wdLabel ?ps_Label ?wdpqLabel ?pq_Label WHERE {
  ?player wdt:P106 wd:Q10873124 .
  ?player p:P1087 ?eloStmt .
  ?eloStmt ps:P1087 ?elo .
  FILTER(?elo >= 2700)
  ?player ?p ?statement .
  ?statement ?ps ?ps_ .
  ?wd wikibase:claim ?p .
  ?wd wikibase:statementProperty ?ps .
  OPTIONAL {
    ?statement ?pq ?pq_ .
    ?wdpq wikibase:qualifier ?pq .
  }
  SERVICE wikibase:label { bd:serviceParam wikibase:language "en" . }
}
ORDER BY ?playerLabel`

// APIClient fetches the statement dump from a Wikidata SPARQL endpoint. It
// implements the DumpClient interface.
type APIClient struct {
	httpClient *http.Client
	Endpoint   string
}

// NewClient creates a dump client for the given SPARQL endpoint. An empty
// endpoint falls back to the public Wikidata query service.
func NewClient(endpoint string) DumpClient {
	if endpoint == "" {
		endpoint = "https://query.wikidata.org/sparql"
	}
	return &APIClient{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		Endpoint:   endpoint,
	}
}

var _ DumpClient = (*APIClient)(nil)

// sparqlResponse is the standard SPARQL JSON results envelope, narrowed to the
// fields the dump projection produces.
type sparqlResponse struct {
	Results struct {
		Bindings []map[string]struct {
			Value string `json:"value"`
		} `json:"bindings"`
	} `json:"results"`
}

// FetchDump runs the dump query and returns the statement sequence in result
// order.
func (c *APIClient) FetchDump(ctx context.Context) ([]Statement, error) {
	form := url.Values{}
	form.Set("query", dumpQuery)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/sparql-results+json")
	req.Header.Set("User-Agent", "guess-the-gm/1.0")

	log.Debug("Requesting dump from SPARQL endpoint", "endpoint", c.Endpoint)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sparql request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("sparql endpoint returned status %d: %s", resp.StatusCode, string(body))
	}

	var decoded sparqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDump, err)
	}

	statements := make([]Statement, 0, len(decoded.Results.Bindings))
	for _, binding := range decoded.Results.Bindings {
		stmt := Statement{
			PlayerLabel: binding["playerLabel"].Value,
			Predicate:   binding["wdLabel"].Value,
			Value:       binding["ps_Label"].Value,
		}
		if ql, ok := binding["wdpqLabel"]; ok {
			label := ql.Value
			stmt.QualifierLabel = &label
		}
		if qv, ok := binding["pq_Label"]; ok {
			value := qv.Value
			stmt.QualifierValue = &value
		}
		statements = append(statements, stmt)
	}

	log.Info("Fetched statement dump", "count", len(statements))
	return statements, nil
}

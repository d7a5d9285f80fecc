package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pawnstorm/guess-the-gm/internal/wikidata"
	"github.com/vmihailenco/msgpack/v5"
)

// Artifact is the durable form of one pipeline run: the full player
// collection plus enough metadata to trace which run produced it.
type Artifact struct {
	RunID       string                   `json:"run_id" msgpack:"run_id"`
	Source      string                   `json:"source" msgpack:"source"`
	GeneratedAt time.Time                `json:"generated_at" msgpack:"generated_at"`
	Players     []*wikidata.PlayerRecord `json:"players" msgpack:"players"`
}

// NewArtifact wraps a built catalog mapping into an artifact. Players are
// sorted by name so repeated runs on the same dump serialize identically.
func NewArtifact(runID, source string, players map[string]*wikidata.PlayerRecord) *Artifact {
	records := make([]*wikidata.PlayerRecord, 0, len(players))
	for _, p := range players {
		records = append(records, p)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})

	return &Artifact{
		RunID:       runID,
		Source:      source,
		GeneratedAt: time.Now().UTC(),
		Players:     records,
	}
}

// WriteArtifact serializes the artifact to path. The codec is picked by
// extension: ".json" writes the JSON contract document, anything else writes
// the compact MessagePack twin.
func WriteArtifact(path string, artifact *Artifact) error {
	var (
		data []byte
		err  error
	)
	if filepath.Ext(path) == ".json" {
		data, err = json.Marshal(artifact)
	} else {
		data, err = msgpack.Marshal(artifact)
	}
	if err != nil {
		return fmt.Errorf("failed to serialize catalog artifact: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write catalog artifact to %s: %w", path, err)
	}
	return nil
}

// LoadArtifact reads an artifact back, picking the codec the same way
// WriteArtifact does.
func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog artifact %s: %w", path, err)
	}

	var artifact Artifact
	if filepath.Ext(path) == ".json" {
		err = json.Unmarshal(data, &artifact)
	} else {
		err = msgpack.Unmarshal(data, &artifact)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode catalog artifact %s: %w", path, err)
	}
	return &artifact, nil
}

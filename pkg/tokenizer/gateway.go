package tokenizer

import (
	"context"
	"encoding/json"
	"io"
	"sync"
)

// Gateway stores the records of one segmented text. Its errors are
// returned to the caller unchanged.
type Gateway interface {
	SaveText(ctx context.Context, textID int64, sentences []SentenceRecord, items []TextItem) error
}

// JSONGateway writes records as JSON lines: every sentence, then every
// text item, each wrapped with its record type.
type JSONGateway struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewJSONGateway creates a gateway writing to w.
func NewJSONGateway(w io.Writer) *JSONGateway {
	return &JSONGateway{enc: json.NewEncoder(w)}
}

type jsonRecord struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

func (g *JSONGateway) SaveText(ctx context.Context, _ int64, sentences []SentenceRecord, items []TextItem) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, s := range sentences {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.enc.Encode(jsonRecord{Type: "sentence", Data: s}); err != nil {
			return err
		}
	}
	for _, it := range items {
		if err := g.enc.Encode(jsonRecord{Type: "item", Data: it}); err != nil {
			return err
		}
	}
	return nil
}

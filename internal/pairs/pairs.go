package pairs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/cognicore/entail/pkg/entail/prediction"
)

// LoadFromJSONL loads premise/hypothesis pairs, one JSON object per line.
// Malformed or incomplete lines are logged and skipped.
func LoadFromJSONL(path string) ([]prediction.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	var items []prediction.Request
	lines := strings.Split(string(data), "\n")

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var item prediction.Request
		if err := json.Unmarshal([]byte(line), &item); err != nil {
			log.Printf("Warning: skipping malformed JSON at line %d in %s: %v", i+1, path, err)
			continue
		}
		if strings.TrimSpace(item.Premise) == "" || strings.TrimSpace(item.Hypothesis) == "" {
			log.Printf("Warning: skipping incomplete pair at line %d in %s", i+1, path)
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("no valid pairs found in %s", path)
	}

	return items, nil
}

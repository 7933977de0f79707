// Package loading reads soil property result files from disk.
package loading

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/smaefr/soil-prediction-code/internal/observability"
	"github.com/smaefr/soil-prediction-code/internal/types"
)

// ReadResultSet loads a result set from a JSON file. It fails on any I/O
// problem, malformed JSON, or a document that is not a two-level object of
// property -> method -> score.
func ReadResultSet(path string) (*types.ResultSet, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	var rs types.ResultSet
	if err := json.Unmarshal(content, &rs); err != nil {
		return nil, &ParseError{Path: path, Cause: err}
	}

	return &rs, nil
}

// LoadOrEmpty reads a result set, substituting an empty set when the file is
// missing or unusable so one bad input cannot sink a whole run. The outcome is
// reported through the printer: a warning for a missing file, an error for a
// broken one, a success line with the property count otherwise.
func LoadOrEmpty(path string, printer *observability.Printer) *types.ResultSet {
	if _, err := os.Stat(path); err != nil {
		printer.Warnf("File '%s' not found", path)
		return types.NewResultSet()
	}

	rs, err := ReadResultSet(path)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			printer.Errorf("Error reading JSON from '%s': %v", path, parseErr.Cause)
		} else {
			printer.Errorf("Error loading '%s': %v", path, err)
		}
		return types.NewResultSet()
	}

	printer.Successf("Successfully loaded '%s' with %d properties", path, rs.Len())
	return rs
}

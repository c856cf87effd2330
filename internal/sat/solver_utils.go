package sat

import (
	"encoding/json"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// ConfigPath points to an optional json file mapping solver names to
// executable paths. When the file is missing the bare solver name is used and
// resolved through $PATH.
var ConfigPath = "config.json"

// parseSolution extracts a SATSolution from the "v"-lines of a DIMACS
// solver's output, dropping the terminating 0. Returns nil when no value
// lines are present.
func parseSolution(solverOutput string) SATSolution {
	valueLines := lo.Filter(strings.Split(solverOutput, "\n"), func(line string, _ int) bool {
		return len(line) > 0 && line[0] == 'v'
	})
	if len(valueLines) == 0 {
		return nil
	}

	solution := lo.FilterMap(
		lo.Reduce(valueLines, func(fields []string, line string, _ int) []string {
			return append(fields, strings.Fields(line[1:])...)
		}, []string{}),
		func(valueStr string, _ int) (int64, bool) {
			value, err := strconv.ParseInt(valueStr, 10, 64)
			if err != nil {
				log.Panicf("invalid literal in solver output: %v", err)
			}
			return value, value != 0
		},
	)
	return solution
}

func executablePath(solver string) string {
	bytes, err := os.ReadFile(ConfigPath)
	if err != nil {
		return solver
	}

	var configJson map[string]any
	if err := json.Unmarshal(bytes, &configJson); err != nil {
		log.Fatalf("cannot read %v file: %v", ConfigPath, err)
	}

	var config map[string]string
	mapstructure.Decode(configJson, &config)

	if path, ok := config[solver]; ok {
		return path
	}
	return solver
}

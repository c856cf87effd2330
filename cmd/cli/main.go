package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/limaJavier/numberlink/internal/puzzle"
	"github.com/limaJavier/numberlink/internal/sat"
)

var (
	validSolvers = []string{"gini", "gophersat", "kissat", "cadical", "cryptominisat"}
	solvers      = map[string]func() sat.SATSolver{
		"gini":          sat.NewGiniSolver,
		"gophersat":     sat.NewGophersatSolver,
		"kissat":        sat.NewKissatSolver,
		"cadical":       sat.NewCadicalSolver,
		"cryptominisat": sat.NewCryptominisatSolver,
	}
)

func main() {
	// Define arguments
	solverPtr := flag.String("solver", "gini", "SAT-Solver to use. Allowed values are: \"gini\", \"gophersat\", \"kissat\", \"cadical\", \"cryptominisat\", where \"gini\" is the default")
	filePathPtr := flag.String("file", "", "Path to the puzzle file; if empty, the puzzle is read from the Standard Input")
	outFilePathPtr := flag.String("out", "", "Path to the file where the solved grid will be written; if empty, it'll be written into the Standard Output")
	flag.Parse()
	solverStr := strings.ToLower(*solverPtr)
	filePath := *filePathPtr
	outFile := *outFilePathPtr

	// Validate arguments
	if !slices.Contains(validSolvers, solverStr) {
		log.Fatalf("%v is not a valid solver", solverStr)
	}

	// Extract input
	var reader io.Reader = os.Stdin
	if filePath != "" {
		file, err := os.Open(filePath)
		if err != nil {
			log.Fatalf("cannot open puzzle file: %v", err)
		}
		defer file.Close()
		reader = file
	}

	instance, err := puzzle.Parse(reader)
	if err != nil {
		log.Fatalf("cannot parse puzzle: %v", err)
	}

	// Solve
	solver := solvers[solverStr]()
	solution, err := instance.Solve(solver)
	if err != nil {
		log.Fatalf("an error occurred during solving: %v", err)
	} else if solution == nil {
		fmt.Println("No unique spanning solution.")
		os.Exit(20)
	}

	// Verify outFile is empty, if so then write the grid to the Standard Output
	rendered := solution.Render()
	if outFile == "" {
		fmt.Print(rendered)
	} else if err := os.WriteFile(outFile, []byte(rendered), 0666); err != nil {
		log.Fatalf("an error occurred while writing to the output file: %v", err)
	}
}

package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/khalid-nowaf/multitree/pkg/tree"
)

type ExportCmd struct {
	File   string `arg:"" type:"existingfile" help:"Tree file in JSON or CSV format"`
	Order  string `help:"Traversal order" enum:"dfs,bfs" default:"dfs"`
	Format string `help:"Output format" enum:"json,csv" default:"json"`
	Output string `help:"Output file path without extension" default:"traversal"`
}

type Stats struct {
	Visited int
}

type Writer interface {
	Write(t tree.Tree[string], path string) error
}

// Run executes the export command.
func (cmd *ExportCmd) Run(ctx *Context) error {
	t, err := ParseFile(cmd.File)
	if err != nil {
		return err
	}

	stats := &Stats{}
	var writer Writer
	if cmd.Format == "csv" {
		writer = CsvWriter{Order: cmd.Order, Stats: stats}
	} else {
		writer = JsonWriter{Order: cmd.Order, Stats: stats}
	}

	path := cmd.Output + "." + cmd.Format
	fmt.Fprintln(ctx.Out, "Starting to write traversal...")
	if err := writer.Write(t, path); err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "Writing complete, %d values in %s order to %s\n", stats.Visited, cmd.Order, path)
	return nil
}

type JsonWriter struct {
	Order string
	Stats *Stats
}

// Write emits the traversal as a JSON array of values.
func (w JsonWriter) Write(t tree.Tree[string], path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	if _, err = file.Write([]byte("[")); err != nil {
		return err
	}
	for i, value := range traversalValues(t, w.Order) {
		if i > 0 {
			if _, err = file.Write([]byte(",")); err != nil {
				return err
			}
		}
		if err = encoder.Encode(value); err != nil {
			return err
		}
		w.Stats.Visited++
	}
	if _, err = file.Write([]byte("]")); err != nil {
		return err
	}
	return nil
}

type CsvWriter struct {
	Order string
	Stats *Stats
}

// Write emits the traversal as index,value CSV rows.
func (w CsvWriter) Write(t tree.Tree[string], path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	// Create a CSV writer
	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"index", "value"}); err != nil {
		return err
	}
	for i, value := range traversalValues(t, w.Order) {
		if err := writer.Write([]string{strconv.Itoa(i), value}); err != nil {
			return err
		}
		w.Stats.Visited++
	}
	return nil
}

func traversalValues(t tree.Tree[string], order string) []string {
	values := []string{}
	visit := func(v string) { values = append(values, v) }
	if order == "bfs" {
		tree.BFS(t, visit)
	} else {
		tree.DFS(t, visit)
	}
	return values
}

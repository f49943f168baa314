package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/khalid-nowaf/multitree/pkg/tree"
)

// jsonNode is the nested document form of a tree: one object per node, with
// JSON null standing in for a Leaf.
type jsonNode struct {
	Value    string      `json:"value"`
	Children []*jsonNode `json:"children"`
}

func (n *jsonNode) tree() tree.Tree[string] {
	if n == nil {
		return tree.Leaf[string]()
	}
	kids := make([]tree.Tree[string], len(n.Children))
	for i, child := range n.Children {
		kids[i] = child.tree()
	}
	return tree.Node(n.Value, kids)
}

type Record map[string]string

// ParseFile reads a tree from a JSON or CSV file, dispatching on the file
// extension.
func ParseFile(path string) (tree.Tree[string], error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return parseJson(path)
	case ".csv":
		return parseCsv(path)
	default:
		return nil, fmt.Errorf("unsupported tree file extension %q, want .json or .csv", ext)
	}
}

func parseJson(filepath string) (tree.Tree[string], error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	// Create a JSON Decoder
	decoder := json.NewDecoder(file)

	var doc *jsonNode
	if err := decoder.Decode(&doc); err != nil {
		return nil, err
	}

	return doc.tree(), nil
}

// parseCsv reads flat id/parent/value records and folds them back into a
// tree. The record with an empty parent column is the root; sibling order is
// record order.
func parseCsv(filepath string) (tree.Tree[string], error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	// Create a CSV Reader
	reader := csv.NewReader(file)

	// Read the header to build the key mapping (assuming first line is the header)
	headers, err := reader.Read()
	if err != nil {
		return nil, err
	}

	// Read each record from the CSV
	records := []Record{}
	for {
		recordData, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		record := make(Record)
		for i, value := range recordData {
			record[headers[i]] = value
		}
		records = append(records, record)
	}

	return foldRecords(records)
}

func foldRecords(records []Record) (tree.Tree[string], error) {
	byID := map[string]Record{}
	children := map[string][]Record{}
	rootID := ""
	seenRoot := false

	for _, record := range records {
		id := record["id"]
		if id == "" {
			return nil, fmt.Errorf("record with empty id column: %v", record)
		}
		if _, dup := byID[id]; dup {
			return nil, fmt.Errorf("duplicate record id %q", id)
		}
		byID[id] = record

		if record["parent"] == "" {
			if seenRoot {
				return nil, fmt.Errorf("more than one root record, second one has id %q", id)
			}
			rootID = id
			seenRoot = true
		} else {
			children[record["parent"]] = append(children[record["parent"]], record)
		}
	}

	if !seenRoot {
		return nil, fmt.Errorf("no root record, expected exactly one row with an empty parent column")
	}

	var build func(id string) tree.Tree[string]
	build = func(id string) tree.Tree[string] {
		kids := make([]tree.Tree[string], 0, len(children[id]))
		for _, child := range children[id] {
			kids = append(kids, build(child["id"]))
		}
		return tree.Node(byID[id]["value"], kids)
	}

	return build(rootID), nil
}

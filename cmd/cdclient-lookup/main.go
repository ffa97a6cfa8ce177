// Package main implements the cdclient-lookup tool.
// It opens a local client database file and runs one derived query against
// it, printing the result as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Xiphoseer/paradox-typed-db/pkg/fdb"
	"github.com/Xiphoseer/paradox-typed-db/pkg/typed"
)

func main() {
	var (
		dbPath string
		query  string
		id     int
	)

	flag.StringVar(&dbPath, "db", "cdclient.fdb", "Path to the client database file")
	flag.StringVar(&query, "query", "", "Query to run: icon, mission, tasks, object, render, components, skill")
	flag.IntVar(&id, "id", 0, "Id to look up")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "cdclient-lookup - Run one derived query against a client database\n\n")
		fmt.Fprintf(os.Stderr, "Usage: cdclient-lookup --db cdclient.fdb --query mission --id 1727\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if query == "" {
		flag.Usage()
		os.Exit(2)
	}

	store, err := fdb.Open(dbPath)
	if err != nil {
		log.Fatalf("Failed to read database file: %v", err)
	}

	db, err := typed.New(store)
	if err != nil {
		log.Fatalf("Failed to bind database schema: %v", err)
	}

	result, err := run(db, query, int32(id))
	if err != nil {
		log.Fatalf("%v", err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
	fmt.Println(string(out))
}

// run dispatches one query by name.
func run(db *typed.Database, query string, id int32) (interface{}, error) {
	switch query {
	case "icon":
		path, ok := db.GetIconPath(id)
		if !ok {
			return nil, fmt.Errorf("icon %d not found", id)
		}
		return map[string]string{"path": path.Decode()}, nil
	case "mission":
		mission, ok := db.GetMissionData(id)
		if !ok {
			return nil, fmt.Errorf("mission %d not found", id)
		}
		return mission, nil
	case "tasks":
		return db.GetMissionTasks(id), nil
	case "object":
		title, desc, ok := db.GetObjectNameDesc(id)
		if !ok {
			return nil, fmt.Errorf("object %d not found", id)
		}
		return map[string]string{"title": title, "description": desc}, nil
	case "render":
		img, ok := db.GetRenderImage(id)
		if !ok {
			return nil, fmt.Errorf("render component %d has no icon asset", id)
		}
		return map[string]string{"image": img.Decode()}, nil
	case "components":
		return db.GetComponents(id), nil
	case "skill":
		skill, ok := db.Skills.Get(id)
		if !ok {
			return nil, fmt.Errorf("skill %d not found", id)
		}
		return skill.Record(), nil
	default:
		return nil, fmt.Errorf("unknown query %q", query)
	}
}

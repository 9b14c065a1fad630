package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

// Regenerate with: go run db/ent/generate.go (from the repo root).

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/optipix/imagesync/gen/ent",
			Schema:  "github.com/optipix/imagesync/db/ent/schema",
		},
		// row-level locking for the ledger's release transaction
		entc.FeatureNames("sql/lock"),
	)
	if err != nil {
		log.Fatal(err)
	}
}

// testgen generates a client for a small data model and prints the head of
// the result.
// Run: go run ./compiler/gen/cmd/testgen
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/sauhaardac/prisma-client-go/compiler/gen"
	"github.com/sauhaardac/prisma-client-go/compiler/gen/golang"
	"github.com/sauhaardac/prisma-client-go/schema"
)

func main() {
	outDir, err := os.MkdirTemp("", "prisma-client-go-testgen-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create temp dir: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Output directory: %s\n", outDir)

	str := func(name string, a schema.Arity) *schema.Field {
		return &schema.Field{Name: name, Kind: schema.KindScalar, Arity: a, Type: schema.TypeString}
	}
	w := schema.New(
		[]*schema.Entity{
			{
				Name: "User",
				Fields: []*schema.Field{
					{Name: "id", Kind: schema.KindScalar, Type: schema.TypeString, IsPrimaryKey: true, HasDefault: true},
					{Name: "email", Kind: schema.KindScalar, Type: schema.TypeString, IsUnique: true},
					str("name", schema.Optional),
					{Name: "address", Kind: schema.KindComposite, Arity: schema.Optional, Type: "Address"},
					{Name: "cars", Kind: schema.KindRelation, Arity: schema.List, Type: "Car"},
				},
			},
			{
				Name: "Car",
				Fields: []*schema.Field{
					{Name: "id", Kind: schema.KindScalar, Type: schema.TypeInt, IsPrimaryKey: true},
					str("model", schema.Required),
					{Name: "registeredAt", Kind: schema.KindScalar, Type: schema.TypeDateTime},
					{Name: "owner", Kind: schema.KindRelation, Arity: schema.Optional, Type: "User"},
				},
			},
		},
		[]*schema.Composite{
			{Name: "Address", Fields: []*schema.Field{str("street", schema.Required), str("city", schema.Optional)}},
		},
		nil,
	)

	out := filepath.Join(outDir, "db", "db_gen.go")
	config, err := gen.NewConfig(
		gen.WithOutput(out),
		gen.WithEmitter(golang.New()),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create config: %v\n", err)
		os.Exit(1)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	if err := gen.NewGenerator(config, log).Generate(context.Background(), w); err != nil {
		fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
		os.Exit(1)
	}

	content, err := os.ReadFile(out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read output: %v\n", err)
		os.Exit(1)
	}
	lines := strings.Split(string(content), "\n")
	if len(lines) > 80 {
		lines = append(lines[:80], "... (truncated)")
	}
	fmt.Println("\n--- Sample: db_gen.go ---")
	fmt.Println(strings.Join(lines, "\n"))
}

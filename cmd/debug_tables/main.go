package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"reflect"

	"chr-catalog/core/config"
	"chr-catalog/core/database"
	"chr-catalog/core/dbc"
	"chr-catalog/core/storage"

	"gorm.io/gorm"
)

// Dumps raw rows of one dataset table from the configured source. Useful to
// verify a fresh export before the catalog refuses to build from it.
func main() {
	var table string
	var limit int
	flag.StringVar(&table, "table", dbc.TableChrModel, "dataset table to dump")
	flag.IntVar(&limit, "limit", 20, "maximum rows to print (0 = all)")
	flag.Parse()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		log.Fatal(err)
	}

	var db *gorm.DB
	if conn, err := database.Connect(cfg.Database); err == nil {
		db = conn
	}

	var src dbc.Source
	switch cfg.Dataset.Source {
	case dbc.SourceDatabase:
		if db == nil {
			log.Fatal("dataset source database requires a mirror connection")
		}
		src = dbc.NewDatabaseSource(db)
	default:
		src = dbc.NewStorageSource(client, cfg.Storage.Bucket, cfg.Dataset.Prefix)
	}

	ctx := context.Background()

	ok, err := src.HasTable(ctx, table)
	if err != nil {
		log.Fatal(err)
	}
	if !ok {
		fmt.Printf("Table %s not present in %s source\n", table, src.Name())
		os.Exit(1)
	}

	out, ok := dbc.NewRowSlice(table)
	if !ok {
		log.Fatalf("unknown table %s", table)
	}

	if err := src.Load(ctx, table, out); err != nil {
		log.Fatal(err)
	}

	rows := reflect.ValueOf(out).Elem()
	fmt.Printf("=== %s (%d rows, source %s) ===\n", table, rows.Len(), src.Name())

	for i := 0; i < rows.Len(); i++ {
		if limit > 0 && i >= limit {
			fmt.Printf("... %d more rows\n", rows.Len()-i)
			break
		}
		data, _ := json.Marshal(rows.Index(i).Interface())
		fmt.Println(string(data))
	}
}

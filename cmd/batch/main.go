package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"mailtriage/config"
	"mailtriage/internal/backend"
	"mailtriage/internal/model"
	"mailtriage/internal/oracle"
	"mailtriage/internal/service"
	"mailtriage/pkg/logger"
)

// Batch runner: reads a JSON file of raw emails, runs the pipeline with
// log-only backends and prints a processing summary.
func main() {
	file := flag.String("file", "testdata/sample_emails.json", "path to a JSON array of email records")
	flag.Parse()

	cfg := config.Load()

	logger := logger.NewLogger()
	defer logger.Sync()

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("failed to read %s: %v", *file, err)
	}

	var batch []model.RawEmail
	if err := json.Unmarshal(data, &batch); err != nil {
		log.Fatalf("failed to parse %s: %v", *file, err)
	}

	oracleClient := oracle.NewClient(cfg.Oracle)
	classifier := service.NewClassifier(oracleClient, nil, logger)
	dispatcher := service.NewDispatcher(
		backend.NewLogMessenger(logger),
		backend.NewLogTicketing(logger),
		backend.NewLogFeedback(logger),
		logger,
	)
	pipeline := service.NewPipeline(classifier, dispatcher, logger)

	results := pipeline.ProcessBatch(context.Background(), batch)

	fmt.Println("\nProcessing Summary:")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "EMAIL_ID\tSUCCESS\tCLASSIFICATION\tRESPONSE_SENT\tERROR")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%v\t%s\t%v\t%s\n",
			r.EmailID, r.Success, r.Classification, r.ResponseSent, r.Error)
	}
	w.Flush()
}

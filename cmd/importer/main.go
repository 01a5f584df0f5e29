package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"taxi-fare-api/internal/config"
	"taxi-fare-api/internal/logger"
	"taxi-fare-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

func main() {
	file := flag.String("file", "", "Path to the station CSV file to import (name,latitude,longitude)")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Error: --file flag is required")
		os.Exit(1)
	}

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	if err := logger.Setup(cfg.LogLevel, cfg.LogFormat, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("cannot set up logger")
	}

	log.Info().Str("file", *file).Msg("starting import")

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open file")
	}
	defer f.Close()

	stations, err := parseCSV(f)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot parse CSV")
	}

	log.Info().Int("records", len(stations)).Msg("parsed stations")

	ctx := context.Background()

	// Connect to DB
	conn, err := pgx.Connect(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close(ctx)

	if err := createTableIfNotExists(ctx, conn); err != nil {
		log.Fatal().Err(err).Msg("cannot create stations table")
	}

	inserted, err := insertStations(ctx, conn, stations)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot insert stations")
	}

	if err := verifyImport(ctx, conn, inserted); err != nil {
		log.Fatal().Err(err).Msg("import verification failed")
	}

	log.Info().Int64("records", inserted).Msg("import finished")
}

// parseCSV reads name,latitude,longitude rows after a header line.
func parseCSV(r io.Reader) ([]models.Station, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var stations []models.Station
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		if len(record) < 3 {
			return nil, fmt.Errorf("invalid record length: %d, expected at least 3 columns", len(record))
		}

		name := strings.TrimSpace(record[0])
		if name == "" {
			return nil, errors.New("station name is empty")
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil || lat < -90 || lat > 90 {
			return nil, fmt.Errorf("invalid latitude for %s: %q", name, record[1])
		}

		lon, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil || lon < -180 || lon > 180 {
			return nil, fmt.Errorf("invalid longitude for %s: %q", name, record[2])
		}

		stations = append(stations, models.Station{Name: name, Latitude: lat, Longitude: lon})
	}

	return stations, nil
}

func createTableIfNotExists(ctx context.Context, conn *pgx.Conn) error {
	query := `
	CREATE TABLE IF NOT EXISTS stations (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL
	);
	CREATE INDEX IF NOT EXISTS stations_name_idx ON stations (name);
	`
	_, err := conn.Exec(ctx, query)
	return err
}

func insertStations(ctx context.Context, conn *pgx.Conn, stations []models.Station) (int64, error) {
	// Use CopyFrom for bulk insert
	return conn.CopyFrom(
		ctx,
		pgx.Identifier{"stations"},
		[]string{"name", "latitude", "longitude"},
		pgx.CopyFromSlice(len(stations), func(i int) ([]any, error) {
			s := stations[i]
			return []any{s.Name, s.Latitude, s.Longitude}, nil
		}),
	)
}

// verifyImport checks that the table holds at least the inserted rows.
func verifyImport(ctx context.Context, conn *pgx.Conn, inserted int64) error {
	var count int64
	if err := conn.QueryRow(ctx, "SELECT COUNT(*) FROM stations").Scan(&count); err != nil {
		return fmt.Errorf("failed to count records: %w", err)
	}

	if count < inserted {
		return fmt.Errorf("record count mismatch: inserted %d, table has %d", inserted, count)
	}

	var name string
	if err := conn.QueryRow(ctx, "SELECT name FROM stations ORDER BY id LIMIT 1").Scan(&name); err != nil {
		return fmt.Errorf("failed to check sample station: %w", err)
	}

	log.Info().Int64("total", count).Str("sample", name).Msg("verified stations table")
	return nil
}

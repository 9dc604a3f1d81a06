package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	domain "github.com/bryanwahyu/fasal-drishti/internal/domain/diagnosis"
)

type ScanRepository struct {
	db *sql.DB
}

func NewScanRepository(db *sql.DB) *ScanRepository {
	return &ScanRepository{db: db}
}

const scanColumns = `scan_id, requester_id, created_at, language, crop, disease_key, disease_name,
       severity, confidence, is_healthy, source_engine, image_url, audio_url,
       translation_degraded, voice_degraded, latency_ms, result_json`

// Save insert ScanRecord. Records are immutable: insert-only, no upsert.
func (r *ScanRepository) Save(ctx context.Context, rec *domain.ScanRecord) error {
	const q = `
INSERT INTO crop_scans
(scan_id, requester_id, created_at, language, crop, disease_key, disease_name,
 severity, confidence, is_healthy, source_engine, image_url, audio_url,
 translation_degraded, voice_degraded, latency_ms, result_json)
VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?);
`
	resultJSON, err := json.Marshal(rec.Diagnosis)
	if err != nil {
		return fmt.Errorf("marshaling diagnosis: %w", err)
	}

	created := rec.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	_, err = r.db.ExecContext(ctx, q,
		rec.ID,
		stringOrDash(rec.RequesterID),
		created,
		stringOrDash(rec.Language),
		rec.Diagnosis.Crop,
		rec.Diagnosis.DiseaseKey,
		rec.Diagnosis.DiseaseName,
		rec.Diagnosis.Severity,
		rec.Diagnosis.Confidence,
		rec.Diagnosis.IsHealthy,
		rec.Diagnosis.SourceEngine,
		rec.ImageURL,
		rec.AudioURL,
		rec.TranslationDegraded,
		rec.VoiceDegraded,
		rec.PipelineLatencyMS,
		resultJSON,
	)
	return err
}

// Get by ID
func (r *ScanRepository) Get(ctx context.Context, id domain.ScanID) (*domain.ScanRecord, error) {
	q := `SELECT ` + scanColumns + ` FROM crop_scans WHERE scan_id=? LIMIT 1;`
	return scanRow(r.db.QueryRowContext(ctx, q, id))
}

// Latest scans across all requesters
func (r *ScanRepository) Latest(ctx context.Context, limit int) ([]*domain.ScanRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	q := `SELECT ` + scanColumns + ` FROM crop_scans ORDER BY created_at DESC LIMIT ?;`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRows(rows)
}

// ByRequester riwayat scan satu pengguna (secondary index requester+created_at)
func (r *ScanRepository) ByRequester(ctx context.Context, requester string, limit int) ([]*domain.ScanRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	q := `SELECT ` + scanColumns + ` FROM crop_scans WHERE requester_id=? ORDER BY created_at DESC LIMIT ?;`
	rows, err := r.db.QueryContext(ctx, q, requester, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRows(rows)
}

// Summary rekap N hari terakhir untuk dashboard
func (r *ScanRepository) Summary(ctx context.Context, sinceDays int) (*domain.SummaryStats, error) {
	if sinceDays <= 0 {
		sinceDays = 7
	}
	cut := time.Now().AddDate(0, 0, -sinceDays)

	stats := &domain.SummaryStats{
		ByCrop:    map[string]int{},
		ByDisease: map[string]int{},
		ByEngine:  map[string]int{},
	}

	const totals = `
SELECT COUNT(*),
       COALESCE(SUM(CASE WHEN is_healthy THEN 1 ELSE 0 END),0)
FROM crop_scans
WHERE created_at >= ?;
`
	if err := r.db.QueryRowContext(ctx, totals, cut).Scan(&stats.TotalScans, &stats.Healthy); err != nil {
		return nil, err
	}
	stats.Diseased = stats.TotalScans - stats.Healthy

	for col, dest := range map[string]map[string]int{
		"crop":          stats.ByCrop,
		"disease_key":   stats.ByDisease,
		"source_engine": stats.ByEngine,
	} {
		q := fmt.Sprintf(`SELECT %s, COUNT(*) FROM crop_scans WHERE created_at >= ? GROUP BY %s;`, col, col)
		rows, err := r.db.QueryContext(ctx, q, cut)
		if err != nil {
			return nil, err
		}
		for rows.Next() {
			var key string
			var n int
			if err := rows.Scan(&key, &n); err != nil {
				rows.Close()
				return nil, err
			}
			dest[key] = n
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, err
		}
		rows.Close()
	}

	return stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRow(row rowScanner) (*domain.ScanRecord, error) {
	var rec domain.ScanRecord
	var crop, diseaseKey, diseaseName, severity, engine string
	var confidence float64
	var isHealthy bool
	var resultJSON []byte

	if err := row.Scan(
		&rec.ID, &rec.RequesterID, &rec.CreatedAt, &rec.Language,
		&crop, &diseaseKey, &diseaseName, &severity, &confidence, &isHealthy, &engine,
		&rec.ImageURL, &rec.AudioURL,
		&rec.TranslationDegraded, &rec.VoiceDegraded, &rec.PipelineLatencyMS,
		&resultJSON,
	); err != nil {
		return nil, err
	}

	// result_json carries the full diagnosis; the flat columns exist for queries
	if len(resultJSON) > 0 {
		if err := json.Unmarshal(resultJSON, &rec.Diagnosis); err != nil {
			return nil, fmt.Errorf("unmarshaling diagnosis for scan %s: %w", rec.ID, err)
		}
	} else {
		rec.Diagnosis = domain.Diagnosis{
			Crop:         crop,
			DiseaseKey:   diseaseKey,
			DiseaseName:  diseaseName,
			Severity:     domain.Severity(severity),
			Confidence:   confidence,
			IsHealthy:    isHealthy,
			SourceEngine: domain.SourceEngine(engine),
		}
	}
	return &rec, nil
}

func scanRows(rows *sql.Rows) ([]*domain.ScanRecord, error) {
	var out []*domain.ScanRecord
	for rows.Next() {
		rec, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

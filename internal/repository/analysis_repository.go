package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/1234-ad/intelligent-content-orchestrator/internal/domain"
)

// PostgresAnalysisRepository implements AnalysisRepository using PostgreSQL.
// One row per content id; re-analysis replaces the previous result.
type PostgresAnalysisRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAnalysisRepository creates a new PostgresAnalysisRepository.
func NewPostgresAnalysisRepository(pool *pgxpool.Pool) *PostgresAnalysisRepository {
	return &PostgresAnalysisRepository{pool: pool}
}

// Save upserts the analysis result for a content id.
func (r *PostgresAnalysisRepository) Save(ctx context.Context, result *domain.AnalysisResult) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO analysis_results
			(content_id, sentiment, emotions, entities, topics, language, word_count, readability, keywords, analyzed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (content_id) DO UPDATE SET
			sentiment = EXCLUDED.sentiment,
			emotions = EXCLUDED.emotions,
			entities = EXCLUDED.entities,
			topics = EXCLUDED.topics,
			language = EXCLUDED.language,
			word_count = EXCLUDED.word_count,
			readability = EXCLUDED.readability,
			keywords = EXCLUDED.keywords,
			analyzed_at = EXCLUDED.analyzed_at
	`,
		result.ContentID, result.Sentiment, result.Emotions, result.Entities, result.Topics,
		result.Language, result.WordCount, result.Readability, result.Keywords, result.AnalyzedAt,
	)
	if err != nil {
		return fmt.Errorf("save analysis for %s: %w", result.ContentID, err)
	}
	return nil
}

// Get returns the stored result, or ErrNotFound when none exists yet.
func (r *PostgresAnalysisRepository) Get(ctx context.Context, contentID string) (*domain.AnalysisResult, error) {
	var result domain.AnalysisResult
	err := r.pool.QueryRow(ctx, `
		SELECT content_id, sentiment, emotions, entities, topics, language, word_count, readability, keywords, analyzed_at
		FROM analysis_results
		WHERE content_id = $1
	`, contentID).Scan(
		&result.ContentID, &result.Sentiment, &result.Emotions, &result.Entities, &result.Topics,
		&result.Language, &result.WordCount, &result.Readability, &result.Keywords, &result.AnalyzedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get analysis for %s: %w", contentID, err)
	}
	return &result, nil
}

// CineMatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tomtom215/cinematch/internal/models"
)

var (
	// ErrMissingColumn is returned when a dataset file lacks a required column.
	ErrMissingColumn = errors.New("required column missing")

	// ErrEmptyCatalog is returned when the movie file yields no usable rows.
	ErrEmptyCatalog = errors.New("movie catalog is empty")
)

// noGenres is the MovieLens placeholder for an empty genre list.
const noGenres = "(no genres listed)"

// LoadMovies reads the catalog CSV at path.
//
// Required columns: movieId, title. Optional: year, genres (pipe-separated).
// Without a year column the year is split off a trailing "(YYYY)" in the
// title. Rows with an unparseable id or blank title are skipped.
func (db *DB) LoadMovies(ctx context.Context, path string) ([]models.Item, error) {
	cols, err := db.csvColumns(ctx, path)
	if err != nil {
		return nil, err
	}

	idCol, err := requireColumn(cols, path, "movieId")
	if err != nil {
		return nil, err
	}
	titleCol, err := requireColumn(cols, path, "title")
	if err != nil {
		return nil, err
	}

	yearExpr := "NULL"
	yearCol, hasYear := cols["year"]
	if hasYear {
		yearExpr = fmt.Sprintf("CAST(TRY_CAST(%s AS BIGINT) AS VARCHAR)", quoteIdent(yearCol))
	}
	genresExpr := "NULL"
	if genresCol, ok := cols["genres"]; ok {
		genresExpr = quoteIdent(genresCol)
	}

	query := fmt.Sprintf(`
		SELECT id, title, year, genres FROM (
			SELECT
				TRY_CAST(%s AS BIGINT) AS id,
				TRIM(%s) AS title,
				%s AS year,
				%s AS genres
			FROM %s
		)
		WHERE id IS NOT NULL AND title IS NOT NULL AND title <> ''`,
		quoteIdent(idCol), quoteIdent(titleCol), yearExpr, genresExpr, csvSource(path))

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read movies from %s: %w", path, err)
	}
	defer closeWithLog(rows, "movie rows")

	var items []models.Item
	for rows.Next() {
		var (
			id     int64
			title  string
			year   sql.NullString
			genres sql.NullString
		)
		if err := rows.Scan(&id, &title, &year, &genres); err != nil {
			return nil, fmt.Errorf("failed to scan movie row: %w", err)
		}

		item := models.Item{ID: int(id), Title: title}
		if hasYear {
			item.Year = year.String
		} else {
			item.Title, item.Year = models.SplitTitleYear(title)
		}
		item.Genres = splitGenres(genres.String)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movie rows: %w", err)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyCatalog)
	}
	return items, nil
}

// LoadRatings reads the rating CSV at path in file order.
//
// Required columns: userId, movieId, rating. Any other column (timestamp)
// is ignored. Rows whose fields do not parse are skipped.
func (db *DB) LoadRatings(ctx context.Context, path string) ([]models.Rating, error) {
	cols, err := db.csvColumns(ctx, path)
	if err != nil {
		return nil, err
	}

	userCol, err := requireColumn(cols, path, "userId")
	if err != nil {
		return nil, err
	}
	itemCol, err := requireColumn(cols, path, "movieId")
	if err != nil {
		return nil, err
	}
	ratingCol, err := requireColumn(cols, path, "rating")
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT user_id, item_id, rating FROM (
			SELECT
				TRY_CAST(%s AS BIGINT) AS user_id,
				TRY_CAST(%s AS BIGINT) AS item_id,
				TRY_CAST(%s AS DOUBLE) AS rating
			FROM %s
		)
		WHERE user_id IS NOT NULL AND item_id IS NOT NULL AND rating IS NOT NULL`,
		quoteIdent(userCol), quoteIdent(itemCol), quoteIdent(ratingCol), csvSource(path))

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read ratings from %s: %w", path, err)
	}
	defer closeWithLog(rows, "rating rows")

	var ratings []models.Rating
	for rows.Next() {
		var (
			userID, itemID int64
			rating         float64
		)
		if err := rows.Scan(&userID, &itemID, &rating); err != nil {
			return nil, fmt.Errorf("failed to scan rating row: %w", err)
		}
		ratings = append(ratings, models.Rating{UserID: int(userID), ItemID: int(itemID), Rating: rating})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rating rows: %w", err)
	}
	return ratings, nil
}

// csvColumns returns the header of the CSV at path keyed by lowercase name.
func (db *DB) csvColumns(ctx context.Context, path string) (map[string]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("dataset file %s: %w", path, err)
	}

	rows, err := db.conn.QueryContext(ctx, "SELECT * FROM "+csvSource(path)+" LIMIT 0")
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	defer closeWithLog(rows, "header rows")

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", path, err)
	}

	cols := make(map[string]string, len(names))
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, dup := cols[key]; !dup {
			cols[key] = name
		}
	}
	return cols, nil
}

// requireColumn resolves a case-insensitive column name.
func requireColumn(cols map[string]string, path, name string) (string, error) {
	if col, ok := cols[strings.ToLower(name)]; ok {
		return col, nil
	}
	return "", fmt.Errorf("%s: %w: %s", path, ErrMissingColumn, name)
}

// csvSource builds a read_csv_auto table function call for path.
// Every column is read as VARCHAR and cast explicitly by the caller.
func csvSource(path string) string {
	return fmt.Sprintf("read_csv_auto('%s', header=true, all_varchar=true)", strings.ReplaceAll(path, "'", "''"))
}

// quoteIdent quotes a DuckDB identifier.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// splitGenres splits a pipe-separated genre list.
func splitGenres(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == noGenres {
		return nil
	}

	parts := strings.Split(raw, "|")
	genres := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			genres = append(genres, p)
		}
	}
	if len(genres) == 0 {
		return nil
	}
	return genres
}

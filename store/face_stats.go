// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/danielhkuo/nicer-face/models"
)

// FaceStats returns every stats row in face_id order.
func (s *Store) FaceStats(ctx context.Context) ([]models.FaceStat, error) {
	return s.queryFaceStats(ctx, `
		SELECT face_id, times_shown, times_selected
		FROM face_stats
		ORDER BY face_id
	`)
}

// RankedFaceStats orders faces by selection rate, highest first. Unshown
// faces rate 0 and fall to the bottom with the never-picked ones.
func (s *Store) RankedFaceStats(ctx context.Context) ([]models.FaceStat, error) {
	return s.queryFaceStats(ctx, `
		SELECT face_id, times_shown, times_selected
		FROM face_stats
		ORDER BY
			CASE WHEN times_shown > 0
				THEN CAST(times_selected AS REAL) / times_shown
				ELSE 0
			END DESC,
			face_id ASC
	`)
}

func (s *Store) queryFaceStats(ctx context.Context, query string) ([]models.FaceStat, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query face stats: %w", err)
	}
	defer rows.Close()

	stats := []models.FaceStat{}
	for rows.Next() {
		var fs models.FaceStat
		if err := rows.Scan(&fs.FaceID, &fs.TimesShown, &fs.TimesSelected); err != nil {
			return nil, fmt.Errorf("failed to scan face stats: %w", err)
		}
		stats = append(stats, fs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate face stats: %w", err)
	}
	return stats, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/blood-press-log/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildSelectReadingsQuery_SQLContainsParts(t *testing.T) {
	filter := models.ReadingFilter{UserID: 42, Page: 1, Limit: 10}

	query, args, err := buildSelectReadingsQuery(filter)
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 1)
	require.Equal(t, int64(42), args[0])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from blood")
	require.Contains(t, q, "where")
	require.Contains(t, q, "user_id")
	require.Contains(t, q, "order by measured_at desc, id desc")
	require.Contains(t, q, "limit 10")
	require.Contains(t, q, "offset 0")

	// placeholder format should be ? (SQLite)
	require.Contains(t, query, "?")
	require.NotContains(t, query, "$1")

	// columns presence
	for _, c := range readingColumns {
		require.Contains(t, q, c)
	}
}

func Test_buildSelectReadingsQuery_Windowing(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantLimit  string
		wantOffset string
	}{
		{name: "first page", page: 1, limit: 10, wantLimit: "LIMIT 10", wantOffset: "OFFSET 0"},
		{name: "third page", page: 3, limit: 10, wantLimit: "LIMIT 10", wantOffset: "OFFSET 20"},
		{name: "small window", page: 2, limit: 5, wantLimit: "LIMIT 5", wantOffset: "OFFSET 5"},
		{name: "zero page clamps offset", page: 0, limit: 10, wantLimit: "LIMIT 10", wantOffset: "OFFSET 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, _, err := buildSelectReadingsQuery(models.ReadingFilter{
				UserID: 1,
				Page:   tt.page,
				Limit:  tt.limit,
			})
			require.NoError(t, err)
			assert.Contains(t, query, tt.wantLimit)
			assert.Contains(t, query, tt.wantOffset)
		})
	}
}

func Test_buildSelectReadingsQuery_NoLimitDisablesWindowing(t *testing.T) {
	query, _, err := buildSelectReadingsQuery(models.ReadingFilter{UserID: 1})
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.NotContains(t, q, "limit")
	assert.NotContains(t, q, "offset")
	assert.Contains(t, q, "order by measured_at desc, id desc")
}

func Test_buildSelectReadingsQuery_DateRangeArgs(t *testing.T) {
	start, err := models.ParseDate("2026-08-01")
	require.NoError(t, err)
	end, err := models.ParseDate("2026-08-31")
	require.NoError(t, err)

	query, args, err := buildSelectReadingsQuery(models.ReadingFilter{
		UserID:    1,
		StartDate: start,
		EndDate:   end,
	})
	require.NoError(t, err)

	require.Len(t, args, 3)
	assert.Equal(t, int64(1), args[0])
	assert.Equal(t, "2026-08-01", args[1])
	assert.Equal(t, "2026-08-31", args[2])

	q := strings.ToLower(query)
	assert.Contains(t, q, "measured_at >= ?")
	assert.Contains(t, q, "measured_at <= ?")
}

func Test_buildSelectReadingsQuery_StartDateOnly(t *testing.T) {
	start, err := models.ParseDate("2026-08-01")
	require.NoError(t, err)

	query, args, err := buildSelectReadingsQuery(models.ReadingFilter{
		UserID:    1,
		StartDate: start,
	})
	require.NoError(t, err)

	require.Len(t, args, 2)
	assert.Equal(t, "2026-08-01", args[1])

	q := strings.ToLower(query)
	assert.Contains(t, q, "measured_at >= ?")
	assert.NotContains(t, q, "measured_at <= ?")
}

// The count query must carry exactly the same predicate and arguments as the
// data query so that pagination metadata always matches the returned window.
func Test_buildCountReadingsQuery_MirrorsDataPredicate(t *testing.T) {
	start, err := models.ParseDate("2026-08-01")
	require.NoError(t, err)
	end, err := models.ParseDate("2026-08-31")
	require.NoError(t, err)

	filter := models.ReadingFilter{
		UserID:    7,
		StartDate: start,
		EndDate:   end,
		Page:      2,
		Limit:     10,
	}

	dataQuery, dataArgs, err := buildSelectReadingsQuery(filter)
	require.NoError(t, err)

	countQuery, countArgs, err := buildCountReadingsQuery(filter)
	require.NoError(t, err)

	assert.Equal(t, dataArgs, countArgs)

	wherePart := func(query string) string {
		_, after, found := strings.Cut(query, "WHERE")
		require.True(t, found)
		// strip the trailing ORDER BY / LIMIT from the data query
		before, _, _ := strings.Cut(after, "ORDER BY")
		return strings.TrimSpace(before)
	}
	assert.Equal(t, wherePart(dataQuery), wherePart(countQuery))

	q := strings.ToLower(countQuery)
	assert.Contains(t, q, "count(*)")
	assert.NotContains(t, q, "limit")
	assert.NotContains(t, q, "offset")
}

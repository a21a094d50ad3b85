// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-coffee-freezer/models"
)

var (
	sqliteBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	postgresBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
)

func Test_buildInsertBagQuery(t *testing.T) {
	bag := models.Bag{
		Name:             "Yirgacheffe",
		BrewMethod:       "filter",
		Roaster:          "Square Mile",
		Origin:           "Ethiopia",
		TargetFreezeDate: "2024-01-01",
		Grams:            340,
	}

	query, args, err := buildInsertBagQuery(postgresBuilder, bag)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into bags")
	assert.Contains(t, q, "returning id")
	assert.Contains(t, query, "$9")
	require.Len(t, args, 9)
	assert.Equal(t, "Yirgacheffe", args[0])
	assert.Equal(t, 340, args[7])
	assert.Equal(t, false, args[8])
}

func Test_buildFindBagsQuery_ActiveBags(t *testing.T) {
	query, args, err := buildFindBagsQuery(sqliteBuilder, models.ActiveBagsQuery())
	require.NoError(t, err)

	assert.Contains(t, query, "FROM bags WHERE frozen = ?")
	assert.True(t, strings.HasSuffix(query, "ORDER BY target_freeze_date ASC, id ASC"), query)
	assert.Equal(t, []any{false}, args)
}

func Test_buildFindBagsQuery_NoFilter(t *testing.T) {
	query, args, err := buildFindBagsQuery(sqliteBuilder, models.BagQuery{})
	require.NoError(t, err)

	assert.NotContains(t, query, "WHERE")
	assert.NotContains(t, query, "ORDER BY")
	assert.Empty(t, args)
}

func Test_buildFindVialsQuery_StockFilters(t *testing.T) {
	tests := []struct {
		name      string
		query     models.VialQuery
		wantWhere string
		wantOrder string
	}{
		{
			name:      "in stock",
			query:     models.InStockVialsQuery(),
			wantWhere: "WHERE vials > ?",
			wantOrder: "ORDER BY vials DESC, id ASC",
		},
		{
			name:      "past",
			query:     models.PastVialsQuery(),
			wantWhere: "WHERE vials = ?",
			wantOrder: "ORDER BY actual_freeze_date DESC, id ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildFindVialsQuery(sqliteBuilder, tt.query)
			require.NoError(t, err)

			assert.Contains(t, query, tt.wantWhere)
			assert.Contains(t, query, tt.wantOrder)
			assert.Equal(t, []any{0}, args)
		})
	}
}

func Test_buildFindVialsQuery_UnsupportedOrderField(t *testing.T) {
	_, _, err := buildFindVialsQuery(sqliteBuilder, models.VialQuery{
		Order: []models.Order{{Field: "vials; DROP TABLE vials"}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedOrderField))
}

func Test_buildUpdateBagQuery_DoesNotTouchFrozenFlag(t *testing.T) {
	query, args, err := buildUpdateBagQuery(sqliteBuilder, models.Bag{ID: 7, Name: "Kenya AA", Grams: 250})
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE bags SET")
	assert.NotContains(t, query, "frozen")
	require.Len(t, args, 9)
	assert.Equal(t, int64(7), args[len(args)-1])
}

func Test_buildUpdateVialQuery_DoesNotTouchBagReference(t *testing.T) {
	query, _, err := buildUpdateVialQuery(sqliteBuilder, models.Vial{ID: 3})
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE vials SET")
	assert.NotContains(t, query, "bag_id")
}

func Test_buildUnfreezeBagQuery(t *testing.T) {
	d := models.Description{Name: "Huila", BrewMethod: "espresso", Roaster: "Onyx", Origin: "Colombia"}

	query, args, err := buildUnfreezeBagQuery(postgresBuilder, 5, d)
	require.NoError(t, err)

	assert.Contains(t, query, "frozen = $7")
	assert.Contains(t, query, "WHERE id = $8")
	assert.Equal(t, []any{"Huila", "espresso", "Onyx", "Colombia", "", "", false, int64(5)}, args)
}

func Test_buildConsumeVialQuery(t *testing.T) {
	query, args, err := buildConsumeVialQuery(sqliteBuilder, 11)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE vials SET vials = vials - 1 WHERE id = ? AND vials > ?", query)
	assert.Equal(t, []any{int64(11), 0}, args)
}

func Test_buildInsertVialQuery_CarriesBagReference(t *testing.T) {
	bagID := int64(2)
	query, args, err := buildInsertVialQuery(sqliteBuilder, models.Vial{BagID: &bagID, Vials: 4, GramsPerVial: 85})
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO vials (bag_id,")
	assert.Contains(t, query, "RETURNING id")
	require.Len(t, args, 10)
	assert.Equal(t, &bagID, args[0])
}

func Test_orderByClauses(t *testing.T) {
	allowed := map[string]struct{}{"id": {}, "name": {}}

	clauses, err := orderByClauses([]models.Order{{Field: "name", Desc: true}, {Field: "id"}}, allowed)
	require.NoError(t, err)
	assert.Equal(t, []string{"name DESC", "id ASC"}, clauses)

	_, err = orderByClauses([]models.Order{{Field: "grams"}}, allowed)
	assert.ErrorIs(t, err, ErrUnsupportedOrderField)
}

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-coffee-freezer/models"
)

const (
	bagsTable  = "bags"
	vialsTable = "vials"
)

var (
	bagColumns = []string{
		"id",
		"name",
		"brew_method",
		"roaster",
		"origin",
		"tasting_notes",
		"notes",
		"target_freeze_date",
		"grams",
		"frozen",
	}

	vialColumns = []string{
		"id",
		"bag_id",
		"name",
		"brew_method",
		"roaster",
		"origin",
		"tasting_notes",
		"notes",
		"vials",
		"grams_per_vial",
		"actual_freeze_date",
	}

	// columns a listing may be ordered by
	bagOrderFields = map[string]struct{}{
		"id":                 {},
		"name":               {},
		"roaster":            {},
		"target_freeze_date": {},
		"grams":              {},
	}
	vialOrderFields = map[string]struct{}{
		"id":                 {},
		"name":               {},
		"roaster":            {},
		"vials":              {},
		"grams_per_vial":     {},
		"actual_freeze_date": {},
	}
)

func buildInsertBagQuery(b sq.StatementBuilderType, bag models.Bag) (string, []any, error) {
	return b.Insert(bagsTable).
		Columns("name", "brew_method", "roaster", "origin", "tasting_notes", "notes", "target_freeze_date", "grams", "frozen").
		Values(bag.Name, bag.BrewMethod, bag.Roaster, bag.Origin, bag.TastingNotes, bag.Notes, bag.TargetFreezeDate, bag.Grams, bag.Frozen).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectBagQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(bagColumns...).
		From(bagsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildFindBagsQuery(b sq.StatementBuilderType, query models.BagQuery) (string, []any, error) {
	selectBuilder := b.Select(bagColumns...).From(bagsTable)

	if query.Frozen != nil {
		selectBuilder = selectBuilder.Where(sq.Eq{"frozen": *query.Frozen})
	}

	orderBy, err := orderByClauses(query.Order, bagOrderFields)
	if err != nil {
		return "", nil, err
	}

	return selectBuilder.OrderBy(orderBy...).ToSql()
}

// buildUpdateBagQuery updates every editable column. The frozen flag only
// changes through the freezer transitions.
func buildUpdateBagQuery(b sq.StatementBuilderType, bag models.Bag) (string, []any, error) {
	return b.Update(bagsTable).
		Set("name", bag.Name).
		Set("brew_method", bag.BrewMethod).
		Set("roaster", bag.Roaster).
		Set("origin", bag.Origin).
		Set("tasting_notes", bag.TastingNotes).
		Set("notes", bag.Notes).
		Set("target_freeze_date", bag.TargetFreezeDate).
		Set("grams", bag.Grams).
		Where(sq.Eq{"id": bag.ID}).
		ToSql()
}

func buildDeleteBagQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(bagsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildFreezeBagQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Update(bagsTable).
		Set("frozen", true).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildUnfreezeBagQuery(b sq.StatementBuilderType, id int64, d models.Description) (string, []any, error) {
	return b.Update(bagsTable).
		Set("name", d.Name).
		Set("brew_method", d.BrewMethod).
		Set("roaster", d.Roaster).
		Set("origin", d.Origin).
		Set("tasting_notes", d.TastingNotes).
		Set("notes", d.Notes).
		Set("frozen", false).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertVialQuery(b sq.StatementBuilderType, vial models.Vial) (string, []any, error) {
	return b.Insert(vialsTable).
		Columns("bag_id", "name", "brew_method", "roaster", "origin", "tasting_notes", "notes", "vials", "grams_per_vial", "actual_freeze_date").
		Values(vial.BagID, vial.Name, vial.BrewMethod, vial.Roaster, vial.Origin, vial.TastingNotes, vial.Notes, vial.Vials, vial.GramsPerVial, vial.ActualFreezeDate).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectVialQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(vialColumns...).
		From(vialsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildFindVialsQuery(b sq.StatementBuilderType, query models.VialQuery) (string, []any, error) {
	selectBuilder := b.Select(vialColumns...).From(vialsTable)

	if query.InStock != nil {
		if *query.InStock {
			selectBuilder = selectBuilder.Where(sq.Gt{"vials": 0})
		} else {
			selectBuilder = selectBuilder.Where(sq.Eq{"vials": 0})
		}
	}

	orderBy, err := orderByClauses(query.Order, vialOrderFields)
	if err != nil {
		return "", nil, err
	}

	return selectBuilder.OrderBy(orderBy...).ToSql()
}

// buildUpdateVialQuery updates every editable column. The bag reference is
// set once on freeze and never edited.
func buildUpdateVialQuery(b sq.StatementBuilderType, vial models.Vial) (string, []any, error) {
	return b.Update(vialsTable).
		Set("name", vial.Name).
		Set("brew_method", vial.BrewMethod).
		Set("roaster", vial.Roaster).
		Set("origin", vial.Origin).
		Set("tasting_notes", vial.TastingNotes).
		Set("notes", vial.Notes).
		Set("vials", vial.Vials).
		Set("grams_per_vial", vial.GramsPerVial).
		Set("actual_freeze_date", vial.ActualFreezeDate).
		Where(sq.Eq{"id": vial.ID}).
		ToSql()
}

func buildDeleteVialQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(vialsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildConsumeVialQuery decrements the count only while it is positive, so
// the count can never go below zero.
func buildConsumeVialQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Update(vialsTable).
		Set("vials", sq.Expr("vials - 1")).
		Where(sq.Eq{"id": id}).
		Where(sq.Gt{"vials": 0}).
		ToSql()
}

func orderByClauses(order []models.Order, allowed map[string]struct{}) ([]string, error) {
	clauses := make([]string, 0, len(order))
	for _, o := range order {
		if _, ok := allowed[o.Field]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedOrderField, o.Field)
		}

		direction := "ASC"
		if o.Desc {
			direction = "DESC"
		}
		clauses = append(clauses, o.Field+" "+direction)
	}

	return clauses, nil
}

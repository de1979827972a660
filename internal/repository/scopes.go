package repository

import (
	"github.com/sefazor/mygallery-backend/internal/filter"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// applySpec adds the WHERE, ORDER BY, LIMIT and OFFSET clauses described by spec.
// Ordering always ends on the primary key so pages do not overlap.
func applySpec(db *gorm.DB, spec filter.Spec) *gorm.DB {
	for _, t := range spec.Text {
		db = db.Where(clause.Expr{
			SQL:  "? ILIKE ?",
			Vars: []interface{}{clause.Column{Name: t.Column}, t.Pattern()},
		})
	}

	for _, b := range spec.Bounds {
		db = db.Where(clause.Expr{
			SQL:  "? " + b.Op + " ?",
			Vars: []interface{}{clause.Column{Name: b.Column}, b.Value},
		})
	}

	seenID := false
	for _, o := range spec.Order {
		db = db.Order(clause.OrderByColumn{
			Column: clause.Column{Name: o.Column},
			Desc:   o.Direction == "desc",
		})
		if o.Column == "id" {
			seenID = true
		}
	}
	if !seenID {
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})
	}

	return db.Limit(spec.Limit).Offset(spec.Offset)
}

package postgres

import (
	"strings"

	"marketplace/internal/domain/query"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes LIKE wildcards so user text is matched literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// applyFilterPlan AND-s every clause of plan onto tx.
func applyFilterPlan(tx *gorm.DB, plan *query.FilterPlan) *gorm.DB {
	for _, c := range plan.Clauses {
		switch c := c.(type) {
		case query.StatusClause:
			tx = tx.Where("status = ?", string(c.Status))
		case query.PremiumClause:
			tx = tx.Where("is_premium = ?", c.IsPremium)
		case query.TextClause:
			like := "%" + escapeLike(c.Needle) + "%"
			tx = tx.Where("(title ILIKE ? OR description ILIKE ?)", like, like)
		case query.CategoryClause:
			tx = tx.Where("category_id = ?", c.CategoryID)
		case query.MatchNoneClause:
			tx = tx.Where("1 = 0")
		case query.PriceMinClause:
			// rows without any price compare as NULL and never match
			tx = tx.Where("(price_min >= ? OR price_max >= ?)", c.Bound, c.Bound)
		case query.PriceMaxClause:
			tx = tx.Where("(price_min <= ? OR price_max <= ?)", c.Bound, c.Bound)
		}
	}

	return tx
}

func createdAtOrder(plan *query.FilterPlan) string {
	if plan.CreatedAtOrder() == query.OrderAsc {
		return "created_at ASC"
	}

	return "created_at DESC"
}

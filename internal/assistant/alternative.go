package assistant

import (
	"context"

	"github.com/mediveda/healthbot/internal/catalog"
	"github.com/mediveda/healthbot/internal/session"
)

// alternativeProducts finds products the session has not seen yet. It
// escalates from the last search keyword to the last category to popular
// products, so a follow-up always has somewhere to go.
func (a *Assistant) alternativeProducts(ctx context.Context, sess session.Context) []catalog.Product {
	exclude := sess.ShownIDs()

	if sess.LastKeyword != "" {
		if products, err := a.catalog.SearchExcluding(ctx, sess.LastKeyword, exclude, a.maxResults); err == nil && len(products) > 0 {
			return products
		}
	}
	if sess.LastCategory != "" {
		if products, err := a.catalog.CategoryExcluding(ctx, sess.LastCategory, exclude, a.maxResults); err == nil && len(products) > 0 {
			return products
		}
	}
	products, err := a.catalog.PopularExcluding(ctx, exclude, a.maxResults)
	if err != nil {
		return nil
	}
	return products
}

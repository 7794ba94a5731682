package repository

import "regexp"

// quoteSQL quotes a literal SQL fragment for sqlmock's regexp matcher.
func quoteSQL(fragment string) string {
	return regexp.QuoteMeta(fragment)
}

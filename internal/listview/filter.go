package listview

// Filter returns the records that pass every active criterion, in input order.
// Inactive criteria (empty, malformed, unknown field) always pass, so a bad
// user input widens the result rather than failing the view. The input slice
// is never modified.
func Filter[T any](schema *Schema[T], records []T, criteria []Criterion) []T {
	preds := make([]predicate[T], 0, len(criteria))
	for _, c := range criteria {
		if p, active := compile(schema, c); active {
			preds = append(preds, p)
		}
	}

	out := make([]T, 0, len(records))
	for _, r := range records {
		if matchAll(preds, r) {
			out = append(out, r)
		}
	}
	return out
}

// Active reports whether a criterion would constrain records of the schema.
func Active[T any](schema *Schema[T], c Criterion) bool {
	_, active := compile(schema, c)
	return active
}

func matchAll[T any](preds []predicate[T], r T) bool {
	for _, p := range preds {
		if !p(r) {
			return false
		}
	}
	return true
}

// Package query compiles typed search criteria and list options into the
// query strings understood by the ERP REST API.
//
// # Criteria
//
// A Criteria is an ordered list of logical (camelCase) field names, each with
// a FieldValue:
//
//	c := query.NewCriteria().
//		Where("code", query.Operators(query.Like("AB*"))).
//		Where("status", query.AnyOf(1, 2)).
//		Where("cardType", query.Literal(3))
//
//	filter, ok := query.Compile(c)
//	// CODE like 'AB*' and (STATUS eq 1 or STATUS eq 2) and CARD_TYPE eq 3
//
// Field names are mapped to columns with ColumnName. Literals use implicit
// equality, AnyOf becomes a parenthesized OR-group, and Operators applies each
// condition in order, AND-ed. Compile reports ok == false when no clause was
// produced; the q option must then be omitted rather than sent empty.
//
// Criteria can also come from a YAML/JSON document (ParseCriteria) or from a
// record struct with FieldValue fields (CriteriaFromStruct).
//
// # Options
//
// Options carries limit, offset, sort, fields, q, count and expandLevel and
// encodes them in that fixed order:
//
//	opts := query.NewOptions().WithLimit(10).WithOffset(0).WithSort(query.Asc("FICHENO"))
//	opts.Encode() // limit=10&offset=0&sort=FICHENO
//
// Descending sorts prefix every column with "-". ParseOptions is the inverse
// of Encode. SearchOptions and PathWithQuery show how a resource client
// combines the two halves.
//
// All functions are pure and safe for concurrent use. Options builder methods
// mutate their receiver.
package query

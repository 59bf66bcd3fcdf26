package keyword

// ReservedForTableAlias holds keywords that may not follow a table factor as
// an implicit (AS-less) alias because they start the next clause.
var ReservedForTableAlias = NewSet(
	ANALYZE, ANTI, APPLY, ARRAY, ASOF, CLUSTER, CONNECT, CROSS, DISTRIBUTE,
	ELSE, ELSEIF, ELSIF, END, EXCEPT, EXPLAIN, FETCH, FINAL, FOR, FORMAT, FROM,
	FULL, GLOBAL, GROUP, HAVING, INNER, INTERSECT, INTO, JOIN, LATERAL, LEFT,
	LIMIT, MATCH_CONDITION, MATCH_RECOGNIZE, MINUS, NATURAL, OFFSET, ON, ORDER,
	OUTER, PARTITION, PIVOT, PREWHERE, QUALIFY, RETURNING, RIGHT, SAMPLE,
	SELECT, SEMI, SET, SETTINGS, SORT, START, STRAIGHT_JOIN, TABLESAMPLE, THEN,
	TOP, UNION, UNPIVOT, UNTIL, USING, VIEW, WHEN, WHERE, WINDOW, WITH,
)

// ReservedForColumnAlias holds keywords that may not follow a projection item
// as an implicit alias.
var ReservedForColumnAlias = NewSet(
	ANALYZE, CLUSTER, CONNECT, DISTRIBUTE, ELSE, ELSEIF, ELSIF, END, EXCEPT,
	EXCLUDE, EXPLAIN, FETCH, FOR, FORMAT, FROM, GROUP, HAVING, INTERSECT, INTO,
	LATERAL, LIMIT, MINUS, OFFSET, ON, ORDER, PREWHERE, QUALIFY, RETURNING,
	SELECT, SETTINGS, SORT, START, THEN, TOP, UNION, UNTIL, VIEW, WHEN, WHERE,
	WINDOW, WITH,
)

// ReservedForIdentifier holds keywords that introduce a special expression
// form and are therefore never read as a plain column name when they appear
// in prefix position.
var ReservedForIdentifier = NewSet(EXISTS, INTERVAL, STRUCT, TRIM)

// ReservedForTableFactor holds keywords that can never start a table factor.
var ReservedForTableFactor = NewSet(
	ANTI, ASOF, CROSS, EXCEPT, FETCH, FORMAT, FROM, FULL, GROUP, HAVING,
	INNER, INTERSECT, INTO, JOIN, LEFT, LIMIT, MINUS, NATURAL, OFFSET, ON,
	ORDER, OUTER, PREWHERE, QUALIFY, RETURNING, RIGHT, SELECT, SEMI, SET,
	SETTINGS, STRAIGHT_JOIN, UNION, USING, WHERE, WINDOW, WITH,
)

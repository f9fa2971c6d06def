// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package stats aggregates completed respondent records.

# Counters

For each of the six buckets (four grades, two genders) the store keeps

	total[b]             respondents credited to b
	counts[b][i][choice] respondents in b who picked choice for question i

Every ingested record is credited to exactly two buckets, its grade and its
gender, under one lock. The invariant

	counts[b][i][ONE] + counts[b][i][TWO] == total[b]

holds after any sequence of Ingest calls; Verify checks it.

# Reports

	report := store.Report()

Percentages are always computed against total[b] and rounded half-up to two
decimals. A bucket with no respondents has no question lines. GrandTotal is
the sum of the grade totals only, since gender totals count the same people
again.

# Errors

Ingest rejects a record whose choice count differs from the question table,
or that carries an unset grade, gender, or choice, with ErrMalformedRecord.
A rejected record leaves every counter unchanged.
*/
package stats

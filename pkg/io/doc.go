// Package io reads birthday lists and writes rendered calendars to disk.
//
// # Input
//
// A birthday list is plain text with one record per line:
//
//	name,year,month,day
//
// There is no header and no quoting; a name cannot contain a comma. Blank
// lines are skipped. Each record must have exactly four fields, numeric
// year/month/day forming a real calendar date, and a name usable as a file
// name. [Scanner] streams records so callers can stop or continue at the first
// bad line; every failure is a [errors.RecordError] carrying the line number.
//
// # Output
//
// [WriteArtifact] writes one rendered document to dir/stem.format. The
// directory is created on demand with [os.MkdirAll], so concurrent writers
// never race on its creation, and the file is written to a temporary name and
// renamed into place.
//
// [errors.RecordError]: github.com/matzehuels/lifeweeks/pkg/errors.RecordError
package io

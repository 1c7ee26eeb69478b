// Package layout computes the geometry of a life calendar page.
//
// # Overview
//
// A life calendar is a grid with one row per year and one box per ISO week.
// [Build] turns a birth date and a number of years into a [Layout]: the page
// size, the centered grid origin, and every positioned [Box] with its stroke
// color and line width. Sinks in [sink] only draw what the layout describes.
//
// # Rows
//
// [BuildRow] lays out a single year. Box i (1-based week) sits at
//
//	x = origin + (week-1) * (BoxSize + Margin)
//
// The week holding the birthday is drawn with [Config.BirthdayLineWidth]. The
// first row starts at the birthday week of the birth year and the last row
// ends at the birthday week of the final year, so the grid spans exactly the
// requested number of years.
//
// # Decades
//
// Every row whose year is a multiple of ten is preceded by an extra
// [Config.ExtraMargin] of vertical space.
//
// # Draw-to-date
//
// With [WithDrawToDate], weeks before the reference time are stroked with
// [Config.HighlightColor]. Without it, past and future weeks share the base
// color.
//
// [sink]: github.com/matzehuels/lifeweeks/pkg/render/sink
package layout

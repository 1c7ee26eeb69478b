// Package pkg provides the core libraries for lifeweeks life calendars.
//
// # Overview
//
// A life calendar is a grid with one row per year of life and one box per
// ISO week. The first row starts at the birth week, the week containing the
// birthday is outlined with a heavier stroke, and a draw-to-date variant
// highlights every week that has already passed.
//
// # Architecture
//
// The typical data flow:
//
//	birthdays.txt
//	     ↓
//	[io] (parse "name,year,month,day" records)
//	     ↓
//	[layout] (rows and boxes in page units, built on [calendar])
//	     ↓
//	[render/sink] (PDF, SVG, PNG, JSON)
//	     ↓
//	output/{name}.pdf, output/{name}_.pdf
//
// # Quick Start
//
//	birth, _ := calendar.NewBirthDate(1990, 5, 19)
//	l, _ := layout.Build(birth, 100)
//	pdf, _ := sink.RenderPDF(l, sink.WithPDFTitle("Ana"))
//
// # Main Packages
//
// ## Domain
//
// [calendar] - ISO week arithmetic: weeks per year, the celebration date of
// February 29 birthdays and the week a birthday falls in.
//
// [layout] - Page geometry. Turns a birth date and a year count into
// positioned rows of boxes, optionally marking weeks up to a reference date.
//
// [render/sink] - Output formats. All sinks draw the same [layout.Layout].
//
// ## Orchestration
//
// [pipeline] - layout → render with caching, used by the CLI, the batch
// generator and the HTTP API so every entry point behaves the same.
//
// [batch] - Renders a birthday list, one or two documents per person.
//
// [server] - HTTP API over [pipeline].
//
// ## Infrastructure
//
// [cache] - Artifact cache with file, Redis and MongoDB backends.
//
// [config] - Defaults, .env, TOML file and LIFEWEEKS_ environment variables.
//
// [io] - Birthday list import and artifact export.
//
// [errors] - Coded errors shared by every package.
//
// [observability] - Hooks for layout, render, cache and HTTP events.
//
// # Testing
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/layout/...             # Specific package
//	go test -run Example ./pkg/calendar  # Examples only
package pkg

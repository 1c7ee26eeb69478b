// Package calendar provides the ISO-8601 week arithmetic behind the life
// calendar: how many weeks a year has and which week holds a birthday.
//
// # ISO Weeks
//
// ISO week 1 is the week containing the year's first Thursday. A year has 52
// or 53 ISO weeks. [WeeksInYear] derives the count from December 31, which can
// itself fall into week 1 of the following ISO year; that case reports 52.
//
// # Birthdays
//
// A birthday is celebrated on its month and day in every year, except for
// February 29 which moves to March 1 in non-leap years:
//
//	b := calendar.BirthDate{Year: 2000, Month: time.February, Day: 29}
//	calendar.CelebrationDate(2001, b) // 2001-03-01
//	calendar.BirthdayWeek(2001, b)    // 9
//
// Week numbers are reported exactly as [time.Time.ISOWeek] returns them, even
// when the date belongs to a neighbouring ISO year (January 1 may be week 52
// or 53, December 30 may be week 1).
package calendar

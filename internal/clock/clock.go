// Package clock renders the header date line from fixed Arabic name tables.
package clock

import (
	"fmt"
	"time"
)

var weekdays = [...]string{"الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت"}

var months = [...]string{"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو", "يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر"}

// WeekdayName maps 0 (Sunday) through 6 to a name. Indexes outside the table
// cannot come from a time.Time but still return a readable fallback.
func WeekdayName(day int) string {
	if day < 0 || day >= len(weekdays) {
		return "Not a valid day"
	}
	return weekdays[day]
}

// MonthName maps 0 (January) through 11 to a name.
func MonthName(month int) string {
	if month < 0 || month >= len(months) {
		return "Not a valid month"
	}
	return months[month]
}

// Format renders "<Weekday>, <Month> <DayOfMonth>".
func Format(t time.Time) string {
	return fmt.Sprintf("%s, %s %d", WeekdayName(int(t.Weekday())), MonthName(int(t.Month())-1), t.Day())
}

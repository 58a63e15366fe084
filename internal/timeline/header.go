package timeline

import "time"

// Week is one ISO-8601 week band inside a month header.
type Week struct {
	Year   int `json:"year"`
	Number int `json:"number"`
	Days   int `json:"days"`
}

// Month is one month band of the header, with its week bands.
type Month struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Name  string `json:"name"`
	Days  int    `json:"days"`
	Weeks []Week `json:"weeks"`
}

// Headers partitions consecutive days into months, and each month into ISO
// weeks. A week that straddles a month boundary is split between the two
// months.
func Headers(days []time.Time) []Month {
	var months []Month
	for _, d := range days {
		if n := len(months); n == 0 || months[n-1].Year != d.Year() || months[n-1].Month != int(d.Month()) {
			months = append(months, Month{Year: d.Year(), Month: int(d.Month()), Name: d.Month().String()})
		}
		m := &months[len(months)-1]
		m.Days++

		year, week := d.ISOWeek()
		if n := len(m.Weeks); n == 0 || m.Weeks[n-1].Number != week || m.Weeks[n-1].Year != year {
			m.Weeks = append(m.Weeks, Week{Year: year, Number: week})
		}
		m.Weeks[len(m.Weeks)-1].Days++
	}
	return months
}

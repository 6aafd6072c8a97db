package sheets

import (
	"github.com/spf13/cast"

	"umc/internal/models"
)

// Summarize derives the post-run statistics from the main metrics tab.
// Days compare lexicographically, which is chronological for the
// YYYY-MM-DD values the reports carry; rows without a day are left out of
// the range.
func Summarize(main *models.Table) *models.Summary {
	s := &models.Summary{Records: main.RowCount()}

	users := make(map[string]struct{})
	for _, row := range main.Rows {
		users[cast.ToString(row[colUserLogin])] = struct{}{}

		day := cast.ToString(row[colDay])
		if day != "" {
			if s.FirstDay == "" || day < s.FirstDay {
				s.FirstDay = day
			}
			if day > s.LastDay {
				s.LastDay = day
			}
		}

		s.TotalInteractions += cast.ToInt(row[colInteractions])
		s.TotalGenerations += cast.ToInt(row[colGenerations])
		s.TotalLOCAdded += cast.ToInt(row[colLOCAdded])
	}
	s.UniqueUsers = len(users)

	return s
}

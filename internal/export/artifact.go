package export

import "time"

const artifactStampLayout = "20060102_1504"

// WorkbookFilename names the spreadsheet artifact for a download issued
// at the given time.
func WorkbookFilename(now time.Time) string {
	return "Supply_Chain_Report_" + now.Format(artifactStampLayout) + ".xlsx"
}

// SummaryFilename names the text artifact for a download issued at the
// given time.
func SummaryFilename(now time.Time) string {
	return "Supply_Chain_Summary_" + now.Format(artifactStampLayout) + ".md"
}

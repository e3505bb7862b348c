// Package catalog defines the fixed, ordered section table for the briefing
// book: which sections exist, what file each one is expected to live in, and
// the order they appear in the combined output.
package catalog

// Entry is one section of the book: a display label and the exact file name
// the resolver looks for inside the parts directory. File names must match
// exactly (case and spacing) for discovery to succeed.
type Entry struct {
	Label string `yaml:"label"`
	File  string `yaml:"file"`
}

// Default returns the built-in section catalog. Order is significant: it is
// the merge order of the combined book. Labels and file names are kept
// byte-for-byte identical to the catalog the book parts are authored against.
func Default() []Entry {
	return []Entry{
		{Label: "Top Hits", File: "TOP HITS.docx"},
		{Label: "Methodology", File: "METHODOLOGY.docx"},
		{Label: "Biographical", File: "BIOGRAPHICAL.docx"},
		{Label: "Family/Personal Info", File: "FAMILY PERSONAL INFO.docx"},
		{Label: "Buisness Interests", File: "BUISNESS INTERESTS.docx"},
		{Label: "Race Review", File: "RACE REVIEW.docx"},
		{Label: "Campaign Finance", File: "CAMPAIGN FINANCE.docx"},
		{Label: "Issues", File: "ISSUES.docx"},
		{Label: "Appendicies", File: "APPENDICIES.docx"},
		{Label: "Questionaires", File: "QUESTIONNAIRES.docx"},
		{Label: "Scorecards", File: "SCORECARD.docx"},
		{Label: "Travel Discosureles", File: "TRAVEL DISCLOSURES.docx"},
		{Label: "Offical Office Disbursments", File: "OFFICIAL OFFICE DISBURSEMENTS.docx"},
	}
}

package ingest

import (
	"regexp"
	"strings"
)

// Known scraping platforms.
const (
	SourceMeetup     = "meetup"
	SourceEventbrite = "eventbrite"
)

// CategoryUnknown marks listings whose origin URL carried no usable category.
const CategoryUnknown = "unknown"

// Eventbrite listing URLs look like
// https://www.eventbrite.com/d/wa--seattle/networking/.
var eventbriteURLPattern = regexp.MustCompile(`eventbrite\.com/d/\w+--([^/]+)/([^/]+)`)

// URLInfo is the metadata inferred from a scraper's origin URL.
type URLInfo struct {
	City     string
	Category string
}

// DetectSource classifies the scrape run's platform from its origin URL.
// Anything that is not recognizably Meetup is treated as Eventbrite.
func DetectSource(originURL string) string {
	if strings.Contains(originURL, "meetup.com") {
		return SourceMeetup
	}
	return SourceEventbrite
}

// ExtractFromURL pulls city and category out of an Eventbrite listing URL.
// Unmatched URLs fall back to the default city and an "unknown" category.
func ExtractFromURL(originURL, defaultCity string) URLInfo {
	if m := eventbriteURLPattern.FindStringSubmatch(originURL); m != nil {
		return URLInfo{
			City:     capitalize(m[1]),
			Category: strings.ToLower(m[2]),
		}
	}
	return URLInfo{City: defaultCity, Category: CategoryUnknown}
}

// capitalize upper-cases the first byte of s ("seattle" -> "Seattle").
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

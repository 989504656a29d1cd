package bulletin

// Unknown is the sentinel value for fields that could not be resolved from
// the bulletin document.
const Unknown = "Unknown"

// Report holds the structured fields extracted from one daily bulletin PDF.
// Every field is always present in the JSON output; unresolved fields carry
// the Unknown sentinel rather than being omitted.
type Report struct {
	Date             string `json:"date"`
	Temperature      string `json:"temperature"`
	WeatherCondition string `json:"weather_condition"`
	SnowDepth        string `json:"snow_depth"`
	SnowType         string `json:"snow_type"`
	LastSnowfall     string `json:"last_snowfall"`
	UpdateTime       string `json:"update_time"`
}

// NewReport returns a report with every field seeded to Unknown.
func NewReport() Report {
	return Report{
		Date:             Unknown,
		Temperature:      Unknown,
		WeatherCondition: Unknown,
		SnowDepth:        Unknown,
		SnowType:         Unknown,
		LastSnowfall:     Unknown,
		UpdateTime:       Unknown,
	}
}

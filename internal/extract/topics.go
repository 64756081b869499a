package extract

import "strings"

// TopicEntry pairs a topic tag with the keywords that imply it.
type TopicEntry struct {
	Topic    string
	Keywords []string
}

// DefaultTopicTable returns the ordered topic keyword table. Order
// matters: detected topics are reported in table order, and a topic is
// included at most once, as soon as any of its keywords is found.
func DefaultTopicTable() []TopicEntry {
	return []TopicEntry{
		{Topic: "set", Keywords: []string{"set", "sets", "subset", "superset", "power set"}},
		{Topic: "operations", Keywords: []string{"union", "intersection", "difference", "complement"}},
		{Topic: "notation", Keywords: []string{"roster", "set-builder", "element", "belongs", "empty set"}},
		{Topic: "venn", Keywords: []string{"venn", "diagram"}},
		{Topic: "intervals", Keywords: []string{"interval", "open interval", "closed interval"}},
	}
}

// DetectTopics runs a case-insensitive substring search of each
// topic's keywords against the stem. Always returns a non-nil slice so
// the JSON output carries [] rather than null.
func DetectTopics(stem string, table []TopicEntry) []string {
	lower := strings.ToLower(stem)
	hits := []string{}
	for _, entry := range table {
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				hits = append(hits, entry.Topic)
				break
			}
		}
	}
	return hits
}

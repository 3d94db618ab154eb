package domain

// ImportStats reports what a single import run did. When a run aborts
// mid-batch the counters still reflect the records written before the
// failure; nothing is rolled back.
type ImportStats struct {
	Fetched int
	Created int
	Updated int
	Failed  int
}

func (s ImportStats) Imported() int {
	return s.Created + s.Updated
}

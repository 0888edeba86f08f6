package wifi

// Aggregator deduplicates networks by identity key and retains the quality
// of the most recently added record for each key. It feeds the presentation
// layer's quality-sorted view.
type Aggregator struct {
	qualities map[string]int
}

// NewAggregator creates an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		qualities: make(map[string]int),
	}
}

// Add records one network. A duplicate SSID+BSSID pair within the same scan
// overwrites the earlier quality: last write wins.
func (a *Aggregator) Add(n Network) {
	a.qualities[n.Key()] = n.Quality
}

// AddAll records all networks in order.
func (a *Aggregator) AddAll(networks []Network) {
	for _, n := range networks {
		a.Add(n)
	}
}

// Qualities returns a copy of the identity-to-quality mapping.
func (a *Aggregator) Qualities() map[string]int {
	result := make(map[string]int, len(a.qualities))
	for key, quality := range a.qualities {
		result[key] = quality
	}
	return result
}

// Quality looks up the retained quality for an identity key.
func (a *Aggregator) Quality(key string) (int, bool) {
	quality, ok := a.qualities[key]
	return quality, ok
}

// Len returns the number of distinct networks seen.
func (a *Aggregator) Len() int {
	return len(a.qualities)
}

// Dedupe collapses networks with duplicate identity keys, keeping the most
// recent record for each key with the quality the aggregator retained, in
// first-seen order.
func Dedupe(networks []Network) []Network {
	agg := NewAggregator()
	agg.AddAll(networks)

	order := make([]string, 0, agg.Len())
	latest := make(map[string]Network, agg.Len())
	for _, n := range networks {
		key := n.Key()
		if _, ok := latest[key]; !ok {
			order = append(order, key)
		}
		latest[key] = n
	}

	out := make([]Network, 0, len(order))
	for _, key := range order {
		n := latest[key]
		if quality, ok := agg.Quality(key); ok {
			n.Quality = quality
		}
		out = append(out, n)
	}
	return out
}

package cache

// LayoutKeyOpts holds every setting that changes the layout of a dataset.
type LayoutKeyOpts struct {
	// Decoder is the input extension that selects the dataset decoder.
	Decoder      string   `json:"decoder"`
	Outer        string   `json:"outer"`
	Inner        string   `json:"inner"`
	InnerKeys    []string `json:"inner_keys,omitempty"`
	OuterKeys    []string `json:"outer_keys,omitempty"`
	Missing      string   `json:"missing"`
	UnknownLabel string   `json:"unknown_label"`
	Zero         string   `json:"zero"`
	Order        string   `json:"order"`
	Width        float64  `json:"width"`
	Height       float64  `json:"height"`
}

// ArtifactKeyOpts holds every setting that changes a rendered artifact of
// a layout.
type ArtifactKeyOpts struct {
	Format  string     `json:"format"`
	Style   string     `json:"style"`
	Labels  string     `json:"labels"`
	Title   string     `json:"title,omitempty"`
	Margins [4]float64 `json:"margins"`
	Palette []string   `json:"palette,omitempty"`
	Scale   float64    `json:"scale,omitempty"`
}

// Keyer derives cache keys. A non-empty Prefix isolates one keyspace from
// another sharing the same backend.
type Keyer struct {
	Prefix string
}

// LayoutKey returns the key for the layout of the dataset with content
// hash dataHash.
func (k Keyer) LayoutKey(dataHash string, opts LayoutKeyOpts) string {
	return k.Prefix + hashKey("layout", dataHash, opts)
}

// ArtifactKey returns the key for one rendered format of a layout.
func (k Keyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.Prefix + hashKey("artifact", layoutHash, opts)
}

package cache

import "time"

// TTLArtifact is how long rendered artifacts stay valid.
const TTLArtifact = 30 * 24 * time.Hour

// Keyer derives cache keys.
type Keyer interface {
	// ArtifactKey identifies one rendered output of a placed problem.
	ArtifactKey(problemHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts holds every setting that changes a rendered artifact.
type ArtifactKeyOpts struct {
	Format         string  `json:"format"`
	Shape          string  `json:"shape"`
	Modulus        int     `json:"modulus"`
	Shift          int     `json:"shift"`
	IgnoreOverflow bool    `json:"ignore_overflow,omitempty"`
	ColorDirection bool    `json:"color_direction,omitempty"`
	Chains         bool    `json:"chains,omitempty"`
	CellSize       int     `json:"cell_size,omitempty"`
	Scale          float64 `json:"scale,omitempty"`
	Detailed       bool    `json:"detailed,omitempty"`
}

// DefaultKeyer hashes the problem hash together with the options.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey returns "artifact:<format>:<hash>".
func (DefaultKeyer) ArtifactKey(problemHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+opts.Format, problemHash, opts)
}

var _ Keyer = DefaultKeyer{}

// Package config holds the small set of options that tune the transform
// pipeline's behavior without changing the tag schemes themselves.
package config

// Config controls optional behavior of TagsToLanes/LanesToTags.
type Config struct {
	// IncludeSeparators, if false, omits Separator lanes from the output
	// Road entirely. Default true.
	IncludeSeparators bool

	// IncludeShoulders controls whether a side with no sidewalk/shoulder
	// tagging at all gets a default Shoulder lane. Default true for
	// motorized highway classes, false for footway/cycleway/path/
	// pedestrian (those never get shoulders regardless of this flag).
	IncludeShoulders bool

	// InferDefaults, if true, applies locale default lane widths when a
	// way carries no width tag. Default true.
	InferDefaults bool

	// ErrorOnWarnings promotes the first Warning diagnostic to an
	// aborting Error. Default false.
	ErrorOnWarnings bool
}

// Default returns the documented default Config.
func Default() Config {
	return Config{
		IncludeSeparators: true,
		IncludeShoulders:  true,
		InferDefaults:     true,
		ErrorOnWarnings:   false,
	}
}

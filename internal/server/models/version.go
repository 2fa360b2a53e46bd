package models

// Channel is one of the two independent publication tracks. Each channel has
// at most one version flagged as its latest at any time.
type Channel string

const (
	ChannelStable Channel = "stable"
	ChannelPre    Channel = "pre"
)

// ChannelFor maps the isPre request flag onto a channel.
func ChannelFor(isPre bool) Channel {
	if isPre {
		return ChannelPre
	}
	return ChannelStable
}

// Version is a record from the versions collection. The version string is
// immutable and doubles as the script blob key. Across all records at most
// one has LatestStable set and at most one has LatestPre set.
type Version struct {
	Version      string `bson:"version"`
	LatestStable bool   `bson:"latestStable"`
	LatestPre    bool   `bson:"latestPre"`
}

// IsLatest reports whether the record currently holds the given channel's
// latest flag.
func (v *Version) IsLatest(ch Channel) bool {
	if ch == ChannelPre {
		return v.LatestPre
	}
	return v.LatestStable
}

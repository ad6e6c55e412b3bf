package constants

import "time"

type (
	APIStatus   string
	CachePrefix string
)

const (
	ServiceName    = "naebak-content-service"
	ServiceVersion = "1.0.0"

	APIStatusHealthy   APIStatus = "healthy"
	APIStatusUnhealthy APIStatus = "unhealthy"

	CachePrefixGovernorateList      CachePrefix = "governorates:list"
	CachePrefixRepresentativeDetail CachePrefix = "representative:detail:"
	CachePrefixStatistics           CachePrefix = "statistics"
	CachePrefixFilterOptions        CachePrefix = "filter_options"
)

// Read-through cache lifetimes per resource.
const (
	TTLGovernorateList      = time.Hour
	TTLRepresentativeDetail = 30 * time.Minute
	TTLStatistics           = 15 * time.Minute
	TTLFilterOptions        = time.Hour
)

// Pagination defaults shared by every list endpoint.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

const (
	DefaultElectionYear      = 2024
	DefaultPartyColor        = "#000000"
	DefaultSiteName          = "نائبك.كوم"
	DefaultVisitorCounterMin = 1000
	DefaultVisitorCounterMax = 1500
	FallbackSlug             = "representative"
)

const (
	MaxRequestBodyBytes = 1 << 20
	HealthProbeTimeout  = 3 * time.Second
)

// RepresentativeDetailKey returns the cache key for a single profile.
func RepresentativeDetailKey(slug string) string {
	return string(CachePrefixRepresentativeDetail) + slug
}

package cfg

type Cfg struct {
	// HTTP server
	Port string

	// Pipeline configuration
	SourcesFile     string
	MaxItemsPerFeed int
	DefaultLimit    int
	FetchTimeout    int
	SessionTTL      int
	Warmup          bool

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}

package cfg

type Cfg struct {
	// Database configuration
	DBPath string

	// Application configuration
	InputDir      string
	OutputMode    string
	OutputDir     string
	EntitiesFile  string
	Port          string
	WorkerCount   int
	Watch         bool
	WatchInterval int

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}

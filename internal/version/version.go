package version

// Set at build time via -ldflags, e.g.
//
//	go build -ldflags "-X github.com/keshon/dinogpt/internal/version.AppVersion=$(git describe --tags)"
var (
	AppName        = "DinoGPT"
	AppDescription = "A sarcastic dinosaur chat bot for computer science servers"
	AppVersion     = "dev"
	BuildDate      = ""
	GoVersion      = ""
)

package version

// Version is overridden at build time with -ldflags "-X guardwalk/internal/version.Version=...".
var Version = "dev"

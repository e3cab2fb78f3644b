package version

var (
	// Git SHA Value will be set during build:
	//   go build -ldflags "-X github.com/selectdb/go_patterns/pkg/version.GitTagSha=$(git rev-parse HEAD)"
	GitTagSha = "Git tag sha: Not provided, build with -ldflags to set it"
)

func GetVersion() string {
	return GitTagSha
}

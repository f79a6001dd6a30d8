package tmdb

const (
	posterImageBase   = "https://image.tmdb.org/t/p/w500"
	backdropImageBase = "https://image.tmdb.org/t/p/w1280"
)

// PosterURL builds the full poster image url from a poster path.
// An empty path yields an empty url.
func PosterURL(path string) string {
	if path == "" {
		return ""
	}
	return posterImageBase + path
}

// BackdropURL builds the full backdrop image url from a backdrop path.
func BackdropURL(path string) string {
	if path == "" {
		return ""
	}
	return backdropImageBase + path
}

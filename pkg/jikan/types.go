package jikan

// Named is an identified name reference used for genres, studios, and producers.
type Named struct {
	MalID int    `json:"mal_id"`
	Name  string `json:"name"`
}

type ImageSet struct {
	ImageURL      string `json:"image_url"`
	SmallImageURL string `json:"small_image_url"`
	LargeImageURL string `json:"large_image_url"`
}

type Images struct {
	JPG  ImageSet `json:"jpg"`
	WebP ImageSet `json:"webp"`
}

// Aired holds the airing window. From and To are RFC3339 timestamps when set.
type Aired struct {
	From   string `json:"from"`
	To     string `json:"to"`
	String string `json:"string"`
}

// Anime is a single anime record. The full detail endpoint returns the same
// shape with every list populated, so it doubles as the detail record.
type Anime struct {
	MalID         int      `json:"mal_id"`
	URL           string   `json:"url"`
	Images        Images   `json:"images"`
	Title         string   `json:"title"`
	TitleEnglish  string   `json:"title_english"`
	TitleJapanese string   `json:"title_japanese"`
	Type          string   `json:"type"`
	Episodes      *int     `json:"episodes"`
	Status        string   `json:"status"`
	Airing        bool     `json:"airing"`
	Aired         Aired    `json:"aired"`
	Duration      string   `json:"duration"`
	Rating        string   `json:"rating"`
	Score         *float64 `json:"score"`
	ScoredBy      *int     `json:"scored_by"`
	Members       *int     `json:"members"`
	Favorites     *int     `json:"favorites"`
	Synopsis      string   `json:"synopsis"`
	Year          *int     `json:"year"`
	Genres        []Named  `json:"genres"`
	Studios       []Named  `json:"studios"`
	Producers     []Named  `json:"producers"`
}

// ImageURL returns the preferred large image url, falling back across formats.
func (a Anime) ImageURL() string {
	if a.Images.JPG.LargeImageURL != "" {
		return a.Images.JPG.LargeImageURL
	}
	return a.Images.WebP.LargeImageURL
}

type listResponse struct {
	Data []Anime `json:"data"`
}

type detailResponse struct {
	Data Anime `json:"data"`
}

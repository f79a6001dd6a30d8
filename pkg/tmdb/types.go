package tmdb

// Movie is a single result from the search movie endpoint.
type Movie struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	OriginalLanguage string  `json:"original_language"`
	OriginalTitle    string  `json:"original_title"`
	Popularity       float64 `json:"popularity"`
	Adult            bool    `json:"adult"`
	GenreIDs         []int   `json:"genre_ids,omitempty"`
}

// TVShow is a single result from the search tv endpoint.
type TVShow struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	Overview         string   `json:"overview"`
	FirstAirDate     string   `json:"first_air_date"`
	PosterPath       string   `json:"poster_path"`
	BackdropPath     string   `json:"backdrop_path"`
	VoteAverage      float64  `json:"vote_average"`
	VoteCount        int      `json:"vote_count"`
	OriginalLanguage string   `json:"original_language"`
	OriginalName     string   `json:"original_name"`
	Popularity       float64  `json:"popularity"`
	Adult            bool     `json:"adult"`
	OriginCountry    []string `json:"origin_country"`
	GenreIDs         []int    `json:"genre_ids,omitempty"`
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type CastMember struct {
	Name      string `json:"name"`
	Character string `json:"character"`
	Order     int    `json:"order"`
}

type CrewMember struct {
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

type Company struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Network struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Creator struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MovieDetails is the movie detail endpoint response with credits appended.
type MovieDetails struct {
	Movie
	Genres              []Genre   `json:"genres"`
	Credits             Credits   `json:"credits"`
	ProductionCompanies []Company `json:"production_companies"`
	Runtime             int       `json:"runtime"`
	Status              string    `json:"status"`
}

// TVShowDetails is the tv detail endpoint response with credits appended.
type TVShowDetails struct {
	TVShow
	Genres           []Genre   `json:"genres"`
	Credits          Credits   `json:"credits"`
	Networks         []Network `json:"networks"`
	CreatedBy        []Creator `json:"created_by"`
	EpisodeRunTime   []int     `json:"episode_run_time"`
	NumberOfEpisodes int       `json:"number_of_episodes"`
	LastAirDate      string    `json:"last_air_date"`
	Status           string    `json:"status"`
}

type searchResponse[T any] struct {
	Page         int `json:"page"`
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
	Results      []T `json:"results"`
}

type genreResponse struct {
	Genres []Genre `json:"genres"`
}

package main

import "github.com/podsni/TMDB-media/cmd"

func main() {
	cmd.Execute()
}

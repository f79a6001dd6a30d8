package config

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_config.go github.com/podsni/TMDB-media/config ConfigUnmarshaler

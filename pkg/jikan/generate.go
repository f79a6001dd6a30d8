package jikan

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_jikan_client.go github.com/podsni/TMDB-media/pkg/jikan Client

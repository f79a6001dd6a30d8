package vault

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_fs.go github.com/podsni/TMDB-media/pkg/vault FS
